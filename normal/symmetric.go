package normal

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/gamekit"
)

// Symmetric creates an n-player normal-form game in which every player
// has the same move list and the same role. utils is player 0's utility
// table in row-major order over move indices (size len(moves)^players);
// every other player's utility is obtained by looking up the table with
// the profile's move-index tuple cyclically rotated so that their own move
// occupies player 0's position.
//
// Fewer utilities than required is a construction error. Extra utilities
// are ignored with a warning.
func Symmetric[M comparable](players int, moves []M, utils []float64) (*Game[M], error) {
	if players < 1 {
		return nil, errors.Errorf("symmetric game must have at least one player, got %d", players)
	}

	if len(moves) == 0 {
		return nil, errors.New("symmetric game must have at least one move")
	}

	expected := 1
	for i := 0; i < players; i++ {
		expected *= len(moves)
	}

	if len(utils) < expected {
		return nil, errors.Errorf("symmetric game over %d moves and %d players requires %d utilities, got %d",
			len(moves), players, expected, len(utils))
	}

	if len(utils) > expected {
		glog.Warningf("symmetric game requires %d utilities, got %d: ignoring %d extra",
			expected, len(utils), len(utils)-expected)
	}

	table := append([]float64(nil), utils[:expected]...)
	moveIndex := make(map[M]int, len(moves))
	for i, m := range moves {
		moveIndex[m] = i
	}

	payoff := func(profile gamekit.Profile[M]) gamekit.Payoff {
		indices := make([]int, players)
		for p, m := range profile {
			indices[p] = moveIndex[m]
		}

		result := make(gamekit.Payoff, players)
		for p := 0; p < players; p++ {
			// Rotate the index tuple left by p, then encode in base len(moves).
			code := 0
			for i := 0; i < players; i++ {
				code = code*len(moves) + indices[(p+i)%players]
			}

			result[p] = table[code]
		}

		return result
	}

	perPlayer := make([][]M, players)
	for p := range perPlayer {
		perPlayer[p] = moves
	}

	return New(perPlayer, payoff)
}
