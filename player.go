package gamekit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Player represents the identity of a player in a game by index.
// The zero value is the first player.
type Player int

// Nature is the pseudo-player whose moves are drawn by chance.
// It appears only in transcripts, never in a Turn node's to-move set.
const Nature Player = -1

// NewPlayer returns a validated player index for a game with n players.
func NewPlayer(i, n int) (Player, error) {
	if i < 0 || i >= n {
		return 0, errors.Errorf("player index %d out of range for %d-player game", i, n)
	}

	return Player(i), nil
}

// AllPlayers returns the ordered set of all player indices in an n-player game.
func AllPlayers(n int) []Player {
	result := make([]Player, n)
	for i := range result {
		result[i] = Player(i)
	}

	return result
}

func (p Player) String() string {
	if p == Nature {
		return "Nature"
	}

	return fmt.Sprintf("Player%d", int(p))
}
