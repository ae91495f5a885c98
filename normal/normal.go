// Package normal implements finite games in normal (strategic) form:
// every player simultaneously chooses one move from a finite list, and a
// payoff function maps the resulting profile to a utility for each player.
// The package also provides the enumeration engine and solution concepts
// built on it: pure Nash equilibria, Pareto optimal sets, and dominated
// move detection.
package normal

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/gamekit"
)

// State is the (empty) intermediate state of a normal-form game's tree.
// A normal-form game has a single simultaneous turn, so there is nothing
// to carry between nodes.
type State struct{}

// Game is a finite normal-form game.
type Game[M comparable] struct {
	moves  [][]M
	payoff func(gamekit.Profile[M]) gamekit.Payoff
}

// New creates a normal-form game from per-player move lists and a payoff
// function. There must be at least one player, each with at least one move.
func New[M comparable](moves [][]M, payoff func(gamekit.Profile[M]) gamekit.Payoff) (*Game[M], error) {
	if len(moves) == 0 {
		return nil, errors.New("normal-form game must have at least one player")
	}

	for p, ms := range moves {
		if len(ms) == 0 {
			return nil, errors.Errorf("player %d has no moves", p)
		}
	}

	copied := make([][]M, len(moves))
	for p, ms := range moves {
		copied[p] = append([]M(nil), ms...)
	}

	return &Game[M]{moves: copied, payoff: payoff}, nil
}

// NumPlayers implements gamekit.Game.
func (g *Game[M]) NumPlayers() int {
	return len(g.moves)
}

// Moves gets the moves available to the given player.
func (g *Game[M]) Moves(p gamekit.Player) []M {
	return g.moves[p]
}

// Payoff evaluates the game's payoff function at the given profile.
func (g *Game[M]) Payoff(profile gamekit.Profile[M]) gamekit.Payoff {
	return g.payoff(profile)
}

// PossibleMoves implements gamekit.Finite.
func (g *Game[M]) PossibleMoves(p gamekit.Player, _ State) []M {
	return g.moves[p]
}

// IsValidMove implements gamekit.Playable.
func (g *Game[M]) IsValidMove(p gamekit.Player, _ State, move M) bool {
	for _, m := range g.moves[p] {
		if m == move {
			return true
		}
	}

	return false
}

// Start implements gamekit.Game. The tree of a normal-form game is a
// single Turn node at which all players move, ending immediately in an End
// node with the profile's payoff.
func (g *Game[M]) Start() *gamekit.Node[State, M] {
	return gamekit.NewAllPlayerTurn(State{}, g.NumPlayers(), func(s State, moves []M) (*gamekit.Node[State, M], error) {
		var transcript gamekit.Transcript[M]
		for p, m := range moves {
			if !g.IsValidMove(gamekit.Player(p), s, m) {
				return nil, gamekit.NewInvalidMove(gamekit.Player(p), m)
			}

			transcript = transcript.Append(gamekit.Player(p), m)
		}

		profile := gamekit.Profile[M](moves).Clone()
		return gamekit.NewEnd(s, gamekit.Outcome[M]{
			Moves:  transcript,
			Payoff: g.payoff(profile),
		}), nil
	})
}

// Profiles returns a lazy iterator over every profile of the game.
func (g *Game[M]) Profiles() *ProfileIter[M] {
	return NewProfileIter(g.moves)
}

// Outcomes returns a lazy iterator over every (profile, payoff) pair of
// the game.
func (g *Game[M]) Outcomes() *OutcomeIter[M] {
	return &OutcomeIter[M]{profiles: g.Profiles(), payoff: g.payoff}
}
