package gamekit

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Strategy supplies the next move for one player, given a read-only view
// of the current state and the moves available to them. For repeated games
// the state is a RepeatedState, so strategies can condition on history.
type Strategy[S any, M comparable] interface {
	SelectMove(p Player, state S, moves []M) (M, error)
}

// Play plays one complete game from its initial tree, querying each
// player's strategy at Turn nodes and sampling from the distribution at
// Chance nodes, and returns the terminal outcome. Simultaneous turns are
// sequentialized, so strategies are always asked for exactly one move.
//
// An invalid move submitted by a strategy is returned as an error wrapping
// *InvalidMoveError; the game is aborted but no state is corrupted.
func Play[S any, M comparable](g Finite[S, M], strategies []Strategy[S, M], rng *rand.Rand) (Outcome[M], error) {
	if len(strategies) != g.NumPlayers() {
		return Outcome[M]{}, errors.Errorf("%d-player game given %d strategies",
			g.NumPlayers(), len(strategies))
	}

	node := g.Start()
	for {
		switch node.Kind {
		case TurnNode:
			node = node.Sequentialize()
			p := node.ToMove[0]
			moves := g.PossibleMoves(p, node.State)
			move, err := strategies[p].SelectMove(p, node.State, moves)
			if err != nil {
				return Outcome[M]{}, errors.Wrapf(err, "selecting move for %v", p)
			}

			next, err := node.Play(move)
			if err != nil {
				return Outcome[M]{}, err
			}

			node = next

		case ChanceNode:
			move := node.Dist.Sample(rng)
			next, err := node.PlayChance(move)
			if err != nil {
				return Outcome[M]{}, err
			}

			node = next

		case EndNode:
			return *node.Outcome, nil

		default:
			panic("unknown node kind " + node.Kind.String())
		}
	}
}
