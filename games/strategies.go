package games

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/timpalpant/gamekit"
)

// RandomStrategy selects uniformly at random among the available moves.
type RandomStrategy[S any, M comparable] struct {
	Rng *rand.Rand
}

// SelectMove implements gamekit.Strategy.
func (s *RandomStrategy[S, M]) SelectMove(p gamekit.Player, state S, moves []M) (M, error) {
	var zero M
	if len(moves) == 0 {
		return zero, errors.Errorf("no moves available for %v", p)
	}

	return gamekit.UniformDist(moves).Sample(s.Rng), nil
}

// AlwaysDefect defects in every iteration of a repeated social dilemma.
type AlwaysDefect struct{}

// SelectMove implements gamekit.Strategy.
func (AlwaysDefect) SelectMove(p gamekit.Player, state RepeatedDilemmaState, moves []DilemmaMove) (DilemmaMove, error) {
	return Defect, nil
}

// AlwaysCooperate cooperates in every iteration of a repeated social dilemma.
type AlwaysCooperate struct{}

// SelectMove implements gamekit.Strategy.
func (AlwaysCooperate) SelectMove(p gamekit.Player, state RepeatedDilemmaState, moves []DilemmaMove) (DilemmaMove, error) {
	return Cooperate, nil
}

// MinimaxStrategy selects moves by alpha-beta search from the current
// state. Root rebuilds the game tree rooted at an observed state, e.g.
// TicTacToe.StartAt. MaxDepth and Heuristic are passed through to the
// searcher; a negative MaxDepth searches to the end of the game.
type MinimaxStrategy[S any, M comparable] struct {
	Game      gamekit.Finite[S, M]
	Root      func(S) *gamekit.Node[S, M]
	MaxDepth  int
	Heuristic func(S) float64
}

// SelectMove implements gamekit.Strategy.
func (s *MinimaxStrategy[S, M]) SelectMove(p gamekit.Player, state S, moves []M) (M, error) {
	searcher := gamekit.NewSearcher(s.Game, p, s.MaxDepth, s.Heuristic)
	move, _, err := searcher.BestMove(context.Background(), s.Root(state))
	if err != nil {
		var zero M
		return zero, errors.Wrapf(err, "searching for %v's move", p)
	}

	return move, nil
}

// TitForTat cooperates in the first iteration of a repeated two-player
// social dilemma, then mirrors the opponent's previous move.
type TitForTat struct{}

// SelectMove implements gamekit.Strategy.
func (TitForTat) SelectMove(p gamekit.Player, state RepeatedDilemmaState, moves []DilemmaMove) (DilemmaMove, error) {
	if len(state.History) == 0 {
		return Cooperate, nil
	}

	last := state.History[len(state.History)-1]
	profile, ok := last.Profile(2)
	if !ok {
		return Cooperate, nil
	}

	return profile.ForPlayer(1 - p), nil
}
