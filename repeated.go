package gamekit

import "github.com/pkg/errors"

// History is the ordered, append-only record of the outcomes of each
// completed iteration of a repeated game.
type History[M comparable] []Outcome[M]

// Append returns this history extended with one more completed iteration.
func (h History[M]) Append(o Outcome[M]) History[M] {
	result := make(History[M], len(h), len(h)+1)
	copy(result, h)
	return append(result, o)
}

// Score gets the cumulative payoff over all completed iterations: the
// element-wise sum of each iteration's payoff.
func (h History[M]) Score() Payoff {
	if len(h) == 0 {
		return nil
	}

	total := h[0].Payoff.Clone()
	for _, o := range h[1:] {
		total = total.Add(o.Payoff)
	}

	return total
}

// RepeatedState is the composite state of a repeated game: the stage
// game's own intermediate state, the history of completed iterations, and
// the number of iterations remaining after the current one.
type RepeatedState[S any, M comparable] struct {
	Stage     S
	History   History[M]
	Remaining int
}

// Repeated plays a stage game a fixed number of times, accumulating each
// iteration's outcome into a History. Its tree is the stage game's tree
// unrolled across iterations: each stage End node restarts the stage game
// until no iterations remain, at which point the repeated game ends with
// the full history and its cumulative payoff.
type Repeated[S any, M comparable] struct {
	stage      Game[S, M]
	iterations int
}

// NewRepeated creates a repeated game that plays stage the given number of
// times. iterations must be positive.
func NewRepeated[S any, M comparable](stage Game[S, M], iterations int) (*Repeated[S, M], error) {
	if iterations < 1 {
		return nil, errors.Errorf("repeated game must have at least 1 iteration, got %d", iterations)
	}

	return &Repeated[S, M]{stage: stage, iterations: iterations}, nil
}

// NumPlayers implements Game.
func (r *Repeated[S, M]) NumPlayers() int {
	return r.stage.NumPlayers()
}

// Iterations gets the number of times the stage game will be played.
func (r *Repeated[S, M]) Iterations() int {
	return r.iterations
}

// Start implements Game.
func (r *Repeated[S, M]) Start() *Node[RepeatedState[S, M], M] {
	return r.rewrite(r.stage.Start(), nil, History[M]{}, r.iterations-1)
}

// PossibleMoves implements Finite when the stage game is itself Finite.
func (r *Repeated[S, M]) PossibleMoves(p Player, state RepeatedState[S, M]) []M {
	if stage, ok := r.stage.(Finite[S, M]); ok {
		return stage.PossibleMoves(p, state.Stage)
	}

	return nil
}

// rewrite recursively rebuilds the stage game's tree as a repeated-game
// tree, threading the accumulated transcript, history and remaining count
// through each continuation.
func (r *Repeated[S, M]) rewrite(stageNode *Node[S, M], transcript Transcript[M], hist History[M], remaining int) *Node[RepeatedState[S, M], M] {
	state := RepeatedState[S, M]{
		Stage:     stageNode.State,
		History:   hist,
		Remaining: remaining,
	}

	switch stageNode.Kind {
	case TurnNode:
		return NewTurn(state, stageNode.ToMove, func(s RepeatedState[S, M], moves []M) (*Node[RepeatedState[S, M], M], error) {
			next, err := stageNode.next(stageNode.State, moves)
			if err != nil {
				return nil, errors.Wrapf(err, "iteration %d of repeated game", len(hist)+1)
			}

			return r.rewrite(next, transcript, hist, remaining), nil
		})

	case ChanceNode:
		return NewChance(state, stageNode.Dist, func(s RepeatedState[S, M], move M) (*Node[RepeatedState[S, M], M], error) {
			next, err := stageNode.next(stageNode.State, []M{move})
			if err != nil {
				return nil, errors.Wrapf(err, "iteration %d of repeated game", len(hist)+1)
			}

			return r.rewrite(next, transcript, hist, remaining), nil
		})

	case EndNode:
		// One iteration of the stage game has completed.
		newHist := hist.Append(*stageNode.Outcome)
		newTranscript := transcript.Concat(stageNode.Outcome.Moves)
		if remaining > 0 {
			// Restart the stage game from its fresh initial tree.
			return r.rewrite(r.stage.Start(), newTranscript, newHist, remaining-1)
		}

		finalState := RepeatedState[S, M]{
			Stage:     stageNode.State,
			History:   newHist,
			Remaining: 0,
		}
		return NewEnd(finalState, Outcome[M]{
			Moves:  newTranscript,
			Payoff: newHist.Score(),
		})

	default:
		panic("unknown stage game node kind " + stageNode.Kind.String())
	}
}
