package games

import (
	"context"
	"math/rand"
	"testing"

	"github.com/timpalpant/gamekit"
)

func boardState(xs, os []int, toMove gamekit.Player) TTTState {
	var s TTTState
	for _, cell := range xs {
		s.Board[cell] = 1
	}
	for _, cell := range os {
		s.Board[cell] = 2
	}
	s.ToMove = toMove
	return s
}

func TestTTTWinner(t *testing.T) {
	cases := []struct {
		name   string
		state  TTTState
		winner gamekit.Player
		over   bool
	}{
		{"empty board", TTTState{}, 0, false},
		{"top row X", boardState([]int{0, 1, 2}, []int{3, 4}, 1), 0, true},
		{"column O", boardState([]int{0, 1, 8}, []int{2, 5}, 0), 0, false},
		{"diagonal O", boardState([]int{1, 2, 3}, []int{0, 4, 8}, 0), 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			winner, over := tc.state.Winner()
			if over != tc.over || (over && winner != tc.winner) {
				t.Errorf("Winner() = (%v, %v), expected (%v, %v)", winner, over, tc.winner, tc.over)
			}
		})
	}
}

func TestTTTPlayRejectsOccupiedCell(t *testing.T) {
	ttt := NewTicTacToe()
	node := ttt.Start()

	node, err := node.Play(4)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := node.Play(4); !gamekit.IsInvalidMove(err) {
		t.Errorf("playing an occupied cell returned %v, expected an invalid move error", err)
	}
}

func TestTTTRandomPlayTerminates(t *testing.T) {
	ttt := NewTicTacToe()
	rng := rand.New(rand.NewSource(3))
	strategies := []gamekit.Strategy[TTTState, int]{
		&RandomStrategy[TTTState, int]{Rng: rng},
		&RandomStrategy[TTTState, int]{Rng: rng},
	}

	for i := 0; i < 20; i++ {
		outcome, err := gamekit.Play[TTTState, int](ttt, strategies, rng)
		if err != nil {
			t.Fatal(err)
		}

		if len(outcome.Moves) < 5 || len(outcome.Moves) > 9 {
			t.Errorf("game lasted %d plies, expected 5 to 9", len(outcome.Moves))
		}

		if sum := outcome.Payoff.Sum(); sum != 0 {
			t.Errorf("payoff %v sums to %v, expected 0", outcome.Payoff, sum)
		}
	}
}

func TestMinimaxFindsWin(t *testing.T) {
	ttt := NewTicTacToe()
	// X has 0 and 1, O has 3 and 4. X completes the top row.
	node := ttt.StartAt(boardState([]int{0, 1}, []int{3, 4}, 0))

	searcher := gamekit.NewSearcher[TTTState, int](ttt, 0, -1, nil)
	move, value, err := searcher.BestMove(context.Background(), node)
	if err != nil {
		t.Fatal(err)
	}

	if move != 2 || value != 1 {
		t.Errorf("best move = (%d, %v), expected (2, 1)", move, value)
	}
}

func TestMinimaxBlocksLoss(t *testing.T) {
	ttt := NewTicTacToe()
	// O must block X's top-row threat at cell 2.
	node := ttt.StartAt(boardState([]int{0, 1}, []int{4}, 1))

	searcher := gamekit.NewSearcher[TTTState, int](ttt, 1, -1, nil)
	move, _, err := searcher.BestMove(context.Background(), node)
	if err != nil {
		t.Fatal(err)
	}

	if move != 2 {
		t.Errorf("best move = %d, expected the block at 2", move)
	}
}

func TestMinimaxFullGameIsDraw(t *testing.T) {
	if testing.Short() {
		t.Skip("full-tree search")
	}

	ttt := NewTicTacToe()
	searcher := gamekit.NewSearcher[TTTState, int](ttt, 0, -1, nil)
	value, err := searcher.Value(context.Background(), ttt.Start())
	if err != nil {
		t.Fatal(err)
	}

	if value != 0 {
		t.Errorf("value of the full game = %v, expected a draw at 0", value)
	}

	t.Logf("visited %d nodes", searcher.NodesVisited())
}

func TestEvaluateTTT(t *testing.T) {
	eval := EvaluateTTT(0)

	if v := eval(TTTState{}); v != 0 {
		t.Errorf("empty board evaluates to %v for player 0, expected 0", v)
	}

	// X in the center leaves X with 8 open lines, O with 4.
	center := boardState([]int{4}, nil, 1)
	if v := eval(center); v <= 0 {
		t.Errorf("center opening evaluates to %v, expected positive for X", v)
	}

	// The heuristic stays within the terminal payoff range.
	if v := eval(center); v < -1 || v > 1 {
		t.Errorf("heuristic %v outside [-1, 1]", v)
	}
}

func TestMinimaxDepthBoundedWithHeuristic(t *testing.T) {
	ttt := NewTicTacToe()
	searcher := gamekit.NewSearcher(ttt, 0, 1, EvaluateTTT(0))
	move, value, err := searcher.BestMove(context.Background(), ttt.Start())
	if err != nil {
		t.Fatal(err)
	}

	// Taking the center blocks 4 of the opponent's 8 lines, more than any
	// corner or edge, so the one-ply heuristic search must open there.
	if move != 4 || value != 0.5 {
		t.Errorf("depth-1 opening = (%d, %v), expected (4, 0.5)", move, value)
	}
}
