package gamekit

import (
	"testing"
)

// penniesState is the (empty) state of the matching pennies test game.
type penniesState struct{}

// penniesGame is matching pennies: both players simultaneously choose
// 0 (heads) or 1 (tails). Player 0 wins on a match, player 1 otherwise.
type penniesGame struct{}

func (penniesGame) NumPlayers() int {
	return 2
}

func (penniesGame) PossibleMoves(p Player, _ penniesState) []int {
	return []int{0, 1}
}

func (penniesGame) IsValidMove(p Player, _ penniesState, move int) bool {
	return move == 0 || move == 1
}

func (g penniesGame) Start() *Node[penniesState, int] {
	return NewAllPlayerTurn(penniesState{}, 2, func(s penniesState, moves []int) (*Node[penniesState, int], error) {
		var transcript Transcript[int]
		for p, m := range moves {
			if !g.IsValidMove(Player(p), s, m) {
				return nil, NewInvalidMove(Player(p), m)
			}

			transcript = transcript.Append(Player(p), m)
		}

		payoff := Payoff{1, -1}
		if moves[0] != moves[1] {
			payoff = Payoff{-1, 1}
		}

		return NewEnd(s, Outcome[int]{Moves: transcript, Payoff: payoff}), nil
	})
}

func TestSequentializeRoundTrip(t *testing.T) {
	cases := [][]int{
		{0, 0},
		{0, 1},
		{1, 0},
		{1, 1},
	}

	for _, moves := range cases {
		root := penniesGame{}.Start()
		direct, err := root.Play(moves...)
		if err != nil {
			t.Fatalf("direct play of %v failed: %v", moves, err)
		}

		node := root.Sequentialize()
		for _, m := range moves {
			if node.Kind != TurnNode || len(node.ToMove) != 1 {
				t.Fatalf("sequentialized node is not a single-player turn: %v", node.Kind)
			}

			node, err = node.Play(m)
			if err != nil {
				t.Fatalf("sequentialized play of %v failed: %v", moves, err)
			}
		}

		if node.Kind != EndNode {
			t.Fatalf("sequentialized play of %v did not reach the end", moves)
		}

		if !equalPayoffs(node.Outcome.Payoff, direct.Outcome.Payoff) {
			t.Errorf("sequentialized payoff %v != direct payoff %v for moves %v",
				node.Outcome.Payoff, direct.Outcome.Payoff, moves)
		}

		if len(node.Outcome.Moves) != len(direct.Outcome.Moves) {
			t.Errorf("sequentialized transcript %v != direct transcript %v",
				node.Outcome.Moves, direct.Outcome.Moves)
		}
	}
}

func TestSequentializeSingleMover(t *testing.T) {
	node := NewPlayerTurn(penniesState{}, 0, func(s penniesState, m int) (*Node[penniesState, int], error) {
		return NewEnd(s, Outcome[int]{Payoff: Payoff{0, 0}}), nil
	})

	if node.Sequentialize() != node {
		t.Error("sequentializing a single-mover turn should return the node unchanged")
	}
}

func TestSequentializeOrder(t *testing.T) {
	// A three-player game whose outcome records the move order, to check
	// that the chain follows the declared to-move order.
	toMove := []Player{2, 0, 1}
	root := NewTurn(penniesState{}, toMove, func(s penniesState, moves []int) (*Node[penniesState, int], error) {
		var transcript Transcript[int]
		for i, p := range toMove {
			transcript = transcript.Append(p, moves[i])
		}

		return NewEnd(s, Outcome[int]{Moves: transcript, Payoff: ZeroPayoff(3)}), nil
	})

	node := root.Sequentialize()
	for i, want := range toMove {
		if got := node.ToMove[0]; got != want {
			t.Fatalf("link %d of chain is %v's turn, expected %v", i, got, want)
		}

		var err error
		node, err = node.Play(10 + i)
		if err != nil {
			t.Fatalf("link %d rejected move: %v", i, err)
		}
	}

	for i, want := range toMove {
		ply := node.Outcome.Moves[i]
		if ply.Player != want || ply.Move != 10+i {
			t.Errorf("transcript ply %d = %v:%v, expected %v:%v",
				i, ply.Player, ply.Move, want, 10+i)
		}
	}
}

func TestPlayInvalidMove(t *testing.T) {
	root := penniesGame{}.Start()
	_, err := root.Play(0, 7)
	if err == nil {
		t.Fatal("expected move 7 to be rejected")
	}

	if !IsInvalidMove(err) {
		t.Errorf("expected an invalid move error, got %v", err)
	}

	invalid := err.(*InvalidMoveError)
	if invalid.Player != 1 || invalid.Move != 7 {
		t.Errorf("expected invalid move 7 for Player1, got %v for %v",
			invalid.Move, invalid.Player)
	}
}

func TestPlayArityMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic from playing 1 move at a 2-player turn")
		}
	}()

	root := penniesGame{}.Start()
	root.Play(0)
}

func TestNewTurnValidation(t *testing.T) {
	cases := []struct {
		name   string
		toMove []Player
	}{
		{"empty", nil},
		{"duplicate", []Player{0, 1, 0}},
		{"nature", []Player{0, Nature}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected NewTurn to panic for %s to-move set", tc.name)
				}
			}()

			NewTurn(penniesState{}, tc.toMove, func(s penniesState, moves []int) (*Node[penniesState, int], error) {
				return nil, nil
			})
		})
	}
}

func TestChanceNode(t *testing.T) {
	d := UniformDist([]int{0, 1})
	node := NewChance(penniesState{}, d, func(s penniesState, m int) (*Node[penniesState, int], error) {
		return NewEnd(s, Outcome[int]{
			Moves:  Transcript[int]{}.Append(Nature, m),
			Payoff: Payoff{float64(m), -float64(m)},
		}), nil
	})

	next, err := node.PlayChance(1)
	if err != nil {
		t.Fatalf("chance move rejected: %v", err)
	}

	if next.Kind != EndNode {
		t.Fatalf("expected an end node, got %v", next.Kind)
	}

	if next.Outcome.Payoff.Utility(0) != 1 {
		t.Errorf("unexpected payoff %v", next.Outcome.Payoff)
	}

	if next.Outcome.Moves[0].Player != Nature {
		t.Errorf("chance move should be recorded against Nature, got %v",
			next.Outcome.Moves[0].Player)
	}
}

func equalPayoffs(a, b Payoff) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
