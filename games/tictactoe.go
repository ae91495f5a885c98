package games

import "github.com/timpalpant/gamekit"

// TTTState is the board state of a tic-tac-toe game. Board[i] holds the
// mark in cell i (row-major): 0 empty, 1 for Player0's X, 2 for Player1's O.
// States are value types and are never mutated once published into a node.
type TTTState struct {
	Board  [9]uint8
	ToMove gamekit.Player
}

// Mark gets the player occupying the given cell, or false if it is empty.
func (s TTTState) Mark(cell int) (gamekit.Player, bool) {
	if s.Board[cell] == 0 {
		return 0, false
	}

	return gamekit.Player(s.Board[cell] - 1), true
}

var tttLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner gets the player with three in a row, or false if there is none.
func (s TTTState) Winner() (gamekit.Player, bool) {
	for _, line := range tttLines {
		mark := s.Board[line[0]]
		if mark != 0 && mark == s.Board[line[1]] && mark == s.Board[line[2]] {
			return gamekit.Player(mark - 1), true
		}
	}

	return 0, false
}

func (s TTTState) full() bool {
	for _, mark := range s.Board {
		if mark == 0 {
			return false
		}
	}

	return true
}

// TicTacToe is the classic 3x3 game as a sequential, zero-sum, finite
// game: moves are cell indices 0-8, Player0 moves first.
type TicTacToe struct{}

// NewTicTacToe creates a tic-tac-toe game.
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{}
}

// NumPlayers implements gamekit.Game.
func (t *TicTacToe) NumPlayers() int {
	return 2
}

// Start implements gamekit.Game.
func (t *TicTacToe) Start() *gamekit.Node[TTTState, int] {
	return t.node(TTTState{}, nil)
}

// StartAt builds the game tree rooted at an arbitrary board position.
func (t *TicTacToe) StartAt(state TTTState) *gamekit.Node[TTTState, int] {
	return t.node(state, nil)
}

func (t *TicTacToe) node(state TTTState, transcript gamekit.Transcript[int]) *gamekit.Node[TTTState, int] {
	if winner, over := state.Winner(); over {
		return gamekit.NewEnd(state, gamekit.Outcome[int]{
			Moves:  transcript,
			Payoff: gamekit.WinnerPayoff(2, winner),
		})
	}

	if state.full() {
		return gamekit.NewEnd(state, gamekit.Outcome[int]{
			Moves:  transcript,
			Payoff: gamekit.ZeroPayoff(2),
		})
	}

	return gamekit.NewPlayerTurn(state, state.ToMove, func(s TTTState, cell int) (*gamekit.Node[TTTState, int], error) {
		if !t.IsValidMove(s.ToMove, s, cell) {
			return nil, gamekit.NewInvalidMove(s.ToMove, cell)
		}

		next := s
		next.Board[cell] = uint8(s.ToMove) + 1
		next.ToMove = 1 - s.ToMove
		return t.node(next, transcript.Append(s.ToMove, cell)), nil
	})
}

// PossibleMoves implements gamekit.Finite: the empty cells.
func (t *TicTacToe) PossibleMoves(p gamekit.Player, state TTTState) []int {
	var result []int
	for cell, mark := range state.Board {
		if mark == 0 {
			result = append(result, cell)
		}
	}

	return result
}

// IsValidMove implements gamekit.Playable.
func (t *TicTacToe) IsValidMove(p gamekit.Player, state TTTState, cell int) bool {
	return cell >= 0 && cell < 9 && state.Board[cell] == 0
}

// EvaluateTTT is a heuristic for depth-limited search: the difference in
// the number of lines still open to each player, scaled to stay inside
// the terminal payoff range. Positive favors the target player.
func EvaluateTTT(target gamekit.Player) func(TTTState) float64 {
	return func(s TTTState) float64 {
		open := [2]int{}
		for _, line := range tttLines {
			blocked := [2]bool{}
			for _, cell := range line {
				if mark := s.Board[cell]; mark != 0 {
					blocked[2-mark] = true
				}
			}

			for p := 0; p < 2; p++ {
				if !blocked[p] {
					open[p]++
				}
			}
		}

		return float64(open[target]-open[1-target]) / float64(len(tttLines))
	}
}
