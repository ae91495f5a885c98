package games

import "github.com/timpalpant/gamekit/normal"

// RPSMove is a move in rock-paper-scissors.
type RPSMove uint8

const (
	Rock RPSMove = iota
	Paper
	Scissors
)

var rpsMoveStr = [...]string{
	"Rock",
	"Paper",
	"Scissors",
}

func (m RPSMove) String() string {
	return rpsMoveStr[m]
}

// NewRockPaperScissors creates the two-player zero-sum rock-paper-scissors
// game: the winner receives 1 and the loser -1, ties pay nothing.
func NewRockPaperScissors() *normal.Game[RPSMove] {
	return mustSymmetric(2, []RPSMove{Rock, Paper, Scissors}, []float64{
		0, -1, 1, // Rock vs Rock, Paper, Scissors
		1, 0, -1, // Paper
		-1, 1, 0, // Scissors
	})
}
