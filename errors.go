package gamekit

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidMoveError reports that a game's continuation or validity check
// rejected a submitted move. It identifies exactly one offending player.
// It is recoverable: it aborts the current turn or iteration only, and
// leaves all prior state intact.
type InvalidMoveError struct {
	Player Player
	Move   interface{}
}

// NewInvalidMove creates the error returned by a continuation that
// rejects a submitted move.
func NewInvalidMove(p Player, move interface{}) error {
	return &InvalidMoveError{Player: p, Move: move}
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %v for %v", e.Move, e.Player)
}

// IsInvalidMove returns whether err was caused by a rejected move,
// unwrapping any context added along the way.
func IsInvalidMove(err error) bool {
	_, ok := errors.Cause(err).(*InvalidMoveError)
	return ok
}

// MalformedGameError is the panic payload raised when a Game implementation
// violates its own contract: PossibleMoves advertised a move that the
// continuation subsequently refused. This is not recoverable and must not
// be confused with ordinary InvalidMoveError reporting.
type MalformedGameError struct {
	Player Player
	Move   interface{}
	Cause  error
}

func (e *MalformedGameError) Error() string {
	return fmt.Sprintf("malformed game: possible move %v for %v rejected by continuation: %v",
		e.Move, e.Player, e.Cause)
}
