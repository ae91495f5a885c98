package gamekit

import (
	"fmt"
	"strings"
)

// Profile assigns one move to each player in a game.
// Profile[p] is the move played by player p. Profiles are never mutated
// after creation and are compared by value.
type Profile[M comparable] []M

// ForPlayer gets the move played by the given player.
func (p Profile[M]) ForPlayer(player Player) M {
	return p[player]
}

// Equal returns whether two profiles assign the same move to every player.
func (p Profile[M]) Equal(other Profile[M]) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy of this profile.
func (p Profile[M]) Clone() Profile[M] {
	result := make(Profile[M], len(p))
	copy(result, p)
	return result
}

func (p Profile[M]) String() string {
	parts := make([]string, len(p))
	for i, m := range p {
		parts[i] = fmt.Sprintf("%v", m)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

// Ply records one move in a game's transcript: who moved, and what they played.
// Chance moves are recorded against Nature.
type Ply[M comparable] struct {
	Player Player
	Move   M
}

// Transcript is the ordered record of every move made during one playing
// of a game. It is append-only: Append returns an extended transcript and
// never modifies the receiver's visible prefix.
type Transcript[M comparable] []Ply[M]

// Append returns this transcript extended with one more move.
func (t Transcript[M]) Append(p Player, m M) Transcript[M] {
	result := make(Transcript[M], len(t), len(t)+1)
	copy(result, t)
	return append(result, Ply[M]{Player: p, Move: m})
}

// Concat returns this transcript extended with all moves of another.
func (t Transcript[M]) Concat(other Transcript[M]) Transcript[M] {
	result := make(Transcript[M], 0, len(t)+len(other))
	result = append(result, t...)
	return append(result, other...)
}

// MovesBy gets the moves made by the given player, in order.
func (t Transcript[M]) MovesBy(p Player) []M {
	var result []M
	for _, ply := range t {
		if ply.Player == p {
			result = append(result, ply.Move)
		}
	}

	return result
}

func (t Transcript[M]) String() string {
	parts := make([]string, len(t))
	for i, ply := range t {
		parts[i] = fmt.Sprintf("%v:%v", ply.Player, ply.Move)
	}

	return strings.Join(parts, " ")
}

// Outcome is the terminal result of one playing of a game: the record of
// the moves made, paired with the payoff awarded to each player.
type Outcome[M comparable] struct {
	Moves  Transcript[M]
	Payoff Payoff
}

// Profile reconstructs the move profile of a simultaneous game from this
// outcome's transcript. It returns false if the transcript does not contain
// exactly one move for each of n players.
func (o Outcome[M]) Profile(n int) (Profile[M], bool) {
	if len(o.Moves) != n {
		return nil, false
	}

	result := make(Profile[M], n)
	seen := make([]bool, n)
	for _, ply := range o.Moves {
		if ply.Player < 0 || int(ply.Player) >= n || seen[ply.Player] {
			return nil, false
		}

		seen[ply.Player] = true
		result[ply.Player] = ply.Move
	}

	return result, true
}
