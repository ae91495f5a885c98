package normal

import "github.com/timpalpant/gamekit"

// ProfileIter lazily enumerates the Cartesian product of per-player move
// lists in row-major order: player 0's move varies slowest, the last
// player's fastest. Include and Exclude constrain which profiles are
// yielded without materializing the full product.
type ProfileIter[M comparable] struct {
	moves   [][]M
	cursor  []int
	done    bool
	include []map[M]bool
	exclude []map[M]bool
}

// NewProfileIter creates an iterator over all profiles of the given
// per-player move lists.
func NewProfileIter[M comparable](moves [][]M) *ProfileIter[M] {
	it := &ProfileIter[M]{
		moves:   moves,
		cursor:  make([]int, len(moves)),
		include: make([]map[M]bool, len(moves)),
		exclude: make([]map[M]bool, len(moves)),
	}

	for _, ms := range moves {
		if len(ms) == 0 {
			it.done = true
		}
	}

	return it
}

// Include adds the given moves to the player's include-set. A profile
// passes the include filter iff, for every player with a non-empty
// include-set, that player's move is a member of the set. Repeated calls
// broaden the set, they do not overwrite it.
func (it *ProfileIter[M]) Include(p gamekit.Player, moves ...M) *ProfileIter[M] {
	if it.include[p] == nil {
		it.include[p] = make(map[M]bool)
	}

	for _, m := range moves {
		it.include[p][m] = true
	}

	return it
}

// Exclude adds the given moves to the player's exclude-set. A profile is
// rejected if any player's move is in that player's exclude-set.
func (it *ProfileIter[M]) Exclude(p gamekit.Player, moves ...M) *ProfileIter[M] {
	if it.exclude[p] == nil {
		it.exclude[p] = make(map[M]bool)
	}

	for _, m := range moves {
		it.exclude[p][m] = true
	}

	return it
}

// Adjacent constrains the iterator to the profiles that differ from the
// reference profile only in player p's move: every other player is pinned
// to their reference move, and p's reference move is excluded. It yields
// exactly len(moves[p])-1 profiles.
func (it *ProfileIter[M]) Adjacent(p gamekit.Player, reference gamekit.Profile[M]) *ProfileIter[M] {
	it.Exclude(p, reference[p])
	for other := range it.moves {
		if gamekit.Player(other) != p {
			it.Include(gamekit.Player(other), reference[other])
		}
	}

	return it
}

// Next returns the next admitted profile, or false when the product is
// exhausted.
func (it *ProfileIter[M]) Next() (gamekit.Profile[M], bool) {
	for !it.done {
		profile := make(gamekit.Profile[M], len(it.moves))
		for p, i := range it.cursor {
			profile[p] = it.moves[p][i]
		}

		it.advance()
		if it.admits(profile) {
			return profile, true
		}
	}

	return nil, false
}

// advance increments the cursor in row-major order: the last player's
// index varies fastest.
func (it *ProfileIter[M]) advance() {
	for p := len(it.cursor) - 1; p >= 0; p-- {
		it.cursor[p]++
		if it.cursor[p] < len(it.moves[p]) {
			return
		}

		it.cursor[p] = 0
	}

	it.done = true
}

func (it *ProfileIter[M]) admits(profile gamekit.Profile[M]) bool {
	for p, m := range profile {
		if len(it.include[p]) > 0 && !it.include[p][m] {
			return false
		}

		if it.exclude[p][m] {
			return false
		}
	}

	return true
}

// OutcomeIter wraps a ProfileIter with the game's payoff function to
// lazily yield (profile, payoff) pairs, so constrained queries evaluate
// only the profiles they admit.
type OutcomeIter[M comparable] struct {
	profiles *ProfileIter[M]
	payoff   func(gamekit.Profile[M]) gamekit.Payoff
}

// Include adds moves to the player's include-set. See ProfileIter.Include.
func (it *OutcomeIter[M]) Include(p gamekit.Player, moves ...M) *OutcomeIter[M] {
	it.profiles.Include(p, moves...)
	return it
}

// Exclude adds moves to the player's exclude-set. See ProfileIter.Exclude.
func (it *OutcomeIter[M]) Exclude(p gamekit.Player, moves ...M) *OutcomeIter[M] {
	it.profiles.Exclude(p, moves...)
	return it
}

// Adjacent constrains the iterator to profiles differing from the
// reference only at player p. See ProfileIter.Adjacent.
func (it *OutcomeIter[M]) Adjacent(p gamekit.Player, reference gamekit.Profile[M]) *OutcomeIter[M] {
	it.profiles.Adjacent(p, reference)
	return it
}

// Next returns the next admitted profile and its payoff, or false when
// exhausted.
func (it *OutcomeIter[M]) Next() (gamekit.Profile[M], gamekit.Payoff, bool) {
	profile, ok := it.profiles.Next()
	if !ok {
		return nil, nil, false
	}

	return profile, it.payoff(profile), true
}
