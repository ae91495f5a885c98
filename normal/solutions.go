package normal

import "github.com/timpalpant/gamekit"

// UnilaterallyImprove finds the move that most improves player p's utility
// if every other player keeps their move from the given profile. It scans
// the profiles adjacent to profile at p and returns the first-seen move
// with the strictly greatest utility above the current payoff, or false if
// no deviation improves.
func (g *Game[M]) UnilaterallyImprove(p gamekit.Player, profile gamekit.Profile[M]) (M, bool) {
	var bestMove M
	best := g.payoff(profile).Utility(p)
	found := false

	it := g.Outcomes().Adjacent(p, profile)
	for {
		candidate, payoff, ok := it.Next()
		if !ok {
			break
		}

		if payoff.Utility(p) > best {
			best = payoff.Utility(p)
			bestMove = candidate[p]
			found = true
		}
	}

	return bestMove, found
}

// IsStable returns whether no player can unilaterally improve on the given
// profile, i.e. whether it is a pure Nash equilibrium.
func (g *Game[M]) IsStable(profile gamekit.Profile[M]) bool {
	for p := 0; p < g.NumPlayers(); p++ {
		if _, ok := g.UnilaterallyImprove(gamekit.Player(p), profile); ok {
			return false
		}
	}

	return true
}

// PureNashEquilibria finds every profile from which no single player can
// unilaterally improve their utility, in enumeration order.
func (g *Game[M]) PureNashEquilibria() []gamekit.Profile[M] {
	var result []gamekit.Profile[M]
	it := g.Profiles()
	for {
		profile, ok := it.Next()
		if !ok {
			return result
		}

		if g.IsStable(profile) {
			result = append(result, profile)
		}
	}
}

// ParetoImprovement measures how much payoff b improves on payoff a.
// It is defined only when b is at least a in every coordinate and strictly
// greater in at least one; the value is the sum of the positive deltas.
// Otherwise the payoffs are not comparable and it returns false.
func ParetoImprovement(a, b gamekit.Payoff) (float64, bool) {
	improvement := 0.0
	for i := range a {
		if b[i] < a[i] {
			return 0, false
		}

		improvement += b[i] - a[i]
	}

	if improvement == 0 {
		return 0, false
	}

	return improvement, true
}

// ParetoImprove finds the profile whose payoff Pareto-dominates the given
// profile's payoff by the largest improvement sum, first-seen winning
// ties. It returns false if no profile dominates, i.e. the given profile
// is Pareto optimal.
func (g *Game[M]) ParetoImprove(profile gamekit.Profile[M]) (gamekit.Profile[M], bool) {
	base := g.payoff(profile)

	var bestProfile gamekit.Profile[M]
	best := 0.0
	found := false

	it := g.Outcomes()
	for {
		candidate, payoff, ok := it.Next()
		if !ok {
			break
		}

		improvement, defined := ParetoImprovement(base, payoff)
		if defined && improvement > best {
			best = improvement
			bestProfile = candidate
			found = true
		}
	}

	return bestProfile, found
}

// IsParetoOptimal returns whether no outcome improves at least one player
// without harming any other, relative to the given profile.
func (g *Game[M]) IsParetoOptimal(profile gamekit.Profile[M]) bool {
	_, dominated := g.ParetoImprove(profile)
	return !dominated
}

// ParetoOptimalSolutions finds every Pareto optimal profile, in
// enumeration order.
func (g *Game[M]) ParetoOptimalSolutions() []gamekit.Profile[M] {
	var result []gamekit.Profile[M]
	it := g.Profiles()
	for {
		profile, ok := it.Next()
		if !ok {
			return result
		}

		if g.IsParetoOptimal(profile) {
			result = append(result, profile)
		}
	}
}

// Dominated records that one of a player's moves is dominated by another:
// the dominated move never beats the dominator, whatever the other players
// do. The relation is strict if the dominator is strictly better in every
// pairing, weak if they are equal in some.
type Dominated[M comparable] struct {
	Dominated M
	Dominator M
	Strict    bool
}

// DominatedMovesFor finds every dominated move for the given player. For
// each ordered pair of distinct moves it compares the player's utility
// across matched outcomes, holding all other players' moves identical in
// lockstep.
func (g *Game[M]) DominatedMovesFor(p gamekit.Player) []Dominated[M] {
	var result []Dominated[M]
	for _, ted := range g.moves[p] {
		for _, tor := range g.moves[p] {
			if ted == tor {
				continue
			}

			if strict, ok := g.dominates(p, ted, tor); ok {
				result = append(result, Dominated[M]{
					Dominated: ted,
					Dominator: tor,
					Strict:    strict,
				})
			}
		}
	}

	return result
}

// dominates reports whether tor dominates ted for player p, and if so
// whether the domination is strict.
func (g *Game[M]) dominates(p gamekit.Player, ted, tor M) (strict, ok bool) {
	tedIter := g.Outcomes().Include(p, ted)
	torIter := g.Outcomes().Include(p, tor)

	strict = true
	dominated := false
	for {
		_, tedPayoff, tedOK := tedIter.Next()
		_, torPayoff, torOK := torIter.Next()
		if !tedOK || !torOK {
			break
		}

		tedU := tedPayoff.Utility(p)
		torU := torPayoff.Utility(p)
		if tedU > torU {
			return false, false
		}

		if tedU < torU {
			dominated = true
		} else {
			strict = false
		}
	}

	if !dominated {
		return false, false
	}

	return strict, true
}
