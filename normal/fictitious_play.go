package normal

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/gamekit"
)

// FictitiousPlay estimates mixed equilibrium strategies for a two-player
// game by iterated best response: on each round, each player plays a best
// response to the empirical distribution of the opponent's past play, or
// with probability mixingLambda a uniformly random move. It returns the
// normalized play frequencies of each player's moves.
func FictitiousPlay[M comparable](g *Game[M], nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64, error) {
	if g.NumPlayers() != 2 {
		return nil, nil, errors.Errorf("fictitious play requires a 2-player game, got %d players", g.NumPlayers())
	}

	u0, u1 := utilityMatrices(g)
	p0PlayCounts := make([]int, len(g.moves[0]))
	p1PlayCounts := make([]int, len(g.moves[1]))
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(u0, p1PlayCounts, rng)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(u1, p0PlayCounts, rng)
		}

		p0PlayCounts[p0Selected] += 1
		p1PlayCounts[p1Selected] += 1

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(1).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	return normalize(p0PlayCounts), normalize(p1PlayCounts), nil
}

// utilityMatrices tabulates each player's utility over the full profile
// product: u0[i][j] and u1[i][j] are the payoffs when player 0 plays their
// i'th move and player 1 their j'th.
func utilityMatrices[M comparable](g *Game[M]) (u0, u1 [][]float64) {
	u0 = make([][]float64, len(g.moves[0]))
	u1 = make([][]float64, len(g.moves[0]))
	for i, m0 := range g.moves[0] {
		u0[i] = make([]float64, len(g.moves[1]))
		u1[i] = make([]float64, len(g.moves[1]))
		for j, m1 := range g.moves[1] {
			payoff := g.payoff(gamekit.Profile[M]{m0, m1})
			u0[i][j] = payoff.Utility(0)
			u1[i][j] = payoff.Utility(1)
		}
	}

	return u0, u1
}

func getP0BestResponse(u0 [][]float64, p1PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(u0))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * u0[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getP1BestResponse(u1 [][]float64, p0PlayCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(u1[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] += float64(c) * u1[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}

	return result
}

func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && rng.Intn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}
