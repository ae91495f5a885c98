package gamekit

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Dist is a discrete probability distribution over moves, used by Chance
// nodes to model nature's draws. Weights need not be normalized.
type Dist[M comparable] struct {
	moves   []M
	weights []float64
	total   float64
}

// NewDist creates a distribution assigning the given weight to each move.
// All weights must be non-negative and at least one must be positive.
func NewDist[M comparable](moves []M, weights []float64) (*Dist[M], error) {
	if len(moves) != len(weights) {
		return nil, errors.Errorf("distribution over %d moves given %d weights",
			len(moves), len(weights))
	}

	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, errors.Errorf("negative weight %g for move %v", w, moves[i])
		}

		total += w
	}

	if total <= 0 {
		return nil, errors.New("distribution must have positive total weight")
	}

	return &Dist[M]{
		moves:   append([]M(nil), moves...),
		weights: append([]float64(nil), weights...),
		total:   total,
	}, nil
}

// UniformDist creates a distribution that draws uniformly over the given moves.
func UniformDist[M comparable](moves []M) *Dist[M] {
	weights := make([]float64, len(moves))
	for i := range weights {
		weights[i] = 1
	}

	d, err := NewDist(moves, weights)
	if err != nil {
		panic(err)
	}

	return d
}

// Len gets the number of distinct moves in the distribution.
func (d *Dist[M]) Len() int {
	return len(d.moves)
}

// Move gets the i'th move in the distribution.
func (d *Dist[M]) Move(i int) M {
	return d.moves[i]
}

// Prob gets the normalized probability of the i'th move.
func (d *Dist[M]) Prob(i int) float64 {
	return d.weights[i] / d.total
}

// Sample draws one move from the distribution.
func (d *Dist[M]) Sample(rng *rand.Rand) M {
	x := rng.Float64() * d.total
	for i, w := range d.weights {
		x -= w
		if x < 0 {
			return d.moves[i]
		}
	}

	// Possible due to floating point rounding.
	return d.moves[len(d.moves)-1]
}
