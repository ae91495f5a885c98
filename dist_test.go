package gamekit

import (
	"math/rand"
	"testing"
)

func TestNewDistValidation(t *testing.T) {
	cases := []struct {
		name    string
		moves   []int
		weights []float64
	}{
		{"length mismatch", []int{0, 1}, []float64{1}},
		{"negative weight", []int{0, 1}, []float64{1, -1}},
		{"zero total", []int{0, 1}, []float64{0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDist(tc.moves, tc.weights); err == nil {
				t.Errorf("expected an error for %s", tc.name)
			}
		})
	}
}

func TestUniformDistProbabilities(t *testing.T) {
	d := UniformDist([]string{"a", "b", "c", "d"})
	for i := 0; i < d.Len(); i++ {
		if d.Prob(i) != 0.25 {
			t.Errorf("Prob(%d) = %v, expected 0.25", i, d.Prob(i))
		}
	}
}

func TestDistSample(t *testing.T) {
	// All weight on one move: sampling must always return it.
	d, err := NewDist([]int{7, 8, 9}, []float64{0, 5, 0})
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if m := d.Sample(rng); m != 8 {
			t.Fatalf("sampled %d from a point distribution on 8", m)
		}
	}
}

func TestDistSampleFrequencies(t *testing.T) {
	d, err := NewDist([]int{0, 1}, []float64{3, 1})
	if err != nil {
		t.Fatal(err)
	}

	rng := rand.New(rand.NewSource(123))
	counts := make(map[int]int)
	n := 10000
	for i := 0; i < n; i++ {
		counts[d.Sample(rng)]++
	}

	got := float64(counts[0]) / float64(n)
	if got < 0.70 || got > 0.80 {
		t.Errorf("sampled move 0 with frequency %v, expected about 0.75", got)
	}
}
