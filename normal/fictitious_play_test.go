package normal

import (
	"math/rand"
	"testing"
)

func TestFictitiousPlayRockPaperScissors(t *testing.T) {
	g := mustSymmetric(t, 2, []string{"R", "P", "S"},
		[]float64{0, -1, 1, 1, 0, -1, -1, 1, 0})

	rng := rand.New(rand.NewSource(42))
	w0, w1, err := FictitiousPlay(g, 10000, 0.1, rng)
	if err != nil {
		t.Fatal(err)
	}

	t.Logf("player 0 weights: %v", w0)
	t.Logf("player 1 weights: %v", w1)

	// Play should converge toward the uniform mixed equilibrium.
	for _, weights := range [][]float64{w0, w1} {
		for i, w := range weights {
			if w < 1.0/3.0-0.15 || w > 1.0/3.0+0.15 {
				t.Errorf("weight %d = %v, expected close to 1/3", i, w)
			}
		}
	}
}

func TestFictitiousPlayPrisonersDilemma(t *testing.T) {
	g := mustSymmetric(t, 2, []string{"C", "D"}, []float64{2, 0, 3, 1})

	rng := rand.New(rand.NewSource(7))
	w0, w1, err := FictitiousPlay(g, 1000, 0, rng)
	if err != nil {
		t.Fatal(err)
	}

	// D strictly dominates C, so all weight concentrates on D.
	if w0[1] < 0.99 || w1[1] < 0.99 {
		t.Errorf("defect weights = %v, %v, expected nearly all weight on D", w0[1], w1[1])
	}
}

func TestFictitiousPlayRequiresTwoPlayers(t *testing.T) {
	g := mustSymmetric(t, 3, []string{"C", "D"},
		[]float64{0, 1, 2, 3, 4, 5, 6, 7})

	rng := rand.New(rand.NewSource(1))
	if _, _, err := FictitiousPlay(g, 10, 0, rng); err == nil {
		t.Error("expected an error for a 3-player game")
	}
}
