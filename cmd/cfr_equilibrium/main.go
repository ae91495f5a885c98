// Solve rock-paper-scissors with vanilla CFR over the cfrtree adapter.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/timpalpant/gamekit/cfrtree"
	"github.com/timpalpant/gamekit/games"
	"github.com/timpalpant/gamekit/normal"
)

func main() {
	seed := flag.Int64("seed", 123, "Random seed")
	iter := flag.Int("iter", 1000, "Number of CFR iterations")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	rng := rand.New(rand.NewSource(*seed))
	root := cfrtree.New[normal.State, games.RPSMove](games.NewRockPaperScissors(), rng)

	total := 0
	tree.Visit(root, func(node cfr.GameTreeNode) {
		total++
	})
	glog.Infof("%d nodes in game tree", total)

	logEvery := *iter / 10
	if logEvery == 0 {
		logEvery = 1
	}

	vanillaCFR := cfr.NewVanilla()
	start := time.Now()
	var expectedValue float64
	for i := 1; i <= *iter; i++ {
		expectedValue = vanillaCFR.Run(root)
		if i%logEvery == 0 {
			glog.Infof("[iter %d] expected value: %v", i, expectedValue)
		}
	}

	glog.Infof("Solved in %v, final expected value: %v", time.Since(start), expectedValue)
	glog.Flush()
}
