// Battle two strategies against each other in the repeated prisoner's
// dilemma and report their cumulative payoffs.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"github.com/golang/glog"

	"github.com/timpalpant/gamekit"
	"github.com/timpalpant/gamekit/games"
	"github.com/timpalpant/gamekit/normal"
)

func main() {
	iterations := flag.Int("iterations", 10, "Number of stage game iterations per game")
	numGames := flag.Int("num_games", 100, "Number of games to play")
	seed := flag.Int64("seed", 123, "Random seed")
	strat0 := flag.String("strategy0", "titfortat", "Strategy for player 0: titfortat, defect, cooperate, or random")
	strat1 := flag.String("strategy1", "defect", "Strategy for player 1: titfortat, defect, cooperate, or random")
	flag.Parse()

	go http.ListenAndServe("localhost:4123", nil)

	rng := rand.New(rand.NewSource(*seed))
	repeated, err := gamekit.NewRepeated[normal.State, games.DilemmaMove](games.NewPrisonersDilemma(), *iterations)
	if err != nil {
		glog.Exit(err)
	}

	strategies := []gamekit.Strategy[games.RepeatedDilemmaState, games.DilemmaMove]{
		mustStrategy(*strat0, rng),
		mustStrategy(*strat1, rng),
	}

	total := gamekit.ZeroPayoff(2)
	for i := 0; i < *numGames; i++ {
		outcome, err := gamekit.Play[games.RepeatedDilemmaState, games.DilemmaMove](repeated, strategies, rng)
		if err != nil {
			glog.Exit(err)
		}

		glog.V(1).Infof("Game %d: %v", i, outcome.Payoff)
		total = total.Add(outcome.Payoff)
	}

	glog.Infof("After %d games of %d iterations: %s=%g, %s=%g",
		*numGames, *iterations, *strat0, total.Utility(0), *strat1, total.Utility(1))
	glog.Flush()
}

func mustStrategy(name string, rng *rand.Rand) gamekit.Strategy[games.RepeatedDilemmaState, games.DilemmaMove] {
	switch name {
	case "titfortat":
		return games.TitForTat{}
	case "defect":
		return games.AlwaysDefect{}
	case "cooperate":
		return games.AlwaysCooperate{}
	case "random":
		return &games.RandomStrategy[games.RepeatedDilemmaState, games.DilemmaMove]{Rng: rng}
	default:
		glog.Exitf("unknown strategy %q", name)
		return nil
	}
}
