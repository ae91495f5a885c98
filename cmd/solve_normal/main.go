// Report the pure Nash equilibria, Pareto optimal profiles, and dominated
// moves of one of the built-in normal-form games.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"

	"github.com/timpalpant/gamekit"
	"github.com/timpalpant/gamekit/games"
	"github.com/timpalpant/gamekit/normal"
)

type analysis struct {
	Game         string
	Equilibria   []string
	ParetoOptima []string
	Dominated    map[int][]string
}

func main() {
	game := flag.String("game", "pd", "Game to analyze: pd, stag, or rps")
	output := flag.String("output", "", "Optional gzipped gob file to save the analysis to")
	flag.Parse()

	var result *analysis
	switch *game {
	case "pd":
		result = analyze(*game, games.NewPrisonersDilemma())
	case "stag":
		result = analyze(*game, games.NewStagHunt())
	case "rps":
		result = analyze(*game, games.NewRockPaperScissors())
	default:
		glog.Exitf("unknown game %q", *game)
	}

	fmt.Printf("Pure Nash equilibria: %v\n", result.Equilibria)
	fmt.Printf("Pareto optimal profiles: %v\n", result.ParetoOptima)
	for p, dominated := range result.Dominated {
		for _, d := range dominated {
			fmt.Printf("Player%d: %s\n", p, d)
		}
	}

	if *output != "" {
		mustSave(result, *output)
		glog.Infof("Saved analysis to %v", *output)
	}
}

func analyze[M comparable](name string, g *normal.Game[M]) *analysis {
	result := &analysis{Game: name, Dominated: make(map[int][]string)}
	for _, profile := range g.PureNashEquilibria() {
		result.Equilibria = append(result.Equilibria, profile.String())
	}

	for _, profile := range g.ParetoOptimalSolutions() {
		result.ParetoOptima = append(result.ParetoOptima, profile.String())
	}

	for p := 0; p < g.NumPlayers(); p++ {
		for _, d := range g.DominatedMovesFor(gamekit.Player(p)) {
			relation := "weakly"
			if d.Strict {
				relation = "strictly"
			}

			result.Dominated[p] = append(result.Dominated[p],
				fmt.Sprintf("%v %s dominated by %v", d.Dominated, relation, d.Dominator))
		}
	}

	return result
}

func mustSave(result *analysis, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		glog.Exit(err)
	}
	defer f.Close()

	w := gzip.NewWriter(f)
	defer w.Close()

	if err := gob.NewEncoder(w).Encode(result); err != nil {
		glog.Exit(err)
	}
}
