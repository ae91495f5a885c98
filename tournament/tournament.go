// Package tournament runs round-robin matches between strategies over a
// finite two-player game, playing independent matchups in parallel.
package tournament

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/gamekit"
)

// Entrant is a named strategy entered into a tournament.
type Entrant[S any, M comparable] struct {
	Name     string
	Strategy gamekit.Strategy[S, M]
}

// Result records the cumulative payoff of one matchup: Names[i] sat in
// seat i for every game of the matchup.
type Result struct {
	Names  []string
	Payoff gamekit.Payoff
}

// Table is the aggregate score of each entrant over a whole tournament.
type Table map[string]float64

// RoundRobin plays every ordered pair of distinct entrants against each
// other; each pair plays gamesPerMatch games with the first entrant in
// seat 0. Matchups are independent of one another and run in parallel,
// bounded by the number of CPUs, with results collected over a channel.
//
// The outcomes and payoff functions of a gamekit game are pure, so the
// same game value is safely shared by all matchups. Each matchup seeds its
// own rng from seed so tournaments are reproducible.
func RoundRobin[S any, M comparable](ctx context.Context, g gamekit.Finite[S, M], entrants []Entrant[S, M], gamesPerMatch int, seed int64) ([]Result, Table, error) {
	if g.NumPlayers() != 2 {
		return nil, nil, errors.Errorf("round robin requires a 2-player game, got %d players", g.NumPlayers())
	}

	if len(entrants) < 2 {
		return nil, nil, errors.Errorf("round robin requires at least 2 entrants, got %d", len(entrants))
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	resultCh := make(chan Result)

	go func() {
		defer close(resultCh)
		matchSeed := seed
		for i := range entrants {
			for j := range entrants {
				if i == j {
					continue
				}

				home, away := entrants[i], entrants[j]
				rng := rand.New(rand.NewSource(matchSeed))
				matchSeed++
				group.Go(func() error {
					payoff, err := playMatch(ctx, g, home, away, gamesPerMatch, rng)
					if err != nil {
						return errors.Wrapf(err, "match %s vs %s", home.Name, away.Name)
					}

					select {
					case resultCh <- Result{Names: []string{home.Name, away.Name}, Payoff: payoff}:
					case <-ctx.Done():
						return ctx.Err()
					}

					return nil
				})
			}
		}

		// Close the channel once all matchups have finished; any error is
		// surfaced by the second Wait below.
		_ = group.Wait()
	}()

	var results []Result
	table := make(Table)
	for r := range resultCh {
		glog.V(1).Infof("Match %s vs %s: %v", r.Names[0], r.Names[1], r.Payoff)
		results = append(results, r)
		for i, name := range r.Names {
			table[name] += r.Payoff.Utility(gamekit.Player(i))
		}
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return results, table, nil
}

func playMatch[S any, M comparable](ctx context.Context, g gamekit.Finite[S, M], home, away Entrant[S, M], games int, rng *rand.Rand) (gamekit.Payoff, error) {
	total := gamekit.ZeroPayoff(2)
	strategies := []gamekit.Strategy[S, M]{home.Strategy, away.Strategy}
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome, err := gamekit.Play(g, strategies, rng)
		if err != nil {
			return nil, errors.Wrapf(err, "game %d", i)
		}

		total = total.Add(outcome.Payoff)
	}

	return total, nil
}
