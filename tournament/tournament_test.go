package tournament

import (
	"context"
	"testing"

	"github.com/timpalpant/gamekit"
	"github.com/timpalpant/gamekit/games"
	"github.com/timpalpant/gamekit/normal"
)

func repeatedDilemma(t *testing.T, iterations int) *gamekit.Repeated[normal.State, games.DilemmaMove] {
	t.Helper()
	g, err := gamekit.NewRepeated[normal.State, games.DilemmaMove](games.NewPrisonersDilemma(), iterations)
	if err != nil {
		t.Fatal(err)
	}

	return g
}

func TestRoundRobinDilemma(t *testing.T) {
	g := repeatedDilemma(t, 3)
	entrants := []Entrant[games.RepeatedDilemmaState, games.DilemmaMove]{
		{Name: "titfortat", Strategy: games.TitForTat{}},
		{Name: "defect", Strategy: games.AlwaysDefect{}},
		{Name: "cooperate", Strategy: games.AlwaysCooperate{}},
	}

	results, table, err := RoundRobin[games.RepeatedDilemmaState, games.DilemmaMove](
		context.Background(), g, entrants, 2, 42)
	if err != nil {
		t.Fatal(err)
	}

	// Every ordered pair of distinct entrants plays one matchup.
	if len(results) != 6 {
		t.Fatalf("got %d results, expected 6", len(results))
	}

	// All three strategies are deterministic, so the table is exact.
	// Per 3-iteration game: titfortat vs defect is (2,5), titfortat vs
	// cooperate is (6,6), defect vs cooperate is (9,0); each matchup plays
	// 2 games and each pair meets in both seatings.
	want := Table{
		"titfortat": 32,
		"defect":    56,
		"cooperate": 24,
	}

	for name, score := range want {
		if table[name] != score {
			t.Errorf("table[%q] = %v, expected %v", name, table[name], score)
		}
	}
}

func TestRoundRobinMatchupPayoffs(t *testing.T) {
	g := repeatedDilemma(t, 3)
	entrants := []Entrant[games.RepeatedDilemmaState, games.DilemmaMove]{
		{Name: "titfortat", Strategy: games.TitForTat{}},
		{Name: "defect", Strategy: games.AlwaysDefect{}},
	}

	results, _, err := RoundRobin[games.RepeatedDilemmaState, games.DilemmaMove](
		context.Background(), g, entrants, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range results {
		var want gamekit.Payoff
		if r.Names[0] == "titfortat" {
			want = gamekit.Payoff{2, 5}
		} else {
			want = gamekit.Payoff{5, 2}
		}

		if r.Payoff.Utility(0) != want[0] || r.Payoff.Utility(1) != want[1] {
			t.Errorf("matchup %v payoff = %v, expected %v", r.Names, r.Payoff, want)
		}
	}
}

func TestRoundRobinValidation(t *testing.T) {
	g := repeatedDilemma(t, 1)
	one := []Entrant[games.RepeatedDilemmaState, games.DilemmaMove]{
		{Name: "solo", Strategy: games.AlwaysDefect{}},
	}

	if _, _, err := RoundRobin[games.RepeatedDilemmaState, games.DilemmaMove](
		context.Background(), g, one, 1, 1); err == nil {
		t.Error("expected an error for a single entrant")
	}
}

func TestRoundRobinCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := repeatedDilemma(t, 1000)
	entrants := []Entrant[games.RepeatedDilemmaState, games.DilemmaMove]{
		{Name: "titfortat", Strategy: games.TitForTat{}},
		{Name: "defect", Strategy: games.AlwaysDefect{}},
	}

	if _, _, err := RoundRobin[games.RepeatedDilemmaState, games.DilemmaMove](
		context.Background(), g, entrants, 1, 1); err != nil {
		t.Fatalf("control tournament failed: %v", err)
	}

	if _, _, err := RoundRobin[games.RepeatedDilemmaState, games.DilemmaMove](
		ctx, g, entrants, 100, 1); err == nil {
		t.Error("expected an error from a cancelled tournament")
	}
}
