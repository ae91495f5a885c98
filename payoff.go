package gamekit

import (
	"fmt"
	"strings"
)

// Payoff assigns one utility value to each player in a game.
// Payoff[p] is the utility received by player p.
type Payoff []float64

// ZeroPayoff returns a payoff of zero for each of n players.
func ZeroPayoff(n int) Payoff {
	return make(Payoff, n)
}

// WinnerPayoff returns the zero-sum payoff in which the given player
// receives n-1 and every other player receives -1.
func WinnerPayoff(n int, winner Player) Payoff {
	result := make(Payoff, n)
	for p := range result {
		result[p] = -1
	}

	result[winner] = float64(n - 1)
	return result
}

// LoserPayoff returns the zero-sum payoff in which the given player
// receives -(n-1) and every other player receives 1.
func LoserPayoff(n int, loser Player) Payoff {
	result := make(Payoff, n)
	for p := range result {
		result[p] = 1
	}

	result[loser] = -float64(n - 1)
	return result
}

// Utility gets the utility received by the given player.
func (p Payoff) Utility(player Player) float64 {
	return p[player]
}

// Add returns the element-wise sum of two payoffs.
// The payoffs must be for games with the same number of players.
func (p Payoff) Add(other Payoff) Payoff {
	if len(p) != len(other) {
		panic(fmt.Errorf("cannot add %d-player payoff to %d-player payoff",
			len(other), len(p)))
	}

	result := make(Payoff, len(p))
	for i := range p {
		result[i] = p[i] + other[i]
	}

	return result
}

// Sum gets the total utility across all players.
// For a zero-sum game this is always zero.
func (p Payoff) Sum() float64 {
	total := 0.0
	for _, v := range p {
		total += v
	}

	return total
}

// Clone returns a copy of this payoff.
func (p Payoff) Clone() Payoff {
	result := make(Payoff, len(p))
	copy(result, p)
	return result
}

func (p Payoff) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
