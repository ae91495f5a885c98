// Package games provides concrete example games and strategies built on
// the gamekit core: classic normal-form games, tic-tac-toe as a sequential
// game, and simple repeated-game strategies.
package games

import (
	"github.com/timpalpant/gamekit"
	"github.com/timpalpant/gamekit/normal"
)

// DilemmaMove is a move in a two-move social dilemma.
type DilemmaMove uint8

const (
	Cooperate DilemmaMove = iota
	Defect
)

var dilemmaMoveStr = [...]string{
	"Cooperate",
	"Defect",
}

func (m DilemmaMove) String() string {
	return dilemmaMoveStr[m]
}

// NewPrisonersDilemma creates the classic two-player prisoner's dilemma:
// mutual cooperation pays 2 each, mutual defection 1 each, and a lone
// defector 3 against the cooperator's 0.
func NewPrisonersDilemma() *normal.Game[DilemmaMove] {
	return mustSymmetric(2, []DilemmaMove{Cooperate, Defect}, []float64{2, 0, 3, 1})
}

// NewStagHunt creates the two-player stag hunt: hunting the stag together
// pays 3 each, but hunting hare alone is the safe 1-2 option.
func NewStagHunt() *normal.Game[DilemmaMove] {
	return mustSymmetric(2, []DilemmaMove{Cooperate, Defect}, []float64{3, 0, 2, 1})
}

func mustSymmetric[M comparable](players int, moves []M, utils []float64) *normal.Game[M] {
	g, err := normal.Symmetric(players, moves, utils)
	if err != nil {
		panic(err)
	}

	return g
}

// RepeatedDilemmaState is the state seen by strategies playing a repeated
// two-move social dilemma.
type RepeatedDilemmaState = gamekit.RepeatedState[normal.State, DilemmaMove]
