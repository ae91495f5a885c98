package gamekit

import "fmt"

// NodeKind discriminates the three kinds of game tree node.
type NodeKind uint8

const (
	_ NodeKind = iota
	// TurnNode is a node at which one or more players move simultaneously.
	TurnNode
	// ChanceNode is a node at which nature draws a move from a distribution.
	ChanceNode
	// EndNode is a terminal node carrying the final outcome.
	EndNode
)

var nodeKindStr = [...]string{
	"Invalid",
	"Turn",
	"Chance",
	"End",
}

func (k NodeKind) String() string {
	return nodeKindStr[k]
}

// Continuation computes the next node of the game tree from the current
// state and one move per requested player, in the requested order.
// A rejected move is reported as *InvalidMoveError; any other outcome is
// the next node. Continuations must be pure: they may not mutate the state
// they are given or any captured external state, since nodes and states
// may be shared by multiple in-flight branches of a search.
type Continuation[S any, M comparable] func(state S, moves []M) (*Node[S, M], error)

// Node is one node of an extensive-form game tree. It is a closed tagged
// union over Turn, Chance and End nodes; Kind determines which of the
// remaining fields are meaningful.
//
// State is shared, not copied, between a node and anything derived from
// it. Once a state value has been published into a node it must never be
// mutated, so sharing requires no synchronization.
type Node[S any, M comparable] struct {
	Kind  NodeKind
	State S

	// ToMove is the ordered, non-empty set of players that must move at a
	// Turn node. Each player appears exactly once.
	ToMove []Player
	next   Continuation[S, M]

	// Dist is the distribution nature draws from at a Chance node.
	Dist *Dist[M]

	// Outcome is the terminal result at an End node.
	Outcome *Outcome[M]
}

// NewTurn creates a node at which the given players move simultaneously.
// The to-move set must be non-empty and free of duplicates; a violation is
// a programming error and panics.
func NewTurn[S any, M comparable](state S, toMove []Player, next Continuation[S, M]) *Node[S, M] {
	if len(toMove) == 0 {
		panic("turn node must have at least one player to move")
	}

	seen := make(map[Player]bool, len(toMove))
	for _, p := range toMove {
		if p == Nature {
			panic("nature cannot appear in a turn node's to-move set")
		}
		if seen[p] {
			panic(fmt.Sprintf("%v listed twice in turn node's to-move set", p))
		}

		seen[p] = true
	}

	return &Node[S, M]{
		Kind:   TurnNode,
		State:  state,
		ToMove: toMove,
		next:   next,
	}
}

// NewPlayerTurn creates a node at which a single player moves.
func NewPlayerTurn[S any, M comparable](state S, p Player, next func(S, M) (*Node[S, M], error)) *Node[S, M] {
	return NewTurn(state, []Player{p}, func(s S, moves []M) (*Node[S, M], error) {
		return next(s, moves[0])
	})
}

// NewAllPlayerTurn creates a node at which all n players move simultaneously.
func NewAllPlayerTurn[S any, M comparable](state S, n int, next Continuation[S, M]) *Node[S, M] {
	return NewTurn(state, AllPlayers(n), next)
}

// NewChance creates a node at which nature draws a move from the given
// distribution.
func NewChance[S any, M comparable](state S, d *Dist[M], next func(S, M) (*Node[S, M], error)) *Node[S, M] {
	if d == nil || d.Len() == 0 {
		panic("chance node must have a non-empty distribution")
	}

	return &Node[S, M]{
		Kind:  ChanceNode,
		State: state,
		Dist:  d,
		next: func(s S, moves []M) (*Node[S, M], error) {
			return next(s, moves[0])
		},
	}
}

// NewEnd creates a terminal node carrying the final outcome.
func NewEnd[S any, M comparable](state S, outcome Outcome[M]) *Node[S, M] {
	return &Node[S, M]{
		Kind:    EndNode,
		State:   state,
		Outcome: &outcome,
	}
}

// Play advances a Turn node by submitting one move per player in the
// node's to-move order. It panics if called on a non-Turn node or with the
// wrong number of moves; both are programming errors. A move rejected by
// the game is reported as an *InvalidMoveError and is recoverable.
func (n *Node[S, M]) Play(moves ...M) (*Node[S, M], error) {
	if n.Kind != TurnNode {
		panic(fmt.Sprintf("cannot play moves at a %v node", n.Kind))
	}

	if len(moves) != len(n.ToMove) {
		panic(fmt.Sprintf("turn node for %d players given %d moves",
			len(n.ToMove), len(moves)))
	}

	return n.next(n.State, moves)
}

// PlayChance advances a Chance node with the move drawn by nature.
// It panics if called on a non-Chance node.
func (n *Node[S, M]) PlayChance(move M) (*Node[S, M], error) {
	if n.Kind != ChanceNode {
		panic(fmt.Sprintf("cannot play a chance move at a %v node", n.Kind))
	}

	return n.next(n.State, []M{move})
}

// Sequentialize rewrites a Turn node with k simultaneous movers into an
// equivalent chain of k single-player Turn nodes, in the original to-move
// order. Each link collects one player's move; the final link invokes the
// original continuation with the fully assembled move vector. Nodes that
// are not multi-player Turns are returned unchanged.
//
// Playing the chain with the same k moves, in declared order, yields the
// identical result as invoking the original continuation directly.
func (n *Node[S, M]) Sequentialize() *Node[S, M] {
	if n.Kind != TurnNode || len(n.ToMove) == 1 {
		return n
	}

	return sequentializeFrom(n, nil)
}

func sequentializeFrom[S any, M comparable](orig *Node[S, M], collected []M) *Node[S, M] {
	p := orig.ToMove[len(collected)]
	return NewPlayerTurn(orig.State, p, func(s S, m M) (*Node[S, M], error) {
		moves := make([]M, len(collected), len(collected)+1)
		copy(moves, collected)
		moves = append(moves, m)
		if len(moves) == len(orig.ToMove) {
			return orig.next(orig.State, moves)
		}

		return sequentializeFrom(orig, moves), nil
	})
}
