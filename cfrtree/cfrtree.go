// Package cfrtree adapts a gamekit game tree to the cfr.GameTreeNode
// interface, so go-cfr's solvers and tree utilities can run over any
// finite gamekit game. Games are assumed to be perfect-information: each
// player's information set is the full transcript of moves so far.
package cfrtree

import (
	"fmt"
	"math/rand"

	"github.com/timpalpant/go-cfr"

	"github.com/timpalpant/gamekit"
)

// Node wraps one node of a finite gamekit game's sequentialized tree.
// Children are built lazily from the game's possible moves and released
// again by Close, mirroring a single solver pass over the tree.
type Node[S any, M comparable] struct {
	game   gamekit.Finite[S, M]
	node   *gamekit.Node[S, M]
	parent *Node[S, M]
	key    string
	rng    *rand.Rand

	children []*Node[S, M]
}

var _ cfr.GameTreeNode = (*Node[struct{}, int])(nil)

// New creates the root adapter node for the given game.
func New[S any, M comparable](g gamekit.Finite[S, M], rng *rand.Rand) *Node[S, M] {
	return &Node[S, M]{
		game: g,
		node: g.Start().Sequentialize(),
		key:  "/",
		rng:  rng,
	}
}

// Type implements cfr.GameTreeNode.
func (n *Node[S, M]) Type() cfr.NodeType {
	switch n.node.Kind {
	case gamekit.ChanceNode:
		return cfr.ChanceNodeType
	case gamekit.EndNode:
		return cfr.TerminalNodeType
	default:
		return cfr.PlayerNodeType
	}
}

// Player implements cfr.GameTreeNode.
func (n *Node[S, M]) Player() int {
	if n.node.Kind != gamekit.TurnNode {
		return 0
	}

	return int(n.node.ToMove[0])
}

// NumChildren implements cfr.GameTreeNode.
func (n *Node[S, M]) NumChildren() int {
	n.buildChildren()
	return len(n.children)
}

// GetChild implements cfr.GameTreeNode.
func (n *Node[S, M]) GetChild(i int) cfr.GameTreeNode {
	n.buildChildren()
	return n.children[i]
}

// GetChildProbability implements cfr.GameTreeNode.
func (n *Node[S, M]) GetChildProbability(i int) float64 {
	if n.node.Kind != gamekit.ChanceNode {
		panic("cannot get the probability of a non-chance node")
	}

	return n.node.Dist.Prob(i)
}

// SampleChild implements cfr.GameTreeNode.
func (n *Node[S, M]) SampleChild() (cfr.GameTreeNode, float64) {
	if n.node.Kind != gamekit.ChanceNode {
		panic("cannot sample the child of a non-chance node")
	}

	n.buildChildren()
	x := n.rng.Float64()
	for i := range n.children {
		x -= n.node.Dist.Prob(i)
		if x < 0 {
			return n.children[i], n.node.Dist.Prob(i)
		}
	}

	last := len(n.children) - 1
	return n.children[last], n.node.Dist.Prob(last)
}

// InfoSet implements cfr.GameTreeNode. Under perfect information every
// player observes the full transcript, so the info set is keyed by the
// path to this node plus the observing player.
func (n *Node[S, M]) InfoSet(player int) cfr.InfoSet {
	return &infoSet{key: fmt.Sprintf("%d@%s", player, n.key)}
}

// Utility implements cfr.GameTreeNode.
func (n *Node[S, M]) Utility(player int) float64 {
	if n.node.Kind != gamekit.EndNode {
		panic("cannot get the utility of a non-terminal node")
	}

	return n.node.Outcome.Payoff.Utility(gamekit.Player(player))
}

// Parent implements cfr.GameTreeNode.
func (n *Node[S, M]) Parent() cfr.GameTreeNode {
	return n.parent
}

// Close implements cfr.GameTreeNode.
func (n *Node[S, M]) Close() {
	n.children = nil
}

func (n *Node[S, M]) buildChildren() {
	if n.children != nil {
		return
	}

	switch n.node.Kind {
	case gamekit.TurnNode:
		p := n.node.ToMove[0]
		moves := n.game.PossibleMoves(p, n.node.State)
		n.children = make([]*Node[S, M], len(moves))
		for i, m := range moves {
			n.children[i] = n.makeChild(m)
		}

	case gamekit.ChanceNode:
		n.children = make([]*Node[S, M], n.node.Dist.Len())
		for i := range n.children {
			n.children[i] = n.makeChild(n.node.Dist.Move(i))
		}

	case gamekit.EndNode:
		n.children = []*Node[S, M]{}
	}
}

// makeChild advances the underlying tree by one move. The move came from
// the game's own move list or chance distribution, so a rejection is a
// malformed game, not a recoverable invalid move.
func (n *Node[S, M]) makeChild(m M) *Node[S, M] {
	var next *gamekit.Node[S, M]
	var err error
	var p gamekit.Player
	if n.node.Kind == gamekit.ChanceNode {
		p = gamekit.Nature
		next, err = n.node.PlayChance(m)
	} else {
		p = n.node.ToMove[0]
		next, err = n.node.Play(m)
	}

	if err != nil {
		panic(&gamekit.MalformedGameError{Player: p, Move: m, Cause: err})
	}

	return &Node[S, M]{
		game:   n.game,
		node:   next.Sequentialize(),
		parent: n,
		key:    fmt.Sprintf("%s%v/", n.key, m),
		rng:    n.rng,
	}
}

// infoSet is a perfect-information cfr.InfoSet: the key alone identifies it.
type infoSet struct {
	key string
}

// Key implements cfr.InfoSet.
func (is *infoSet) Key() string {
	return is.key
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (is *infoSet) MarshalBinary() ([]byte, error) {
	return []byte(is.key), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (is *infoSet) UnmarshalBinary(buf []byte) error {
	is.key = string(buf)
	return nil
}
