package gamekit

import (
	"context"
	"expvar"
	"math"

	"github.com/pkg/errors"
)

var (
	searchNodesVisited    = expvar.NewInt("search/nodes_visited")
	searchBranchesPruned  = expvar.NewInt("search/branches_pruned")
	searchHeuristicLeaves = expvar.NewInt("search/heuristic_leaves")
)

// ErrChanceNode is returned when minimax search reaches a Chance node
// before the depth bound. Expected-value search over chance nodes is not
// implemented; rather than silently approximate, the search fails loudly.
var ErrChanceNode = errors.New("minimax search does not support chance nodes")

// Searcher finds the minimax value of a finite game's tree for one target
// player, with alpha-beta pruning. The tree is sequentialized as it is
// traversed, so games with simultaneous turns are searched as if the
// players moved one at a time in declared order.
//
// Search depth is bounded by maxDepth; when the bound is reached before a
// terminal node, heuristic estimates the target player's utility from the
// state. A maxDepth < 0 means unbounded.
//
// Search trees can be exponential, so every recursive call checks the
// context for cancellation.
type Searcher[S any, M comparable] struct {
	game      Finite[S, M]
	target    Player
	maxDepth  int
	heuristic func(S) float64

	// disablePruning turns off alpha-beta cutoffs; pruning never changes
	// the returned value, only the number of nodes visited.
	disablePruning bool
	visited        int
}

// NewSearcher creates a minimax searcher for the given player.
// heuristic may be nil if maxDepth is unbounded.
func NewSearcher[S any, M comparable](g Finite[S, M], target Player, maxDepth int, heuristic func(S) float64) *Searcher[S, M] {
	return &Searcher[S, M]{
		game:      g,
		target:    target,
		maxDepth:  maxDepth,
		heuristic: heuristic,
	}
}

// NodesVisited gets the number of tree nodes expanded by this searcher
// since creation.
func (s *Searcher[S, M]) NodesVisited() int {
	return s.visited
}

// BestMove finds the move with the greatest minimax value for the target
// player at the given node, which must be a Turn node at which the target
// player moves (after sequentialization). It returns the chosen move and
// its value.
func (s *Searcher[S, M]) BestMove(ctx context.Context, node *Node[S, M]) (M, float64, error) {
	var zero M
	node = node.Sequentialize()
	if node.Kind != TurnNode {
		return zero, 0, errors.Errorf("cannot choose a move at a %v node", node.Kind)
	}

	if node.ToMove[0] != s.target {
		return zero, 0, errors.Errorf("it is %v's turn, not %v's", node.ToMove[0], s.target)
	}

	moves := s.game.PossibleMoves(s.target, node.State)
	if len(moves) == 0 {
		panic(&MalformedGameError{Player: s.target, Cause: errors.New("no possible moves at a turn node")})
	}

	best := math.Inf(-1)
	bestMove := moves[0]
	for _, m := range moves {
		child := s.advance(node, s.target, m)
		value, err := s.search(ctx, child, 1, best, math.Inf(1))
		if err != nil {
			return zero, 0, err
		}

		if value > best {
			best = value
			bestMove = m
		}
	}

	return bestMove, best, nil
}

// Value finds the minimax value of the given node for the target player.
func (s *Searcher[S, M]) Value(ctx context.Context, node *Node[S, M]) (float64, error) {
	return s.search(ctx, node, 0, math.Inf(-1), math.Inf(1))
}

func (s *Searcher[S, M]) search(ctx context.Context, node *Node[S, M], depth int, alpha, beta float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "search aborted")
	}

	s.visited++
	searchNodesVisited.Add(1)

	if node.Kind == EndNode {
		return node.Outcome.Payoff.Utility(s.target), nil
	}

	if s.maxDepth >= 0 && depth >= s.maxDepth {
		searchHeuristicLeaves.Add(1)
		return s.heuristic(node.State), nil
	}

	if node.Kind == ChanceNode {
		return 0, ErrChanceNode
	}

	node = node.Sequentialize()
	p := node.ToMove[0]
	moves := s.game.PossibleMoves(p, node.State)
	if len(moves) == 0 {
		panic(&MalformedGameError{Player: p, Cause: errors.New("no possible moves at a turn node")})
	}

	if p == s.target {
		value := math.Inf(-1)
		for _, m := range moves {
			child := s.advance(node, p, m)
			v, err := s.search(ctx, child, depth+1, alpha, beta)
			if err != nil {
				return 0, err
			}

			value = math.Max(value, v)
			alpha = math.Max(alpha, value)
			if value >= beta && !s.disablePruning {
				searchBranchesPruned.Add(1)
				break
			}
		}

		return value, nil
	}

	value := math.Inf(1)
	for _, m := range moves {
		child := s.advance(node, p, m)
		v, err := s.search(ctx, child, depth+1, alpha, beta)
		if err != nil {
			return 0, err
		}

		value = math.Min(value, v)
		beta = math.Min(beta, value)
		if value <= alpha && !s.disablePruning {
			searchBranchesPruned.Add(1)
			break
		}
	}

	return value, nil
}

// advance plays a single move that PossibleMoves listed. A rejection here
// means the Game implementation under search is broken: its move list and
// its continuation disagree. That contract violation is fatal, unlike an
// ordinary InvalidMoveError.
func (s *Searcher[S, M]) advance(node *Node[S, M], p Player, m M) *Node[S, M] {
	child, err := node.Play(m)
	if err != nil {
		panic(&MalformedGameError{Player: p, Move: m, Cause: err})
	}

	return child
}
