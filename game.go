package gamekit

// Game is the minimal contract for a game definition: its arity, and the
// root of its game tree. S is the type of the game's intermediate state
// and M the type of its moves.
type Game[S any, M comparable] interface {
	NumPlayers() int
	Start() *Node[S, M]
}

// Finite is a game in which every player has a finite, deterministically
// enumerable set of available moves in any state. The slice returned by
// PossibleMoves is exhaustive: every listed move must be accepted by the
// game's continuations, and no unlisted move may be.
type Finite[S any, M comparable] interface {
	Game[S, M]

	PossibleMoves(p Player, state S) []M
}

// Playable is a finite game that can additionally pre-validate a move
// without advancing the tree.
type Playable[S any, M comparable] interface {
	Finite[S, M]

	IsValidMove(p Player, state S, move M) bool
}
