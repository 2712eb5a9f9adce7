// Package perft counts the leaf nodes of the legal-move tree to a fixed
// depth, the standard move-generator correctness check (spec §8). It
// walks board.Position directly via make/undo rather than copying the
// position at each ply.
package perft

import "github.com/chego-engine/chego/internal/board"

// Perft returns the number of leaf positions reachable from pos in
// exactly depth plies of strictly legal moves.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		sp := pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove(m, sp)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of
// the subtree it leads to — the standard tool for isolating which move
// a perft discrepancy comes from.
func Divide(pos *board.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		sp := pos.MakeMove(m)
		result[m.String()] = Perft(pos, depth-1)
		pos.UnmakeMove(m, sp)
	}
	return result
}
