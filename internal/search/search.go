// Package search implements iterative-deepening alpha-beta search with a
// transposition table (spec §4.7). It is written as explicit maximizing
// and minimizing branches — not negamax-with-negation — to match the
// "from white" score convention the evaluator uses.
package search

import (
	"github.com/chego-engine/chego/internal/board"
	"github.com/chego-engine/chego/internal/eval"
	"github.com/chego-engine/chego/internal/tt"
)

// MaxPly is a nominal recursion-depth bound. Nothing in this package
// reads it: mate-distance adjustment uses the eval.Mate-1000 threshold,
// and the iterative-deepening maximum is the real depth bound (spec §5).
const MaxPly = 128

// Searcher runs one alpha-beta search against a shared transposition
// table. It mutates the position it's given in place via make/undo and
// restores it fully before returning (spec §6's search entry point
// contract).
type Searcher struct {
	pos   *board.Position
	table *tt.Table
	nodes uint64
}

// New creates a Searcher backed by table, which may be shared across
// searches within a game.
func New(table *tt.Table) *Searcher {
	return &Searcher{table: table}
}

// Nodes returns the number of nodes visited by the most recent Search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// Search runs iterative deepening from depth 2 up to maxDepth and
// returns the best move found and its score (spec §4.7). It stops early
// if a mate score is found at the root. pos is mutated during search and
// is restored to its input state before Search returns.
func (s *Searcher) Search(pos *board.Position, maxDepth int) (board.Move, int) {
	s.pos = pos
	s.nodes = 0

	start := 2
	if maxDepth < start {
		start = maxDepth
	}
	if start < 1 {
		start = 1
	}

	var bestMove board.Move
	bestScore := 0

	for depth := start; depth <= maxDepth; depth++ {
		bestMove, bestScore = s.searchRoot(depth)
		if eval.IsMateScore(bestScore) {
			break
		}
	}

	return bestMove, bestScore
}

// searchRoot enumerates legal root moves and returns the one with the
// best score for the side to move, first-found wins among ties
// (spec §4.7).
func (s *Searcher) searchRoot(depth int) (board.Move, int) {
	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if s.pos.InCheck() {
			return board.NoMove, mateScore(s.pos.SideToMove, 0)
		}
		return board.NoMove, eval.Draw
	}

	us := s.pos.SideToMove
	maximizing := us == board.White

	bestMove := moves.Get(0)
	var bestScore int
	if maximizing {
		bestScore = -eval.Mate - 1
	} else {
		bestScore = eval.Mate + 1
	}

	alpha, beta := -eval.Mate-1, eval.Mate+1

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		sp := s.pos.MakeMove(m)
		score := s.search(depth-1, 1, alpha, beta)
		s.pos.UnmakeMove(m, sp)

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
	}

	return bestMove, bestScore
}

// search is the internal alpha-beta node (spec §4.7, steps 1-6).
func (s *Searcher) search(depth, ply, alpha, beta int) int {
	s.nodes++

	if s.pos.HalfMoveClock >= 100 {
		return eval.Draw
	}

	entry, found := s.table.Probe(s.pos.Hash)
	if found {
		if score, ok := tt.UsableScore(entry, depth, alpha, beta); ok {
			return adjustFromTT(score, ply)
		}
	}

	if depth <= 0 {
		score := eval.Score(s.pos)
		s.table.Store(s.pos.Hash, 0, score, tt.Exact, board.NoMove)
		return score
	}

	moves := s.pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if s.pos.InCheck() {
			return mateScore(s.pos.SideToMove, ply)
		}
		return eval.Draw
	}

	var ttMove board.Move
	if found {
		ttMove = entry.BestMove
	}
	orderTTMoveFirst(&moves, ttMove)

	us := s.pos.SideToMove
	maximizing := us == board.White

	bestMove := moves.Get(0)
	var best int
	bound := tt.Exact

	if maximizing {
		best = -eval.Mate - 1
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			sp := s.pos.MakeMove(m)
			score := s.search(depth-1, ply+1, alpha, beta)
			s.pos.UnmakeMove(m, sp)

			if score > best {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				bound = tt.Lower
				break
			}
		}
	} else {
		best = eval.Mate + 1
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			sp := s.pos.MakeMove(m)
			score := s.search(depth-1, ply+1, alpha, beta)
			s.pos.UnmakeMove(m, sp)

			if score < best {
				best = score
				bestMove = m
			}
			if best < beta {
				beta = best
			}
			if alpha >= beta {
				bound = tt.Upper
				break
			}
		}
	}

	s.table.Store(s.pos.Hash, depth, adjustToTT(best, ply), bound, bestMove)
	return best
}

// mateScore returns the checkmate sentinel from white's perspective: a
// negative score (white is mated) if it's white's move with no legal
// moves in check, positive if it's black's. Closer mates score further
// from zero distance via the ply term so shorter mates are preferred.
func mateScore(sideToMove board.Color, ply int) int {
	if sideToMove == board.White {
		return -eval.Mate + ply
	}
	return eval.Mate - ply
}

// adjustToTT/adjustFromTT re-bias a mate score by ply so that a mate
// found N plies below the TT-store node reads correctly when reused at a
// different ply above it (spec §7: mate scores are "outside the normal
// score range" and need this distance correction to remain meaningful
// across transposition-table reuse).
func adjustToTT(score, ply int) int {
	if score > eval.Mate-1000 {
		return score + ply
	}
	if score < -(eval.Mate - 1000) {
		return score - ply
	}
	return score
}

func adjustFromTT(score, ply int) int {
	if score > eval.Mate-1000 {
		return score - ply
	}
	if score < -(eval.Mate - 1000) {
		return score + ply
	}
	return score
}

// orderTTMoveFirst swaps the transposition table's recorded best move to
// the front of the list, the only move-ordering this search specifies
// beyond generation order (spec §4.7).
func orderTTMoveFirst(moves *board.MoveList, ttMove board.Move) {
	if ttMove == board.NoMove {
		return
	}
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i) == ttMove {
			moves.Swap(0, i)
			return
		}
	}
}
