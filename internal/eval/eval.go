// Package eval implements the evaluator: material plus mobility, from
// white's perspective (spec §4.5). It has no side effects and does not
// mutate the position it scores.
package eval

import "github.com/chego-engine/chego/internal/board"

// Mate and Draw are the sentinel scores the search uses to signal
// terminal results; Score never returns a value in this range, so the
// search can tell "evaluated" from "terminal" by magnitude alone
// (spec §4.5, §7).
const (
	Mate = 30000
	Draw = 0
)

// IsMateScore reports whether s is a checkmate sentinel (possibly
// adjusted for distance-to-mate by the search).
func IsMateScore(s int) bool {
	return s > Mate-1000 || s < -(Mate-1000)
}

// Score returns pos's static evaluation: material balance plus mobility
// (count of attacked squares), both white-count-minus-black-count.
// Exact piece values are not a contract; only their relative ordering is
// (pawn ≪ knight ≈ bishop < rook < queen, spec §4.5).
func Score(pos *board.Position) int {
	return pos.Material() + mobility(pos)
}

// mobility counts, for each side, the total number of squares attacked
// by its pieces (kings included, per spec §4.5's "count of attacked
// squares" — it does not carve kings out), and returns the difference.
func mobility(pos *board.Position) int {
	occupied := pos.AllOccupied
	white := countAttacks(pos, board.White, occupied)
	black := countAttacks(pos, board.Black, occupied)
	return white - black
}

func countAttacks(pos *board.Position, c board.Color, occupied board.Bitboard) int {
	count := 0

	pawns := pos.Pieces[c][board.Pawn]
	for pawns != 0 {
		sq := pawns.PopLSB()
		count += board.PawnAttacks(sq, c).PopCount()
	}

	knights := pos.Pieces[c][board.Knight]
	for knights != 0 {
		sq := knights.PopLSB()
		count += board.KnightAttacks(sq).PopCount()
	}

	bishops := pos.Pieces[c][board.Bishop]
	for bishops != 0 {
		sq := bishops.PopLSB()
		count += board.BishopAttacks(sq, occupied).PopCount()
	}

	rooks := pos.Pieces[c][board.Rook]
	for rooks != 0 {
		sq := rooks.PopLSB()
		count += board.RookAttacks(sq, occupied).PopCount()
	}

	queens := pos.Pieces[c][board.Queen]
	for queens != 0 {
		sq := queens.PopLSB()
		count += board.QueenAttacks(sq, occupied).PopCount()
	}

	count += board.KingAttacks(pos.KingSquare[c]).PopCount()

	return count
}
