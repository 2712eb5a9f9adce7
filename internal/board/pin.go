package board

// PinnedPieces returns the bitboard of blocker's pieces that, if moved,
// would expose king's king to a slider of the opposite color (spec
// §4.3). Implementation: cast rook/bishop pseudo-attacks from the king
// square as if the board were empty, intersect with the opposing
// rooks/bishops/queens to find candidate pinners, then for each
// candidate check that exactly one piece lies strictly between it and
// the king and that the piece belongs to blocker.
func (p *Position) PinnedPieces(blocker, king Color) Bitboard {
	kingSq := p.KingSquare[king]
	pinner := king.Other()

	candidates := (RookAttacks(kingSq, Empty) & (p.Pieces[pinner][Rook] | p.Pieces[pinner][Queen])) |
		(BishopAttacks(kingSq, Empty) & (p.Pieces[pinner][Bishop] | p.Pieces[pinner][Queen]))

	var pinned Bitboard
	for candidates != 0 {
		sniper := candidates.PopLSB()
		between := Between(kingSq, sniper) & p.AllOccupied
		if between.PopCount() != 1 {
			continue
		}
		blockerSq := between.LSB()
		if p.Occupied[blocker]&SquareBB(blockerSq) != 0 {
			pinned |= SquareBB(blockerSq)
		}
	}
	return pinned
}

// isPinLegal reports whether moving the piece on `from` to `to` preserves
// a pin: legal either because nothing pins it, or because the
// destination stays on the same ray through the king.
func isPinLegal(pinned Bitboard, kingSq, from, to Square) bool {
	if pinned&SquareBB(from) == 0 {
		return true
	}
	return Aligned(kingSq, from, to)
}

// enPassantLeavesKingSafe implements the occupancy-recompute fast path
// for en-passant legality (spec §4.3, §9): after removing the moving
// pawn and the captured pawn and adding the destination, no rook/queen
// or bishop/queen ray from the king may hit an opposing slider.
func (p *Position) enPassantLeavesKingSafe(from, to, capturedSq Square, us Color) bool {
	kingSq := p.KingSquare[us]
	occ := p.AllOccupied
	occ &^= SquareBB(from)
	occ &^= SquareBB(capturedSq)
	occ |= SquareBB(to)

	enemy := us.Other()
	rookSliders := p.Pieces[enemy][Rook] | p.Pieces[enemy][Queen]
	if RookAttacks(kingSq, occ)&rookSliders != 0 {
		return false
	}
	bishopSliders := p.Pieces[enemy][Bishop] | p.Pieces[enemy][Queen]
	if BishopAttacks(kingSq, occ)&bishopSliders != 0 {
		return false
	}
	return true
}
