package board

// castlingRightsFor returns both castling rights belonging to a color.
func castlingRightsFor(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

// castlingRightLostBySquare maps a rook home square to the single
// castling right that must be cleared when a piece leaves or is
// captured on it (spec §4.4, and the rook-capture Open Question of §9).
func castlingRightLostBySquare(sq Square) CastlingRights {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	default:
		return NoCastling
	}
}

// epCapturedSquare returns the square of the pawn taken by an en-passant
// capture landing on `to`, played by `us`.
func epCapturedSquare(to Square, us Color) Square {
	if us == White {
		return Square(int(to) - 8)
	}
	return Square(int(to) + 8)
}

// MakeMove applies m to p in place and returns the Savepos needed to
// reverse it with UnmakeMove (spec §4.4). The only routines allowed to
// mutate Position placement are MakeMove and UnmakeMove; everything else
// reads it.
func (p *Position) MakeMove(m Move) Savepos {
	sp := Savepos{
		HalfMoveClock:  p.HalfMoveClock,
		EnPassant:      p.EnPassant,
		CastlingRights: p.CastlingRights,
		Captured:       NoPiece,
	}

	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()

	oldEP := p.EnPassant
	p.Hash ^= zobristSideToMove
	if oldEP != NoSquare {
		p.Hash ^= zobristEnPassant[oldEP.File()]
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	switch {
	case m.IsCastle():
		rookHome := to
		kingTo, rookTo := castleDestinations(rookHome)
		sp.Captured = p.Squares[rookHome]

		p.Hash ^= ZobristPiece(us, King, from)
		p.movePiece(from, kingTo)
		p.Hash ^= ZobristPiece(us, King, kingTo)

		p.Hash ^= ZobristPiece(us, Rook, rookHome)
		p.movePiece(rookHome, rookTo)
		p.Hash ^= ZobristPiece(us, Rook, rookTo)

		p.CastlingRights &^= castlingRightsFor(us)
		p.EnPassant = NoSquare
		p.HalfMoveClock++

	case m.IsEnPassant():
		capturedSq := epCapturedSquare(to, us)
		captured := p.removePiece(capturedSq)
		sp.Captured = captured
		p.Hash ^= ZobristPiece(them, Pawn, capturedSq)

		p.Hash ^= ZobristPiece(us, Pawn, from)
		p.movePiece(from, to)
		p.Hash ^= ZobristPiece(us, Pawn, to)

		p.EnPassant = NoSquare
		p.HalfMoveClock = 0

	case m.IsPromotion():
		captured := p.removePiece(to)
		sp.Captured = captured
		if captured != NoPiece {
			p.Hash ^= ZobristPiece(captured.Color(), captured.Type(), to)
		}

		p.Hash ^= ZobristPiece(us, Pawn, from)
		p.removePiece(from)
		promo := m.Promotion()
		p.setPiece(NewPiece(promo, us), to)
		p.Hash ^= ZobristPiece(us, promo, to)

		p.EnPassant = NoSquare
		p.HalfMoveClock = 0
		p.CastlingRights &^= castlingRightLostBySquare(to)

	default:
		piece := p.Squares[from]
		pt := piece.Type()

		captured := p.removePiece(to)
		sp.Captured = captured
		if captured != NoPiece {
			p.Hash ^= ZobristPiece(captured.Color(), captured.Type(), to)
		}

		p.Hash ^= ZobristPiece(us, pt, from)
		p.movePiece(from, to)
		p.Hash ^= ZobristPiece(us, pt, to)

		if captured != NoPiece || pt == Pawn {
			p.HalfMoveClock = 0
		} else {
			p.HalfMoveClock++
		}

		p.EnPassant = NoSquare
		if pt == Pawn && abs(to.Rank()-from.Rank()) == 2 {
			p.EnPassant = Square((int(from) + int(to)) / 2)
		}

		if pt == King {
			p.CastlingRights &^= castlingRightsFor(us)
		}
		p.CastlingRights &^= castlingRightLostBySquare(from)
		p.CastlingRights &^= castlingRightLostBySquare(to)
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = them
	p.UpdateCheckers()

	if debugEnabled {
		debugAssert(p.CheckInvariants() == nil, "MakeMove left an invariant violated")
	}

	return sp
}

// UnmakeMove reverses the effect of MakeMove(m), which must have
// produced sp. It is the exact inverse (spec §4.4): placement is
// recovered from m and the current board, while half-move clock,
// en-passant target, castling rights and the captured piece are read
// back from sp.
func (p *Position) UnmakeMove(m Move, sp Savepos) {
	them := p.SideToMove
	us := them.Other()
	from := m.From()
	to := m.To()

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.Hash ^= zobristCastling[p.CastlingRights]
	p.Hash ^= zobristSideToMove

	switch {
	case m.IsCastle():
		rookHome := to
		kingTo, rookTo := castleDestinations(rookHome)

		p.Hash ^= ZobristPiece(us, King, kingTo)
		p.movePiece(kingTo, from)
		p.Hash ^= ZobristPiece(us, King, from)

		p.Hash ^= ZobristPiece(us, Rook, rookTo)
		p.movePiece(rookTo, rookHome)
		p.Hash ^= ZobristPiece(us, Rook, rookHome)

	case m.IsEnPassant():
		capturedSq := epCapturedSquare(to, us)

		p.Hash ^= ZobristPiece(us, Pawn, to)
		p.movePiece(to, from)
		p.Hash ^= ZobristPiece(us, Pawn, from)

		if sp.Captured != NoPiece {
			p.setPiece(sp.Captured, capturedSq)
			p.Hash ^= ZobristPiece(sp.Captured.Color(), sp.Captured.Type(), capturedSq)
		}

	case m.IsPromotion():
		promo := m.Promotion()
		p.Hash ^= ZobristPiece(us, promo, to)
		p.removePiece(to)
		p.setPiece(NewPiece(Pawn, us), from)
		p.Hash ^= ZobristPiece(us, Pawn, from)

		if sp.Captured != NoPiece {
			p.setPiece(sp.Captured, to)
			p.Hash ^= ZobristPiece(sp.Captured.Color(), sp.Captured.Type(), to)
		}

	default:
		pt := p.Squares[to].Type()
		p.Hash ^= ZobristPiece(us, pt, to)
		p.movePiece(to, from)
		p.Hash ^= ZobristPiece(us, pt, from)

		if sp.Captured != NoPiece {
			p.setPiece(sp.Captured, to)
			p.Hash ^= ZobristPiece(sp.Captured.Color(), sp.Captured.Type(), to)
		}
	}

	p.SideToMove = us
	p.CastlingRights = sp.CastlingRights
	p.EnPassant = sp.EnPassant
	p.HalfMoveClock = sp.HalfMoveClock
	if us == Black {
		p.FullMoveNumber--
	}

	if p.EnPassant != NoSquare {
		p.Hash ^= zobristEnPassant[p.EnPassant.File()]
	}
	p.Hash ^= zobristCastling[p.CastlingRights]

	p.UpdateCheckers()

	if debugEnabled {
		debugAssert(p.CheckInvariants() == nil, "UnmakeMove left an invariant violated")
	}
}
