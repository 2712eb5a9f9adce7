package board

// GenerateLegalMoves produces exactly the legal moves from p (spec
// §4.3), branching on how many pieces currently check the side to move:
// two or more restricts to king moves, exactly one restricts to
// evasions, zero generates the full non-evasion set including castling.
// Every candidate is filtered by the legality predicate as it is
// produced rather than in a second pass over a pseudo-legal list.
func (p *Position) GenerateLegalMoves() MoveList {
	var ml MoveList
	us := p.SideToMove
	pinned := p.PinnedPieces(us, us)

	switch p.Checkers.PopCount() {
	case 0:
		p.generateNonEvasions(&ml, us, pinned)
	case 1:
		p.generateEvasions(&ml, us, pinned)
	default:
		p.generateKingMoves(&ml, us, pinned)
	}
	return ml
}

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && p.GenerateLegalMoves().Len() == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && p.GenerateLegalMoves().Len() == 0
}

// kingMoveLegal reports whether the side-to-move's king may land on to:
// the destination must not be attacked by the opponent with the king
// itself removed from occupancy (spec §4.3).
func (p *Position) kingMoveLegal(us Color, kingSq, to Square) bool {
	return !p.IsSquareAttackedIgnoringKing(to, us.Other(), kingSq)
}

// generateKingMoves appends every pseudo-legal king move that is also
// legal. Used on its own when two or more pieces give check, and as a
// component of the non-evasion and evasion generators.
func (p *Position) generateKingMoves(ml *MoveList, us Color, pinned Bitboard) {
	kingSq := p.KingSquare[us]
	targets := KingAttacks(kingSq) &^ p.Occupied[us]
	for targets != 0 {
		to := targets.PopLSB()
		if p.kingMoveLegal(us, kingSq, to) {
			ml.Add(NewMove(kingSq, to))
		}
	}
}

// generateNonEvasions generates the full legal move set when the side to
// move is not in check.
func (p *Position) generateNonEvasions(ml *MoveList, us Color, pinned Bitboard) {
	p.generateKingMoves(ml, us, pinned)
	p.generatePawnMoves(ml, us, pinned, Universe)
	p.generatePieceMoves(ml, us, pinned, Knight, Universe)
	p.generatePieceMoves(ml, us, pinned, Bishop, Universe)
	p.generatePieceMoves(ml, us, pinned, Rook, Universe)
	p.generatePieceMoves(ml, us, pinned, Queen, Universe)
	p.generateCastling(ml, us)
}

// generateEvasions generates the legal move set when exactly one piece
// gives check: king moves, captures of the checker, blocks along a
// slider's ray, and the en-passant capture of a checking pawn.
func (p *Position) generateEvasions(ml *MoveList, us Color, pinned Bitboard) {
	p.generateKingMoves(ml, us, pinned)

	kingSq := p.KingSquare[us]
	checkerSq := p.Checkers.LSB()
	checker := p.Squares[checkerSq]

	target := SquareBB(checkerSq)
	if isSlider(checker.Type()) {
		target |= Between(kingSq, checkerSq)
	}

	p.generatePawnMoves(ml, us, pinned, target)
	p.generatePieceMoves(ml, us, pinned, Knight, target)
	p.generatePieceMoves(ml, us, pinned, Bishop, target)
	p.generatePieceMoves(ml, us, pinned, Rook, target)
	p.generatePieceMoves(ml, us, pinned, Queen, target)
}

func isSlider(pt PieceType) bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// generatePieceMoves generates knight/bishop/rook/queen moves for us,
// restricted to destinations in target (captures-or-blocks mask; pass
// Universe outside of check), filtered against pins.
func (p *Position) generatePieceMoves(ml *MoveList, us Color, pinned Bitboard, pt PieceType, target Bitboard) {
	kingSq := p.KingSquare[us]
	pieces := p.Pieces[us][pt]
	occupied := p.AllOccupied

	for pieces != 0 {
		from := pieces.PopLSB()
		var attacks Bitboard
		switch pt {
		case Knight:
			attacks = KnightAttacks(from)
		case Bishop:
			attacks = BishopAttacks(from, occupied)
		case Rook:
			attacks = RookAttacks(from, occupied)
		case Queen:
			attacks = QueenAttacks(from, occupied)
		}
		attacks &^= p.Occupied[us]
		attacks &= target

		for attacks != 0 {
			to := attacks.PopLSB()
			if isPinLegal(pinned, kingSq, from, to) {
				ml.Add(NewMove(from, to))
			}
		}
	}
}

// generatePawnMoves generates pushes, captures, promotions and en
// passant for us, restricted to target for non-en-passant moves (an
// en-passant capture is checked for legality separately, including
// the evasion-specific "captures the checking pawn" case).
func (p *Position) generatePawnMoves(ml *MoveList, us Color, pinned Bitboard, target Bitboard) {
	kingSq := p.KingSquare[us]
	pawns := p.Pieces[us][Pawn]
	occupied := p.AllOccupied
	enemies := p.Occupied[us.Other()]

	lastRank := Rank8
	startRank := Rank2
	if us == Black {
		lastRank = Rank1
		startRank = Rank7
	}

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()
		fromBB := SquareBB(from)

		// Single and double pushes. Only the pawn's final square matters
		// for resolving a check — the transit square of a double push is
		// never occupied afterward, so it cannot block anything.
		single := PawnPushes(from, us) &^ occupied
		if single != 0 {
			dest := single.LSB()
			if target.IsSet(dest) && isPinLegal(pinned, kingSq, from, dest) {
				p.addPawnMove(ml, from, dest, lastRank)
			}
			if fromBB&startRank != 0 {
				double := PawnPushes(dest, us) &^ occupied
				if double != 0 {
					destD := double.LSB()
					if target.IsSet(destD) && isPinLegal(pinned, kingSq, from, destD) {
						ml.Add(NewMove(from, destD))
					}
				}
			}
		}

		// Captures.
		caps := PawnAttacks(from, us) & enemies & target
		for caps != 0 {
			to := caps.PopLSB()
			if isPinLegal(pinned, kingSq, from, to) {
				p.addPawnMove(ml, from, to, lastRank)
			}
		}

		// En passant.
		if p.EnPassant != NoSquare && PawnAttacks(from, us).IsSet(p.EnPassant) {
			capturedSq := epCapturedSquare(p.EnPassant, us)
			resolvesCheck := target == Universe || target.IsSet(p.EnPassant) || target.IsSet(capturedSq)
			if resolvesCheck && p.enPassantLeavesKingSafe(from, p.EnPassant, capturedSq, us) {
				ml.Add(NewEnPassant(from, p.EnPassant))
			}
		}
	}
}

// addPawnMove appends a normal move, or the four promotion moves when
// to lands on the last rank.
func (p *Position) addPawnMove(ml *MoveList, from, to Square, lastRank Bitboard) {
	if SquareBB(to)&lastRank != 0 {
		ml.Add(NewPromotion(from, to, Knight))
		ml.Add(NewPromotion(from, to, Bishop))
		ml.Add(NewPromotion(from, to, Rook))
		ml.Add(NewPromotion(from, to, Queen))
		return
	}
	ml.Add(NewMove(from, to))
}

// generateCastling appends legal castling moves: the right must be set,
// the squares between king and rook must be empty, and the three
// squares the king crosses (including its start and end) must be
// unattacked (spec §4.3). Only called when the side to move is not in
// check.
func (p *Position) generateCastling(ml *MoveList, us Color) {
	kingSq := p.KingSquare[us]
	enemy := us.Other()

	type side struct {
		right   CastlingRights
		rookSq  Square
		between Bitboard
		path    [3]Square
	}

	var sides [2]side
	if us == White {
		sides[0] = side{WhiteKingSideCastle, H1, Between(E1, H1), [3]Square{E1, F1, G1}}
		sides[1] = side{WhiteQueenSideCastle, A1, Between(E1, A1), [3]Square{E1, D1, C1}}
	} else {
		sides[0] = side{BlackKingSideCastle, H8, Between(E8, H8), [3]Square{E8, F8, G8}}
		sides[1] = side{BlackQueenSideCastle, A8, Between(E8, A8), [3]Square{E8, D8, C8}}
	}

	for _, s := range sides {
		if p.CastlingRights&s.right == 0 {
			continue
		}
		if s.between&p.AllOccupied != 0 {
			continue
		}
		safe := true
		for _, sq := range s.path {
			if p.IsSquareAttacked(sq, enemy) {
				safe = false
				break
			}
		}
		if safe {
			ml.Add(NewCastle(kingSq, s.rookSq))
		}
	}
}
