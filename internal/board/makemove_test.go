package board

import "testing"

func TestSingleMoveMakeUndo(t *testing.T) {
	pos := NewPosition()
	before := *pos

	m, err := ParseMove("e2e4", pos)
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}

	sp := pos.MakeMove(m)

	if pos.PieceAt(E2) != NoPiece {
		t.Error("e2 should be empty after e2e4")
	}
	if pos.PieceAt(E4) != WhitePawn {
		t.Error("e4 should hold a white pawn after e2e4")
	}
	if pos.EnPassant != E3 {
		t.Errorf("en passant target = %s, want e3", pos.EnPassant)
	}
	if pos.SideToMove != Black {
		t.Error("side to move should be black after white's move")
	}
	if pos.CastlingRights != AllCastling {
		t.Error("castling rights should be unchanged by a pawn push")
	}
	if pos.HalfMoveClock != 0 {
		t.Errorf("half-move clock = %d, want 0 after a pawn move", pos.HalfMoveClock)
	}

	pos.UnmakeMove(m, sp)

	if *pos != before {
		t.Error("position does not match its pre-move state bit-for-bit after undo")
	}
	if err := pos.CheckInvariants(); err != nil {
		t.Errorf("invariants violated after undo: %v", err)
	}
}

// exhaustiveMakeUndoCheck recurses through the legal-move tree to depth,
// verifying at every node that every legal move round-trips exactly and
// preserves all representation invariants.
func exhaustiveMakeUndoCheck(t *testing.T, pos *Position, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		before := *pos

		sp := pos.MakeMove(m)
		if err := pos.CheckInvariants(); err != nil {
			t.Fatalf("invariants violated after %s from %s: %v", m, before.ToFEN(), err)
		}

		exhaustiveMakeUndoCheck(t, pos, depth-1)

		pos.UnmakeMove(m, sp)
		if *pos != before {
			t.Fatalf("make/undo round trip failed for %s from %s", m, before.ToFEN())
		}
	}
}

func TestMakeUndoRoundTripFromStart(t *testing.T) {
	pos := NewPosition()
	exhaustiveMakeUndoCheck(t, pos, 3)
}

func TestMakeUndoRoundTripKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	exhaustiveMakeUndoCheck(t, pos, 2)
}

func TestCastlingClearsRightsAndMovesRook(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewCastle(E1, H1)
	sp := pos.MakeMove(m)

	if pos.PieceAt(G1) != WhiteKing {
		t.Error("king should be on g1 after king-side castle")
	}
	if pos.PieceAt(F1) != WhiteRook {
		t.Error("rook should be on f1 after king-side castle")
	}
	if pos.CastlingRights&(WhiteKingSideCastle|WhiteQueenSideCastle) != 0 {
		t.Error("white castling rights should be cleared after castling")
	}

	pos.UnmakeMove(m, sp)
	if pos.PieceAt(E1) != WhiteKing || pos.PieceAt(H1) != WhiteRook {
		t.Error("undo should restore king and rook to their home squares")
	}
}

func TestRookCaptureClearsCastlingRight(t *testing.T) {
	// White rook on a1 can capture black's rook on a8, its queen-side
	// castling home square — that must clear black's "q" right even
	// though white never touches its own rights (spec §9's open question).
	pos, err := ParseFEN("r3k3/8/8/8/8/8/8/R3K3 w q - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewMove(A1, A8)
	pos.MakeMove(m)

	if pos.CastlingRights&BlackQueenSideCastle != 0 {
		t.Error("capturing the rook on a8 should clear black's queen-side castling right")
	}
}
