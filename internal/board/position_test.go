package board

import "testing"

func TestNewPositionInvariants(t *testing.T) {
	pos := NewPosition()
	if err := pos.CheckInvariants(); err != nil {
		t.Fatalf("starting position violates invariants: %v", err)
	}
}

func TestCheckInvariantsAcrossKnownPositions(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if err := pos.CheckInvariants(); err != nil {
			t.Errorf("position %q violates invariants: %v", fen, err)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestHashMatchesRecompute(t *testing.T) {
	pos := NewPosition()
	if pos.Hash != pos.ComputeHash() {
		t.Fatalf("initial hash %016x does not match recompute %016x", pos.Hash, pos.ComputeHash())
	}

	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	for _, s := range moves {
		m, err := ParseMove(s, pos)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", s, err)
		}
		pos.MakeMove(m)
		if pos.Hash != pos.ComputeHash() {
			t.Fatalf("after %s: hash %016x does not match recompute %016x", s, pos.Hash, pos.ComputeHash())
		}
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // missing a rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",  // bad castling chars
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should have failed", fen)
		}
	}
}
