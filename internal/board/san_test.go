package board

import "testing"

func TestToSANBasicMoves(t *testing.T) {
	pos := NewPosition()
	m, err := ParseMove("e2e4", pos)
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	if got := m.ToSAN(pos); got != "e4" {
		t.Errorf("ToSAN(e2e4) = %q, want %q", got, "e4")
	}
}

func TestToSANCapture(t *testing.T) {
	pos, err := ParseFEN("r3k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewMove(A1, A8)
	if got := m.ToSAN(pos); got != "Rxa8+" {
		t.Errorf("ToSAN(Ra1xa8) = %q, want %q", got, "Rxa8+")
	}
}

func TestToSANCastling(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	kingSide := NewCastle(E1, H1)
	if got := kingSide.ToSAN(pos); got != "O-O" {
		t.Errorf("ToSAN(king-side castle) = %q, want %q", got, "O-O")
	}
	queenSide := NewCastle(E1, A1)
	if got := queenSide.ToSAN(pos); got != "O-O-O" {
		t.Errorf("ToSAN(queen-side castle) = %q, want %q", got, "O-O-O")
	}
}

func TestToSANPromotion(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/7p/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewPromotion(A7, A8, Queen)
	if got := m.ToSAN(pos); got != "a8=Q" {
		t.Errorf("ToSAN(promotion) = %q, want %q", got, "a8=Q")
	}
}

func TestToSANCheckmateSuffix(t *testing.T) {
	pos, err := ParseFEN("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	m := NewMove(A1, A8)
	if got := m.ToSAN(pos); got != "Ra8#" {
		t.Errorf("ToSAN(mating move) = %q, want %q", got, "Ra8#")
	}
}

func TestParseSANRoundTripsWithToSAN(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		san := m.ToSAN(pos)
		parsed, err := ParseSAN(san, pos)
		if err != nil {
			t.Fatalf("ParseSAN(%q) failed: %v", san, err)
		}
		if parsed != m {
			t.Errorf("ParseSAN(%q) = %s, want %s", san, parsed, m)
		}
	}
}

func TestParseSANRejectsGarbage(t *testing.T) {
	pos := NewPosition()
	if _, err := ParseSAN("Zz9", pos); err == nil {
		t.Error("expected an error for a nonsensical SAN string")
	}
}

func TestMovesToSAN(t *testing.T) {
	pos := NewPosition()
	moves := make([]Move, 0, 4)
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		m, err := ParseMove(s, pos)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", s, err)
		}
		moves = append(moves, m)
		pos.MakeMove(m)
	}

	fresh := NewPosition()
	got := MovesToSAN(fresh, moves)
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	if len(got) != len(want) {
		t.Fatalf("MovesToSAN returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
