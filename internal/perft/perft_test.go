package perft

import (
	"testing"

	"github.com/chego-engine/chego/internal/board"
)

func TestPerftStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	want := []uint64{1, 20, 400, 8902}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	want := []uint64{1, 48, 2039}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestPerftEndgamePosition(t *testing.T) {
	pos, err := board.ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	want := []uint64{1, 14, 191, 2812, 43238}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestPerftPosition4(t *testing.T) {
	pos, err := board.ParseFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	want := []uint64{1, 6, 264, 9467}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestPerftPromotions(t *testing.T) {
	pos, err := board.ParseFEN("n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	want := []uint64{1, 24, 496, 9483}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("depth %d: got %d, want %d", depth, got, w)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := board.NewPosition()
	div := Divide(pos, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(pos, 3); sum != want {
		t.Errorf("divide sum = %d, want %d", sum, want)
	}
}
