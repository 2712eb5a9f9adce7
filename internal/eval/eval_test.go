package eval

import (
	"testing"

	"github.com/chego-engine/chego/internal/board"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	if got := Score(pos); got != 0 {
		t.Errorf("starting position score = %d, want 0 (symmetric)", got)
	}
}

func TestExtraQueenScoresDecisivelyInWhitesFavor(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	if got := Score(pos); got <= 0 {
		t.Errorf("white up a queen should score positive, got %d", got)
	}
}

func TestIsMateScoreBoundary(t *testing.T) {
	cases := []struct {
		score int
		want  bool
	}{
		{0, false},
		{500, false},
		{Mate - 1000, false},
		{Mate - 999, true},
		{Mate, true},
		{-(Mate - 999), true},
		{-(Mate - 1000), false},
	}
	for _, c := range cases {
		if got := IsMateScore(c.score); got != c.want {
			t.Errorf("IsMateScore(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}
