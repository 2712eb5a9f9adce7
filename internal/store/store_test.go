package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chego-engine/chego/internal/board"
	"github.com/chego-engine/chego/internal/tt"
)

func TestSaveAndLoadTableRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "chego-store-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	table := tt.New(1)
	table.Store(0x1122334455667788, 6, 125, tt.Exact, board.NewMove(board.E2, board.E4))
	table.Store(0x99aabbccddeeff00, 3, -40, tt.Lower, board.NewMove(board.G1, board.F3))

	s, err := Open(tmpDir)
	require.NoError(t, err)
	require.NoError(t, s.SaveTable(table))
	require.NoError(t, s.Close())

	s2, err := Open(tmpDir)
	require.NoError(t, err)
	defer s2.Close()

	restored := tt.New(1)
	require.NoError(t, s2.LoadTable(restored))

	e, ok := restored.Probe(0x1122334455667788)
	require.True(t, ok, "expected first entry to be restored")
	require.Equal(t, 125, e.Score)
	require.Equal(t, 6, e.Depth)
	require.Equal(t, tt.Exact, e.Bound)
}
