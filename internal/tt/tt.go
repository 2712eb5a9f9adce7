// Package tt implements the transposition table: a fixed-size,
// open-addressed hash map keyed by Zobrist hash, used by internal/search
// to avoid re-searching positions reached by a different move order.
package tt

import "github.com/chego-engine/chego/internal/board"

// Bound indicates how a stored score relates to the true minimax value
// (spec §4.6).
type Bound uint8

const (
	Exact Bound = iota
	Lower       // beta cutoff: the real value is at least Score
	Upper       // alpha cutoff: the real value is at most Score
)

// Entry is one transposition-table slot.
type Entry struct {
	key      uint32 // upper 32 bits of the Zobrist hash, for collision detection
	Score    int
	BestMove board.Move
	Depth    int
	Bound    Bound
	valid    bool
}

// Table is a fixed-size, always-replace transposition table. It is not
// safe for concurrent use — the search that owns it is single-threaded
// (spec §5).
type Table struct {
	entries []Entry
	mask    uint64
}

// New creates a table sized to hold roughly sizeMB megabytes of entries,
// rounding the entry count down to a power of two so indexing is a mask
// instead of a modulo.
func New(sizeMB int) *Table {
	const entrySize = 32 // approximate size of Entry in bytes
	count := roundDownPow2(uint64(sizeMB) * 1024 * 1024 / entrySize)
	if count == 0 {
		count = 1
	}
	return &Table{
		entries: make([]Entry, count),
		mask:    count - 1,
	}
}

func roundDownPow2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Clear resets the table to all-empty, e.g. between games.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Probe looks up hash and reports whether a usable entry was found.
// The caller still has to apply the bound-kind/depth logic itself
// (see UsableScore) because what counts as "usable" depends on the
// search's current alpha/beta window.
func (t *Table) Probe(hash uint64) (Entry, bool) {
	idx := hash & t.mask
	e := t.entries[idx]
	if e.valid && e.key == uint32(hash>>32) {
		return e, true
	}
	return Entry{}, false
}

// Store records a search result, always replacing whatever currently
// occupies the slot (spec §4.6: "simplest viable is always-replace" — a
// single-threaded search has no concurrent-overwrite hazard to guard
// against).
func (t *Table) Store(hash uint64, depth, score int, bound Bound, best board.Move) {
	idx := hash & t.mask
	t.entries[idx] = Entry{
		key:      uint32(hash >> 32),
		Score:    score,
		BestMove: best,
		Depth:    depth,
		Bound:    bound,
		valid:    true,
	}
}

// Export calls fn once for every occupied slot with a hash rebuilt from
// the slot's stored key tag (upper 32 bits) and its index (low bits).
// The remaining bits of the original Zobrist hash are not stored, so the
// rebuilt hash equals the original only in those bits; Import places the
// entry back at the same slot only in a table of the same size. Used by
// internal/store to persist the table across runs.
func (t *Table) Export(fn func(hash uint64, e Entry)) {
	for idx, e := range t.entries {
		if e.valid {
			hash := uint64(e.key)<<32 | uint64(idx)
			fn(hash, e)
		}
	}
}

// Import places a previously exported entry back at its slot, used when
// restoring a table persisted by internal/store. It trusts the given
// hash/entry pairing and does not re-verify the key tag.
func (t *Table) Import(hash uint64, e Entry) {
	idx := hash & t.mask
	e.key = uint32(hash >> 32)
	e.valid = true
	t.entries[idx] = e
}

// UsableScore reports whether e's score can be used directly to resolve
// a node searched to `depth` within window [alpha, beta] — never
// returning a bounded score as an exact one (spec §4.6, §9).
func UsableScore(e Entry, depth, alpha, beta int) (int, bool) {
	if e.Depth < depth {
		return 0, false
	}
	switch e.Bound {
	case Exact:
		return e.Score, true
	case Lower:
		if e.Score >= beta {
			return e.Score, true
		}
	case Upper:
		if e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}
