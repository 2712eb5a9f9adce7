package board

// Savepos is the minimal record written by MakeMove and consumed by
// UnmakeMove to undo exactly one move (spec §3). Everything else a move
// touches is recoverable from the move value itself plus the resulting
// position, so this stays small on purpose — contrast a design that
// snapshots the whole board per ply.
type Savepos struct {
	HalfMoveClock  int
	EnPassant      Square
	CastlingRights CastlingRights

	// Captured is the piece removed by the move, or NoPiece for a
	// non-capture. For a castle move this holds the moving side's own
	// rook, which makes the undo path symmetric with ordinary captures
	// (spec §3, §4.4).
	Captured Piece
}
