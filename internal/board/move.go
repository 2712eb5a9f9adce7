package board

import "fmt"

// Move encodes a chess move in 16 bits (spec §3):
//
//	bits 0-5:   to square   (0-63)
//	bits 6-11:  from square (0-63)
//	bits 12-13: promotion piece (valid only when flags == FlagPromotion);
//	            Knight=0, Bishop=1, Rook=2, Queen=3
//	bits 14-15: flags (0=normal, 1=en passant, 2=promotion, 3=castle)
//
// For a FlagCastle move, the to field holds the ROOK's starting square
// (A1/H1/A8/H8), not the king's destination. This lets make-move reuse one
// square-masking path for both the king-move and rook-move halves of
// castling; see castleDestinations below. Fetch the king's actual
// destination via CastleKingTo, not To().
type Move uint16

// Move flags.
const (
	FlagNormal    uint16 = 0 << 14
	FlagEnPassant uint16 = 1 << 14
	FlagPromotion uint16 = 2 << 14
	FlagCastle    uint16 = 3 << 14
	flagMask      uint16 = 3 << 14
)

// NoMove is the all-zero sentinel for "no move"/"invalid move".
const NoMove Move = 0

// NewMove creates an ordinary (non-special) move.
func NewMove(from, to Square) Move {
	return Move(to) | Move(from)<<6
}

// NewPromotion creates a promotion move. promo must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(to) | Move(from)<<6 | Move(promo)<<12 | Move(FlagPromotion)
}

// NewEnPassant creates an en-passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(to) | Move(from)<<6 | Move(FlagEnPassant)
}

// NewCastle creates a castling move. rookHome is the rook's starting
// square (A1, H1, A8 or H8); see the Move doc comment above.
func NewCastle(kingFrom, rookHome Square) Move {
	return Move(rookHome) | Move(kingFrom)<<6 | Move(FlagCastle)
}

// To returns the raw to-square field. For a castle move this is the
// rook's home square, not the king's destination — see the Move doc
// comment, and CastleKingTo/CastleRookTo below.
func (m Move) To() Square {
	return Square(m & 0x3F)
}

// From returns the origin square (always the king's square for castles).
func (m Move) From() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece kind (only meaningful when
// IsPromotion() is true).
func (m Move) Promotion() PieceType {
	return PieceType((m >> 12) & 3)
}

// Flag returns the move's flag bits.
func (m Move) Flag() uint16 {
	return uint16(m) & flagMask
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Flag() == FlagPromotion
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastle
}

// IsEnPassant returns true if this is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// castleDestinations maps a castle move's rook-home to (kingTo, rookTo),
// per spec §4.4: H1→(G1,F1), A1→(C1,D1), H8→(G8,F8), A8→(C8,D8).
func castleDestinations(rookHome Square) (kingTo, rookTo Square) {
	switch rookHome {
	case H1:
		return G1, F1
	case A1:
		return C1, D1
	case H8:
		return G8, F8
	case A8:
		return C8, D8
	default:
		return NoSquare, NoSquare
	}
}

// CastleKingTo returns the king's destination square for a castle move.
func (m Move) CastleKingTo() Square {
	kingTo, _ := castleDestinations(m.To())
	return kingTo
}

// CastleRookFrom returns the rook's starting square for a castle move
// (identical to To(), named for readability at call sites).
func (m Move) CastleRookFrom() Square {
	return m.To()
}

// CastleRookTo returns the rook's destination square for a castle move.
func (m Move) CastleRookTo() Square {
	_, rookTo := castleDestinations(m.To())
	return rookTo
}

// String returns the long-algebraic form of the move (spec §6): from+to,
// with an appended promotion letter, or the king's 4-character move for
// castling (e1g1, e1c1, e8g8, e8c8).
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	if m.IsCastle() {
		return m.From().String() + m.CastleKingTo().String()
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		promoChars := [4]byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion()])
	}
	return s
}

// ParseMove parses a long-algebraic move string against pos, recognizing
// castling (the king's own 4-character move) and en passant (destination
// equals the position's en-passant target and the mover is a pawn) per
// spec §6.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("invalid move string %q: %w", s, err)
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece on %s", from)
	}
	pt := piece.Type()

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	if pt == King {
		df := int(to.File()) - int(from.File())
		if df == 2 {
			return NewCastle(from, NewSquare(7, from.Rank())), nil
		}
		if df == -2 {
			return NewCastle(from, NewSquare(0, from.Rank())), nil
		}
	}

	if pt == Pawn && to == pos.EnPassant && pos.EnPassant != NoSquare {
		return NewEnPassant(from, to), nil
	}

	return NewMove(from, to), nil
}

// MoveList is a fixed-size move buffer (spec §5: at most 256 legal moves
// from any position), avoiding per-call heap allocation.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves currently in the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// Swap exchanges the moves at indices i and j, used by search move
// ordering to bring a preferred move to the front without reallocating.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// IsCapture reports whether playing m against pos removes an enemy piece
// (en passant always does; castling never does).
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	if m.IsCastle() {
		return false
	}
	return pos.Squares[m.To()] != NoPiece
}
