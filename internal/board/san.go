package board

import (
	"strings"
)

// ToSAN converts a move to Standard Algebraic Notation. pos must be the
// position the move is about to be played from.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	if m.IsCastle() {
		san := "O-O"
		if m.CastleKingTo().File() == 2 {
			san = "O-O-O"
		}
		return san + checkSuffix(pos, m)
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return m.String()
	}
	pt := piece.Type()

	var sb strings.Builder

	if pt != Pawn {
		sb.WriteByte(pieceLetters[pt])
		sb.WriteString(disambiguation(pos, m, pt))
	}

	isCapture := m.IsCapture(pos)
	if isCapture {
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Promotion()])
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// pieceLetters is indexed by PieceType, giving the uppercase SAN letter
// (empty-string entries for Pawn are never read — handled separately).
var pieceLetters = [6]byte{Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K'}

// checkSuffix plays m on a scratch copy of pos and reports '+' or '#'.
func checkSuffix(pos *Position, m Move) string {
	after := pos.Copy()
	after.MakeMove(m)
	if !after.InCheck() {
		return ""
	}
	if after.GenerateLegalMoves().Len() == 0 {
		return "#"
	}
	return "+"
}

// disambiguation returns the minimal file/rank/square prefix needed to
// distinguish m from other legal moves of the same piece type to the
// same destination.
func disambiguation(pos *Position, m Move, pt PieceType) string {
	from := m.From()
	to := m.To()
	ownPieces := pos.Pieces[pos.SideToMove][pt]

	var candidates []Square
	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		other := legal.Get(i)
		if other.To() != to || other.From() == from {
			continue
		}
		if ownPieces.IsSet(other.From()) {
			candidates = append(candidates, other.From())
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(rune('a' + from.File()))
	}
	if !sameRank {
		return string(rune('1' + from.Rank()))
	}
	return from.String()
}

// ParseSAN parses a SAN string against pos and returns the matching legal
// move, consulting the generated legal-move list to resolve disambiguation
// and captures rather than re-deriving legality from the string alone.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	if s == "O-O" || s == "0-0" {
		return findCastle(pos, true)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return findCastle(pos, false)
	}

	promoPiece := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		switch s[idx+1] {
		case 'N':
			promoPiece = Knight
		case 'B':
			promoPiece = Bishop
		case 'R':
			promoPiece = Rook
		case 'Q':
			promoPiece = Queen
		}
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		switch s[0] {
		case 'N':
			pt = Knight
		case 'B':
			pt = Bishop
		case 'R':
			pt = Rook
		case 'Q':
			pt = Queen
		case 'K':
			pt = King
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return NoMove, errInvalidSAN(s)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, err
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		}
	}

	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.IsCastle() || m.To() != dest {
			continue
		}
		piece := pos.PieceAt(m.From())
		if piece.Type() != pt {
			continue
		}
		if disambigFile >= 0 && m.From().File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && m.From().Rank() != disambigRank {
			continue
		}
		if isCapture != m.IsCapture(pos) {
			continue
		}
		if promoPiece != NoPieceType && (!m.IsPromotion() || m.Promotion() != promoPiece) {
			continue
		}
		return m, nil
	}

	return NoMove, errInvalidSAN(s)
}

func findCastle(pos *Position, kingSide bool) (Move, error) {
	legal := pos.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if !m.IsCastle() {
			continue
		}
		if (m.CastleKingTo().File() == 6) == kingSide {
			return m, nil
		}
	}
	return NoMove, errInvalidSAN("castle not legal")
}

type sanError string

func (e sanError) Error() string { return "invalid SAN: " + string(e) }

func errInvalidSAN(s string) error { return sanError(s) }

// MovesToSAN renders a sequence of moves played from pos, one after another.
func MovesToSAN(pos *Position, moves []Move) []string {
	result := make([]string, len(moves))
	p := pos.Copy()
	for i, m := range moves {
		result[i] = m.ToSAN(p)
		p.MakeMove(m)
	}
	return result
}
