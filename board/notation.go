package board

import "strings"

// SquareString returns the algebraic name of a square, e.g. "e4".
func SquareString(sq Square) string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// BoardString renders the position as text, rank 8 at the top, with FEN
// piece letters and dots for empty squares.
func (b *Board) BoardString() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			p := b.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(charFromPiece(p))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

// MoveNotation renders a legal move in standard algebraic notation:
// piece letter, minimal disambiguation, capture and promotion marks,
// O-O/O-O-O for castling, and a +/# decoration from the resulting position.
func (b *Board) MoveNotation(m Move) string {
	var sb strings.Builder

	moved := m.MovedPiece()
	to := m.To()
	from := m.From()

	isCapture := m.CapturedPiece() != NoPiece ||
		(moved.Type() == PieceTypePawn && to == b.EnPassantSquare())

	switch {
	case moved.Type() == PieceTypeKing && (to-from == 2 || from-to == 2):
		if to > from {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}

	case moved.Type() == PieceTypePawn:
		if isCapture {
			sb.WriteByte('a' + byte(from.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(SquareString(to))
		if promo := m.PromotionPiece(); promo != NoPiece {
			sb.WriteByte('=')
			sb.WriteByte(pieceLetter(promo.Type()))
		}

	default:
		sb.WriteByte(pieceLetter(moved.Type()))
		sb.WriteString(b.disambiguation(m))
		if isCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(SquareString(to))
	}

	child := b.MakeMove(m)
	if child.PlayerInCheck(child.SideToMove()) {
		if legal, err := child.Generate(true, false); err == nil && legal.Len() == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the minimal from-square qualifier needed when
// another piece of the same kind can reach the same destination.
func (b *Board) disambiguation(m Move) string {
	legal, err := b.Generate(true, false)
	if err != nil {
		return ""
	}

	from := m.From()
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legal.Moves() {
		if other == m || other.To() != m.To() || other.MovedPiece() != m.MovedPiece() {
			continue
		}
		ambiguous = true
		if other.From().File() == from.File() {
			sameFile = true
		}
		if other.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string([]byte{'a' + byte(from.File())})
	case !sameRank:
		return string([]byte{'1' + byte(from.Rank())})
	default:
		return SquareString(from)
	}
}
