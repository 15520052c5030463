package board

import (
	"fmt"
	"strings"
)

// Move encodes a chess move in a 32-bit value. This packing is the wire
// format between the generator and MakeMove.
type Move uint32

// Bitfield layout within Move (from LSB to MSB).
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePromoteShift = 12 // 4 bits
	movePieceShift   = 16 // 4 bits
	moveCaptureShift = 20 // 4 bits
)

// NewMove constructs a Move from its components. An en-passant capture is
// encoded with captured == NoPiece; MakeMove recognizes it by the pawn
// landing on the stored en-passant square.
func NewMove(from, to Square, piece, captured, promotion Piece) Move {
	return Move(uint32(from&0x3f) |
		uint32(to&0x3f)<<moveToShift |
		uint32(promotion&0xf)<<movePromoteShift |
		uint32(piece&0xf)<<movePieceShift |
		uint32(captured&0xf)<<moveCaptureShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square(uint32(m) & 0x3f) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3f) }

// MovedPiece returns the piece code being moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xf) }

// CapturedPiece returns the captured piece code, or NoPiece. En-passant
// captures report NoPiece here; the captured pawn is not on the to-square.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xf) }

// PromotionPiece returns the promotion piece code, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xf) }

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
// Promotion letters are lowercase regardless of color.
func (m Move) String() string {
	s := SquareString(m.From()) + SquareString(m.To())
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += strings.ToLower(string(pieceLetter(promo.Type())))
	}
	return s
}

// StringVerbose renders the move with its packed fields spelled out, for
// debugging generator and make-move issues.
func (m Move) StringVerbose() string {
	return fmt.Sprintf("%s (moved=%s captured=%s promo=%s)",
		m.String(), pieceName(m.MovedPiece()), pieceName(m.CapturedPiece()), pieceName(m.PromotionPiece()))
}

// pieceLetter returns the uppercase letter of a piece type, 'P' for pawns.
func pieceLetter(pt PieceType) byte {
	switch pt {
	case PieceTypeKing:
		return 'K'
	case PieceTypeQueen:
		return 'Q'
	case PieceTypeRook:
		return 'R'
	case PieceTypeBishop:
		return 'B'
	case PieceTypeKnight:
		return 'N'
	case PieceTypePawn:
		return 'P'
	}
	return '?'
}

func pieceName(p Piece) string {
	if p == NoPiece {
		return "-"
	}
	name := string(pieceLetter(p.Type()))
	if p.Color() == Black {
		return "b" + name
	}
	return "w" + name
}

// ParseMove resolves a coordinate move string ("e2e4", "e7e8q") against the
// current position by matching it to a generated legal move, so castling,
// en-passant and promotion fields come back fully populated. It fails with
// ErrIllegalMove when no legal move matches.
func (b *Board) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 4 && len(s) != 5 {
		return 0, fmt.Errorf("%w: bad move string %q", ErrIllegalMove, s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: bad move string %q", ErrIllegalMove, s)
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: bad move string %q", ErrIllegalMove, s)
	}
	var promoType PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promoType = PieceTypeQueen
		case 'r':
			promoType = PieceTypeRook
		case 'b':
			promoType = PieceTypeBishop
		case 'n':
			promoType = PieceTypeKnight
		default:
			return 0, fmt.Errorf("%w: bad promotion in %q", ErrIllegalMove, s)
		}
	}

	legal, err := b.Generate(true, false)
	if err != nil {
		return 0, err
	}
	for _, m := range legal.Moves() {
		if m.From() == from && m.To() == to && m.PromotionPiece().Type() == promoType {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// parseSquare converts algebraic coordinates ("e4") to a Square.
func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return Square(int(s[1]-'1')*8 + int(s[0]-'a')), nil
}
