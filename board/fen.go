package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN wraps every FEN parse failure.
var ErrMalformedFEN = errors.New("malformed FEN")

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'R':
		return WhiteRook
	case 'B':
		return WhiteBishop
	case 'N':
		return WhiteKnight
	case 'P':
		return WhitePawn
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	case 'r':
		return BlackRook
	case 'b':
		return BlackBishop
	case 'n':
		return BlackKnight
	case 'p':
		return BlackPawn
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece to its FEN character.
func charFromPiece(p Piece) byte {
	c := pieceLetter(p.Type())
	if p.Color() == Black {
		return c + 'a' - 'A'
	}
	return c
}

// ParseFEN parses a FEN string into a Board. The en-passant field is kept
// only when it names a square on the rank the side to move captures onto
// (rank 6 with White to move, rank 3 with Black); anything else is treated
// as no en-passant square. The Zobrist key is computed from scratch.
func ParseFEN(fen string) (Board, error) {
	var b Board

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return b, fmt.Errorf("%w: not enough fields", ErrMalformedFEN)
	}

	// 1. Piece placement, rank 8 first.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return b, fmt.Errorf("%w: incorrect number of ranks", ErrMalformedFEN)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return b, fmt.Errorf("%w: unrecognized piece character %q", ErrMalformedFEN, ch)
			}
			if file >= 8 {
				return b, fmt.Errorf("%w: too many squares in rank", ErrMalformedFEN)
			}
			sq := Square(rank*8 + file)
			b[int(piece)] |= bb(sq)
			b[int(piece)&8] |= bb(sq)
			file++
		}
		if file != 8 {
			return b, fmt.Errorf("%w: rank does not have 8 columns", ErrMalformedFEN)
		}
	}

	// 2. Side to move.
	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return b, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrMalformedFEN)
	}

	// 3. Castling rights.
	var castling CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= CastlingWhiteK
			case 'Q':
				castling |= CastlingWhiteQ
			case 'k':
				castling |= CastlingBlackK
			case 'q':
				castling |= CastlingBlackQ
			default:
				return b, fmt.Errorf("%w: invalid castling rights character %q", ErrMalformedFEN, ch)
			}
		}
	}

	// 4. En-passant target square. Only a square the side to move could
	// actually capture onto is representable state; anything else parses
	// as no en-passant square.
	epSquare := NoSquare
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return b, fmt.Errorf("%w: invalid en passant square %q", ErrMalformedFEN, fields[3])
		}
		if bb(sq)&epTargetMask[side] != 0 {
			epSquare = sq
		}
	}

	// 5. Half-move clock.
	halfMove := 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return b, fmt.Errorf("%w: halfmove clock is not a number", ErrMalformedFEN)
		}
		halfMove = n
	}

	// 6. Full-move number.
	fullMove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return b, fmt.Errorf("%w: fullmove number is not a number", ErrMalformedFEN)
		}
		fullMove = n
	}

	b[idxStatus] = packStatus(side, castling, epSquare, halfMove, fullMove)
	b[idxKey] = b.ComputeZobrist()
	return b, nil
}

// StartingPosition returns the standard initial position.
func StartingPosition() Board {
	b, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("board: starting position FEN failed to parse: " + err.Error())
	}
	return b
}

// ToFEN serializes the position: placement, side, castling in KQkq order,
// en-passant square, half-move clock, full-move number.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(Square(rank*8 + file))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if b.SideToMove() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	castling := b.Castling()
	if castling == 0 {
		sb.WriteByte('-')
	} else {
		if castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if ep := b.EnPassantSquare(); ep != NoSquare {
		sb.WriteString(SquareString(ep))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNumber()))
	return sb.String()
}
