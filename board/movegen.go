package board

import (
	"errors"
	"math/bits"
)

// ErrMoveListOverflow reports that generation produced more moves than a
// MoveList can hold. No reachable chess position comes close to the 256
// slot bound, so hitting this indicates a corrupt position.
var ErrMoveListOverflow = errors.New("move list overflow")

// ErrIllegalMove reports a move string or move that does not correspond to
// a legal move in the position.
var ErrIllegalMove = errors.New("illegal move")

// moveListCap is sized above the theoretical ~218 legal move maximum.
const moveListCap = 256

// MoveList is a fixed-capacity list of packed moves.
type MoveList struct {
	moves    [moveListCap]Move
	count    int
	overflow bool
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int { return l.count }

// Moves returns the populated slice of the list.
func (l *MoveList) Moves() []Move { return l.moves[:l.count] }

func (l *MoveList) push(m Move) {
	if l.count == moveListCap {
		l.overflow = true
		return
	}
	l.moves[l.count] = m
	l.count++
}

// Generate produces the moves available to the side to move. With tactical
// set, only captures (including en passant and capture promotions) are
// emitted. Without legal, moves are pseudo-legal: they obey piece geometry
// and castling path rules but may leave the mover's king in check. With
// legal, each pseudo-legal move is made and discarded if the mover's king
// is attacked in the resulting position.
//
// Emission order is fixed for reproducibility: king (then castling),
// knights, pawns, sliders (queens, rooks, bishops).
func (b *Board) Generate(legal, tactical bool) (MoveList, error) {
	var list MoveList

	side := b.SideToMove()
	us := int(side) << 3
	them := 8 ^ us

	ownOcc := b[us]
	oppOcc := b[them]
	allOcc := ownOcc | oppOcc

	target := ^ownOcc
	if tactical {
		target = oppOcc
	}

	// King.
	kingPiece := Piece(us) | Piece(PieceTypeKing)
	if kbb := b[int(kingPiece)]; kbb != 0 {
		ksq := Square(bits.TrailingZeros64(kbb))
		for t := kingAttacks[ksq] & target; t != 0; {
			to := Square(popLSB(&t))
			list.push(NewMove(ksq, to, kingPiece, b.PieceAt(to), NoPiece))
		}
		if !tactical {
			b.genCastling(&list, side, ksq, allOcc)
		}
	}

	// Knights.
	knightPiece := Piece(us) | Piece(PieceTypeKnight)
	for knights := b[int(knightPiece)]; knights != 0; {
		from := Square(popLSB(&knights))
		for t := knightAttacks[from] & target; t != 0; {
			to := Square(popLSB(&t))
			list.push(NewMove(from, to, knightPiece, b.PieceAt(to), NoPiece))
		}
	}

	// Pawns.
	b.genPawnMoves(&list, side, allOcc, oppOcc, tactical)

	// Sliders: queens, rooks, bishops.
	queenPiece := Piece(us) | Piece(PieceTypeQueen)
	for queens := b[int(queenPiece)]; queens != 0; {
		from := Square(popLSB(&queens))
		for t := queenMoves(int(from), allOcc) & target; t != 0; {
			to := Square(popLSB(&t))
			list.push(NewMove(from, to, queenPiece, b.PieceAt(to), NoPiece))
		}
	}
	rookPiece := Piece(us) | Piece(PieceTypeRook)
	for rooks := b[int(rookPiece)]; rooks != 0; {
		from := Square(popLSB(&rooks))
		for t := rookMoves(int(from), allOcc) & target; t != 0; {
			to := Square(popLSB(&t))
			list.push(NewMove(from, to, rookPiece, b.PieceAt(to), NoPiece))
		}
	}
	bishopPiece := Piece(us) | Piece(PieceTypeBishop)
	for bishops := b[int(bishopPiece)]; bishops != 0; {
		from := Square(popLSB(&bishops))
		for t := bishopMoves(int(from), allOcc) & target; t != 0; {
			to := Square(popLSB(&t))
			list.push(NewMove(from, to, bishopPiece, b.PieceAt(to), NoPiece))
		}
	}

	if list.overflow {
		return MoveList{}, ErrMoveListOverflow
	}
	if legal {
		return b.purgeIllegalMoves(&list), nil
	}
	return list, nil
}

// genCastling emits castling moves when the relevant right is set, the path
// is empty, the rook is home, and neither the king's square nor the square
// it crosses is attacked. The destination square is deliberately not
// tested; the post-move legality filter catches castling into check.
func (b *Board) genCastling(list *MoveList, side Color, ksq Square, allOcc uint64) {
	castling := b.Castling()
	if side == White {
		if castling&CastlingWhiteK != 0 &&
			allOcc&castlePathWhiteK == 0 && b[WhiteRook]&bb(7) != 0 &&
			!b.IsSquareAttackedBy(ksq, Black) && !b.IsSquareAttackedBy(castleMidWhiteK, Black) {
			list.push(NewMove(4, 6, WhiteKing, NoPiece, NoPiece))
		}
		if castling&CastlingWhiteQ != 0 &&
			allOcc&castlePathWhiteQ == 0 && b[WhiteRook]&bb(0) != 0 &&
			!b.IsSquareAttackedBy(ksq, Black) && !b.IsSquareAttackedBy(castleMidWhiteQ, Black) {
			list.push(NewMove(4, 2, WhiteKing, NoPiece, NoPiece))
		}
		return
	}
	if castling&CastlingBlackK != 0 &&
		allOcc&castlePathBlackK == 0 && b[BlackRook]&bb(63) != 0 &&
		!b.IsSquareAttackedBy(ksq, White) && !b.IsSquareAttackedBy(castleMidBlackK, White) {
		list.push(NewMove(60, 62, BlackKing, NoPiece, NoPiece))
	}
	if castling&CastlingBlackQ != 0 &&
		allOcc&castlePathBlackQ == 0 && b[BlackRook]&bb(56) != 0 &&
		!b.IsSquareAttackedBy(ksq, White) && !b.IsSquareAttackedBy(castleMidBlackQ, White) {
		list.push(NewMove(60, 58, BlackKing, NoPiece, NoPiece))
	}
}

// genPawnMoves emits pawn pushes, captures, en passant and promotions. The
// en-passant square, when present, is OR-ed into the capture target mask;
// its move carries captured == NoPiece since the victim is not on the
// to-square.
func (b *Board) genPawnMoves(list *MoveList, side Color, allOcc, oppOcc uint64, tactical bool) {
	us := int(side) << 3
	pawnPiece := Piece(us) | Piece(PieceTypePawn)

	promoRank := maskRank8
	if side == Black {
		promoRank = maskRank1
	}

	capMask := oppOcc
	ep := b.EnPassantSquare()
	if ep != NoSquare {
		capMask |= bb(ep)
	}

	for pawns := b[int(pawnPiece)]; pawns != 0; {
		from := Square(popLSB(&pawns))

		if !tactical {
			one := pawnPush[side][from] &^ allOcc
			if one != 0 {
				to := Square(bits.TrailingZeros64(one))
				if one&promoRank != 0 {
					b.pushPromotions(list, side, from, to, NoPiece)
				} else {
					list.push(NewMove(from, to, pawnPiece, NoPiece, NoPiece))
					// Double push only through an empty intermediate square.
					if two := pawnDoublePush[side][from] &^ allOcc; two != 0 {
						list.push(NewMove(from, Square(bits.TrailingZeros64(two)), pawnPiece, NoPiece, NoPiece))
					}
				}
			}
		}

		for t := pawnAttack[side][from] & capMask; t != 0; {
			to := Square(popLSB(&t))
			if to == ep {
				list.push(NewMove(from, to, pawnPiece, NoPiece, NoPiece))
				continue
			}
			captured := b.PieceAt(to)
			if bb(to)&promoRank != 0 {
				b.pushPromotions(list, side, from, to, captured)
			} else {
				list.push(NewMove(from, to, pawnPiece, captured, NoPiece))
			}
		}
	}
}

// pushPromotions emits the four promotion moves, queen first.
func (b *Board) pushPromotions(list *MoveList, side Color, from, to Square, captured Piece) {
	pawnPiece := PieceFromType(side, PieceTypePawn)
	list.push(NewMove(from, to, pawnPiece, captured, PieceFromType(side, PieceTypeQueen)))
	list.push(NewMove(from, to, pawnPiece, captured, PieceFromType(side, PieceTypeRook)))
	list.push(NewMove(from, to, pawnPiece, captured, PieceFromType(side, PieceTypeBishop)))
	list.push(NewMove(from, to, pawnPiece, captured, PieceFromType(side, PieceTypeKnight)))
}

// purgeIllegalMoves makes each pseudo-legal move and keeps those that do
// not leave the mover's own king attacked.
func (b *Board) purgeIllegalMoves(pseudo *MoveList) MoveList {
	var legal MoveList
	mover := b.SideToMove()
	for _, m := range pseudo.Moves() {
		after := b.MakeMove(m)
		if !after.PlayerInCheck(mover) {
			legal.push(m)
		}
	}
	return legal
}

// IsSquareAttackedBy reports whether the square is attacked by the given
// color in the current position.
func (b *Board) IsSquareAttackedBy(sq Square, by Color) bool {
	byIdx := int(by) << 3

	// Pawns attack the square iff a pawn of the attacking color sits on a
	// square the defender's pawn-attack table reaches from sq.
	if pawnAttack[1-by][sq]&b[byIdx|int(PieceTypePawn)] != 0 {
		return true
	}
	if knightAttacks[sq]&b[byIdx|int(PieceTypeKnight)] != 0 {
		return true
	}
	if kingAttacks[sq]&b[byIdx|int(PieceTypeKing)] != 0 {
		return true
	}

	occ := b.AllOccupancy()
	if bishopMoves(int(sq), occ)&(b[byIdx|int(PieceTypeBishop)]|b[byIdx|int(PieceTypeQueen)]) != 0 {
		return true
	}
	if rookMoves(int(sq), occ)&(b[byIdx|int(PieceTypeRook)]|b[byIdx|int(PieceTypeQueen)]) != 0 {
		return true
	}
	return false
}

// PlayerInCheck reports whether the given color's king is attacked.
func (b *Board) PlayerInCheck(c Color) bool {
	ksq := b.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return b.IsSquareAttackedBy(ksq, 1-c)
}
