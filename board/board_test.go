package board_test

import (
	"testing"

	"minchess/board"
)

func TestPieceAtAllSquares(t *testing.T) {
	b := mustParse(t, board.FENStartPos)

	backRank := []board.Piece{
		board.WhiteRook, board.WhiteKnight, board.WhiteBishop, board.WhiteQueen,
		board.WhiteKing, board.WhiteBishop, board.WhiteKnight, board.WhiteRook,
	}
	for file := 0; file < 8; file++ {
		if got := b.PieceAt(board.Square(file)); got != backRank[file] {
			t.Errorf("square %d: got %v want %v", file, got, backRank[file])
		}
		if got := b.PieceAt(board.Square(8 + file)); got != board.WhitePawn {
			t.Errorf("square %d: got %v want WhitePawn", 8+file, got)
		}
		if got := b.PieceAt(board.Square(48 + file)); got != board.BlackPawn {
			t.Errorf("square %d: got %v want BlackPawn", 48+file, got)
		}
	}
	for sq := board.Square(16); sq < 48; sq++ {
		if got := b.PieceAt(sq); got != board.NoPiece {
			t.Errorf("square %d: got %v want NoPiece", sq, got)
		}
	}
}

func TestKingSquare(t *testing.T) {
	b := mustParse(t, board.FENStartPos)
	if got := b.KingSquare(board.White); got != 4 {
		t.Errorf("white king: got %v want e1", got)
	}
	if got := b.KingSquare(board.Black); got != 60 {
		t.Errorf("black king: got %v want e8", got)
	}
}

func TestPieceHelpers(t *testing.T) {
	if board.WhiteQueen.Type() != board.PieceTypeQueen || board.BlackQueen.Type() != board.PieceTypeQueen {
		t.Errorf("queen type mismatch")
	}
	if board.WhitePawn.Color() != board.White || board.BlackPawn.Color() != board.Black {
		t.Errorf("pawn color mismatch")
	}
	if board.PieceFromType(board.Black, board.PieceTypeKnight) != board.BlackKnight {
		t.Errorf("PieceFromType(Black, Knight) mismatch")
	}
	if board.PieceFromType(board.White, board.PieceTypeNone) != board.NoPiece {
		t.Errorf("PieceFromType none mismatch")
	}
}

func TestOccupancyComposition(t *testing.T) {
	b := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	for _, c := range []board.Color{board.White, board.Black} {
		var union uint64
		for pt := board.PieceTypeKing; pt <= board.PieceTypePawn; pt++ {
			pieceBB := b.PieceBitboard(board.PieceFromType(c, pt))
			if pieceBB&^b.Occupancy(c) != 0 {
				t.Errorf("piece bitboard %v/%v escapes occupancy", c, pt)
			}
			union |= pieceBB
		}
		if union != b.Occupancy(c) {
			t.Errorf("occupancy of %v not the union of its piece bitboards", c)
		}
	}
	if b.Occupancy(board.White)&b.Occupancy(board.Black) != 0 {
		t.Errorf("occupancies overlap")
	}
	if b.AllOccupancy() != b.Occupancy(board.White)|b.Occupancy(board.Black) {
		t.Errorf("AllOccupancy mismatch")
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	b := mustParse(t, board.FENStartPos)
	if !b.Validate() {
		t.Fatalf("starting position should validate")
	}

	corrupt := b
	corrupt[int(board.WhitePawn)] |= 1 << 63 // pawn outside occupancy, on rank 8
	if corrupt.Validate() {
		t.Errorf("pawn outside occupancy not caught")
	}

	corrupt = b
	corrupt[16] ^= 0xdeadbeef // KEY no longer matches recompute
	if corrupt.Validate() {
		t.Errorf("stale KEY not caught")
	}
}

func TestSquareString(t *testing.T) {
	names := map[board.Square]string{0: "a1", 7: "h1", 28: "e4", 56: "a8", 63: "h8"}
	for sq, want := range names {
		if got := board.SquareString(sq); got != want {
			t.Errorf("SquareString(%d): got %q want %q", sq, got, want)
		}
	}
	if board.SquareString(board.NoSquare) != "-" {
		t.Errorf("SquareString(NoSquare) should be \"-\"")
	}
}

func TestBoardString(t *testing.T) {
	b := mustParse(t, board.FENStartPos)
	s := b.BoardString()
	lines := []string{
		"8  r n b q k b n r",
		"1  R N B Q K B N R",
		"   a b c d e f g h",
	}
	for _, want := range lines {
		if !containsLine(s, want) {
			t.Errorf("BoardString missing line %q:\n%s", want, s)
		}
	}
}

func containsLine(s, line string) bool {
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\n' {
			i++
		}
		if s[:i] == line {
			return true
		}
		if i == len(s) {
			break
		}
		s = s[i+1:]
	}
	return false
}
