package board

import "math/rand"

// Zobrist hashing tables. KEY is defined as the XOR of a constant for every
// (piece, square) pair present, the castling-rights state, the en-passant
// file, and the side to move when Black. Indexing by piece code covers both
// colors since the code carries the color bit.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func initZobrist() {
	// Fixed seed so keys are reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeZobrist calculates the position's hash from scratch. MakeMove
// maintains KEY incrementally; this is the invariant it must match.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64

	for ci := 0; ci < 2; ci++ {
		occIdx := ci << 3
		for t := 1; t <= 6; t++ {
			pieces := b[occIdx+t]
			for pieces != 0 {
				sq := popLSB(&pieces)
				key ^= zobristPiece[occIdx+t][sq]
			}
		}
	}

	if b.SideToMove() == Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[b.Castling()]

	if ep := b.EnPassantSquare(); ep != NoSquare {
		key ^= zobristEnPassant[ep.File()]
	}

	return key
}
