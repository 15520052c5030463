package board_test

import (
	"math/rand"
	"testing"

	"minchess/board"
)

func TestZobristIncrementalMatchesScratch(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"2K2r2/4P3/8/8/8/8/8/3k4 w - - 0 1",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		list, err := b.Generate(true, false)
		if err != nil {
			t.Fatalf("Generate(%q): %v", fen, err)
		}
		for _, m := range list.Moves() {
			child := b.MakeMove(m)
			if child.Key() != child.ComputeZobrist() {
				t.Errorf("%s after %s: incremental key %#x != scratch %#x",
					fen, m, child.Key(), child.ComputeZobrist())
			}
		}
	}
}

func TestZobristDistinguishesStatusFields(t *testing.T) {
	base := mustParse(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	noEP := mustParse(t, "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2")
	if base.Key() == noEP.Key() {
		t.Errorf("en passant square should change the key")
	}

	full := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	partial := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")
	if full.Key() == partial.Key() {
		t.Errorf("castling rights should change the key")
	}

	white := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	black := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R b - - 0 1")
	if white.Key() == black.Key() {
		t.Errorf("side to move should change the key")
	}
}

// TestZobristRandomWalk plays random legal games from the start and checks
// the incremental key and the structural invariants at every node.
func TestZobristRandomWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for game := 0; game < 20; game++ {
		b := board.StartingPosition()
		for ply := 0; ply < 60; ply++ {
			list, err := b.Generate(true, false)
			if err != nil {
				t.Fatalf("game %d ply %d: %v", game, ply, err)
			}
			if list.Len() == 0 {
				break
			}
			m := list.Moves()[rnd.Intn(list.Len())]
			b = b.MakeMove(m)
			if !b.Validate() {
				t.Fatalf("game %d ply %d: invariants broken after %s\n%s",
					game, ply, m, b.BoardString())
			}
		}
	}
}
