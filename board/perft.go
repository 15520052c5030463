package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Moves are generated pseudo-legally and filtered by the post-move
// own-king-in-check test, which exercises the same pipeline a search would.
// A generation failure means the position is corrupt and panics.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	list, err := b.Generate(false, false)
	if err != nil {
		panic("board: " + err.Error())
	}
	mover := b.SideToMove()
	var nodes uint64
	for _, m := range list.Moves() {
		child := b.MakeMove(m)
		if child.PlayerInCheck(mover) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += Perft(&child, depth-1)
		}
	}
	return nodes
}

// PerftDivide returns the leaf count below each legal root move. Useful for
// diffing against another engine's divide output when hunting a generator
// bug.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	list, err := b.Generate(true, false)
	if err != nil {
		panic("board: " + err.Error())
	}
	for _, m := range list.Moves() {
		child := b.MakeMove(m)
		result[m] = Perft(&child, depth-1)
	}
	return result
}
