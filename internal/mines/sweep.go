package mines

import "github.com/gammazero/deque"

// sweepable reports whether p can still be opened.
func (b *Board) sweepable(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	c := b.grid[b.index(p)]
	return !c.Has(Swept) && !c.Has(Flagged)
}

func (b *Board) blank(p Point) bool {
	return b.MineAt(p) == 0 && b.AdjacentMines(p) == 0
}

// Sweep opens the cell at p and returns the number of mines found there
// (0 or 1). Out-of-bounds, swept and flagged cells are left alone and
// yield 0. Opening a blank cell (no mine, no mined neighbors) opens the
// whole connected blank region and its border.
func (b *Board) Sweep(p Point) int {
	if !b.sweepable(p) {
		return 0
	}
	i := b.index(p)
	b.grid[i] |= Swept

	found := b.MineAt(p)
	if b.blank(p) {
		b.flood(i)
	}
	return found
}

// flood opens every neighbor reachable from the blank cell at start. The
// Swept bit doubles as the visited set, so each index is queued once.
func (b *Board) flood(start int) {
	var todo deque.Deque[int]
	todo.PushBack(start)
	for todo.Len() != 0 {
		i := todo.PopFront()
		for _, q := range Neighbors(b.point(i)) {
			if !b.sweepable(q) {
				continue
			}
			j := b.index(q)
			b.grid[j] |= Swept
			if b.blank(q) {
				todo.PushBack(j)
			}
		}
	}
}

// SweepNeighbors sweeps the 8 cells around p and returns the total number
// of mines uncovered.
func (b *Board) SweepNeighbors(p Point) (mines int) {
	for _, q := range Neighbors(p) {
		mines += b.Sweep(q)
	}
	return
}

// Flag toggles the flag on an unswept cell. It reports whether anything
// changed.
func (b *Board) Flag(p Point) bool {
	if !b.InBounds(p) {
		return false
	}
	i := b.index(p)
	if b.grid[i].Has(Swept) {
		return false
	}
	b.grid[i] ^= Flagged
	return true
}

// RevealAllMines sweeps every mined cell and leaves the rest as they are.
func (b *Board) RevealAllMines() {
	for i, c := range b.grid {
		if c.Has(Mine) {
			b.grid[i] = c | Swept
		}
	}
}
