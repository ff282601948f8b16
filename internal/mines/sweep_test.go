package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweptCount(b *Board) int {
	return b.count(func(c Cell) bool { return c.Has(Swept) })
}

func TestSweepFloodFill(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0})

	assert.Zero(t, b.Sweep(Point{2, 2}))

	for row := range 3 {
		for col := range 3 {
			p := Point{row, col}
			assert.Equal(t, p != Point{0, 0}, b.Swept(p), p.String())
		}
	}
	assert.False(t, b.IsMineTriggered())
	assert.False(t, b.IsFullyCleared())

	b.Flag(Point{0, 0})
	assert.True(t, b.IsFullyCleared())
}

func TestSweepNextToMine(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0})

	assert.Zero(t, b.Sweep(Point{1, 1}))
	assert.Equal(t, 1, sweptCount(b))
	assert.True(t, b.Swept(Point{1, 1}))
	assert.False(t, b.IsMineTriggered())
}

func TestSweepMine(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0})

	assert.Equal(t, 1, b.Sweep(Point{0, 0}))
	assert.True(t, b.IsMineTriggered())
	assert.Equal(t, 1, sweptCount(b))
}

func TestSweepNoop(t *testing.T) {
	b := newTestBoard(t, 3, 4, Point{0, 0})

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {100, 100}} {
		assert.Zero(t, b.Sweep(p), p.String())
	}
	assert.Zero(t, sweptCount(b))

	require.True(t, b.Flag(Point{0, 0}))
	assert.Zero(t, b.Sweep(Point{0, 0}))
	assert.False(t, b.Swept(Point{0, 0}))
	assert.False(t, b.IsMineTriggered())

	assert.Zero(t, b.Sweep(Point{1, 1}))
	before := b.String()
	assert.Zero(t, b.Sweep(Point{1, 1}))
	assert.Equal(t, before, b.String())
}

func TestSweepStopsAtFlags(t *testing.T) {
	// A flag in the middle of a blank region is not opened by the fill,
	// but the fill still flows around it.
	b := newTestBoard(t, 1, 5)
	b.Flag(Point{0, 2})

	assert.Zero(t, b.Sweep(Point{0, 0}))
	assert.True(t, b.Swept(Point{0, 1}))
	assert.False(t, b.Swept(Point{0, 2}))
	assert.False(t, b.Swept(Point{0, 3}))

	b = newTestBoard(t, 3, 3)
	b.Flag(Point{1, 1})
	b.Sweep(Point{0, 0})
	assert.Equal(t, 8, sweptCount(b))
	assert.True(t, b.Flagged(Point{1, 1}))
}

func TestSweepNeighbors(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0}, Point{0, 2})

	// (2,0) is blank, so its fill also opens the center.
	assert.Equal(t, 2, b.SweepNeighbors(Point{1, 1}))
	assert.True(t, b.IsMineTriggered())
	assert.Equal(t, 9, sweptCount(b))

	b = newTestBoard(t, 3, 3, Point{2, 2})
	assert.Zero(t, b.SweepNeighbors(Point{0, 0}))
	assert.False(t, b.Swept(Point{2, 2}))
	assert.Equal(t, 8, sweptCount(b))

	b = newTestBoard(t, 1, 3, Point{0, 2})
	assert.Zero(t, b.SweepNeighbors(Point{0, 0}))
	assert.False(t, b.Swept(Point{0, 0}))
	assert.True(t, b.Swept(Point{0, 1}))
	assert.False(t, b.IsMineTriggered())
}

func TestFlag(t *testing.T) {
	b := newTestBoard(t, 2, 2, Point{0, 0})

	assert.True(t, b.Flag(Point{0, 0}))
	assert.True(t, b.Flagged(Point{0, 0}))
	assert.True(t, b.Flag(Point{0, 0}))
	assert.False(t, b.Flagged(Point{0, 0}))

	b.Sweep(Point{1, 1})
	assert.False(t, b.Flag(Point{1, 1}))
	assert.False(t, b.Flagged(Point{1, 1}))

	assert.False(t, b.Flag(Point{-1, 0}))
	assert.False(t, b.Flag(Point{2, 2}))
	assert.Zero(t, b.FlagCount())
}

func TestRevealAllMines(t *testing.T) {
	b := newTestBoard(t, 3, 3, Point{0, 0}, Point{2, 2})
	b.Flag(Point{2, 2})
	b.Flag(Point{1, 0})

	b.RevealAllMines()

	assert.True(t, b.Swept(Point{0, 0}))
	assert.True(t, b.Swept(Point{2, 2}))
	assert.Equal(t, 2, sweptCount(b))
	assert.True(t, b.Flagged(Point{1, 0}))
	assert.True(t, b.IsMineTriggered())
}

// Random play on seeded boards, checking the counting and flood fill
// invariants after every move.
func TestRandomPlayInvariants(t *testing.T) {
	tests := []GameParams{
		{Width: 9, Height: 9, MineCount: 10},
		{Width: 16, Height: 16, MineCount: 40},
		{Width: 30, Height: 16, MineCount: 99},
		{Width: 40, Height: 1, MineCount: 3},
	}
	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b, err := NewBoard(params, r)
			require.NoError(t, err)

			for range 200 {
				p := Point{r.IntN(params.Height), r.IntN(params.Width)}
				if r.IntN(4) == 0 {
					if !b.Flagged(p) {
						b.Flag(p)
					}
				} else if b.MineAt(p) == 0 {
					b.Sweep(p)
				}

				wrongFlags := b.count(func(c Cell) bool {
					return c.Has(Flagged) && !c.Has(Mine)
				})
				require.Equal(t, b.CorrectFlagCount()+wrongFlags, b.FlagCount())
				require.LessOrEqual(t, b.CorrectFlagCount(), b.MineCount())
				require.False(t, b.IsMineTriggered())

				for i, c := range b.grid {
					q := b.point(i)
					require.False(t, c.Has(Swept) && c.Has(Flagged), q.String())
					if !c.Has(Swept) || !b.blank(q) {
						continue
					}
					for _, n := range Neighbors(q) {
						if b.InBounds(n) && !b.Flagged(n) {
							require.True(t, b.Swept(n), "%s next to blank %s", n, q)
						}
					}
				}
			}
		})
	}
}
