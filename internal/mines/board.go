package mines

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Board is a height x width minefield stored row-major.
//
// Queries and commands never fail for out-of-bounds points: they read as
// "no mine" and leave the board untouched, which keeps the flood fill and
// chord free of boundary checks.
type Board struct {
	height, width int
	grid          []Cell
}

func NewEmptyBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w (got %dx%d)", ErrInvalidDimension, width, height)
	}
	b := &Board{
		height: height,
		width:  width,
		grid:   make([]Cell, height*width),
	}
	return b, nil
}

// NewBoard creates a board for params and mines it using r.
func NewBoard(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b, err := NewEmptyBoard(params.Height, params.Width)
	if err != nil {
		return nil, err
	}
	if err := b.PlaceMines(params.MineCount, r); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Height() int { return b.height }

func (b *Board) Width() int { return b.width }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < b.height && 0 <= p.Col && p.Col < b.width
}

func (b *Board) index(p Point) int {
	return p.Row*b.width + p.Col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.width, Col: i % b.width}
}

// At returns the state of the cell at p, or 0 when p is out of bounds.
func (b *Board) At(p Point) Cell {
	if !b.InBounds(p) {
		return 0
	}
	return b.grid[b.index(p)]
}

// PlaceMines mines count distinct, not yet mined cells chosen uniformly with
// r. At least one cell is always left safe.
func (b *Board) PlaceMines(count int, r *rand.Rand) error {
	if count < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeMineCount, count)
	}
	if b.MineCount()+count >= len(b.grid) {
		return fmt.Errorf("%w (%d mines for %d cells)",
			ErrTooManyMines, b.MineCount()+count, len(b.grid))
	}

	candidates := make([]int, 0, len(b.grid))
	for i, c := range b.grid {
		if !c.Has(Mine) {
			candidates = append(candidates, i)
		}
	}

	/*
	 * Pick count off the list at random, moving the last candidate into
	 * each taken slot so nothing is drawn twice.
	 */
	k := len(candidates)
	for range count {
		i := r.IntN(k)
		b.grid[candidates[i]] |= Mine
		k--
		candidates[i] = candidates[k]
	}

	Log.WithFields(logrus.Fields{
		"height": b.height,
		"width":  b.width,
		"placed": count,
		"total":  b.MineCount(),
	}).Debug("placed mines")
	return nil
}

// SetMine mines the cell at p. It is meant for building fixed layouts.
func (b *Board) SetMine(p Point) {
	if b.InBounds(p) {
		b.grid[b.index(p)] |= Mine
	}
}

func (b *Board) count(match func(Cell) bool) (n int) {
	for _, c := range b.grid {
		if match(c) {
			n++
		}
	}
	return
}

// MineCount is the total number of mined cells, flagged or not.
func (b *Board) MineCount() int {
	return b.count(func(c Cell) bool { return c.Has(Mine) })
}

func (b *Board) FlagCount() int {
	return b.count(func(c Cell) bool { return c.Has(Flagged) })
}

func (b *Board) CorrectFlagCount() int {
	return b.count(func(c Cell) bool { return c.Has(Flagged) && c.Has(Mine) })
}

// RemainingMines is the counter shown to the player: mines minus all flags,
// right or wrong. It goes negative when the player over-flags.
func (b *Board) RemainingMines() int {
	return b.MineCount() - b.FlagCount()
}

// IsFullyCleared reports whether every cell is swept or is a flagged mine.
func (b *Board) IsFullyCleared() bool {
	for _, c := range b.grid {
		if c.Has(Swept) {
			continue
		}
		if c.Has(Flagged) && c.Has(Mine) {
			continue
		}
		return false
	}
	return true
}

func (b *Board) IsMineTriggered() bool {
	for _, c := range b.grid {
		if c.Has(Swept) && c.Has(Mine) {
			return true
		}
	}
	return false
}

// MineAt is 1 if p is in bounds and mined, 0 otherwise.
func (b *Board) MineAt(p Point) int {
	return iif(b.At(p).Has(Mine), 1, 0)
}

func (b *Board) Swept(p Point) bool {
	return b.At(p).Has(Swept)
}

func (b *Board) Flagged(p Point) bool {
	return b.At(p).Has(Flagged)
}

func (b *Board) AdjacentMines(p Point) (n int) {
	for _, q := range Neighbors(p) {
		n += b.MineAt(q)
	}
	return
}

// String dumps the whole board with mines visible: * mine, X flag, digits
// and blanks for safe cells, . for anything else hidden.
func (b *Board) String() string {
	var s strings.Builder
	for row := range b.height {
		for col := range b.width {
			p := Point{row, col}
			c := b.At(p)
			switch {
			case c.Has(Mine):
				s.WriteByte('*')
			case c.Has(Flagged):
				s.WriteByte('X')
			case c.Has(Swept):
				if n := b.AdjacentMines(p); n > 0 {
					s.WriteString(strconv.Itoa(n))
				} else {
					s.WriteByte(' ')
				}
			default:
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
