package mines

import "strconv"

// Cell holds the independent state flags of one square.
type Cell uint8

const (
	Swept Cell = 1 << iota
	Flagged
	Mine
)

func (c Cell) Has(flag Cell) bool {
	return c&flag != 0
}

func (c Cell) String() string {
	var s string
	if c.Has(Swept) {
		s += "swept"
	}
	if c.Has(Flagged) {
		s += iif(s == "", "", "|") + "flagged"
	}
	if c.Has(Mine) {
		s += iif(s == "", "", "|") + "mine"
	}
	if s == "" {
		return "hidden"
	}
	return s
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Col)
}

// Neighbors returns the 8 points around p. Points outside any board are
// included; the bounds-safe board queries take care of them.
func Neighbors(p Point) [8]Point {
	return [8]Point{
		{p.Row - 1, p.Col - 1},
		{p.Row, p.Col - 1},
		{p.Row + 1, p.Col - 1},
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row - 1, p.Col + 1},
		{p.Row, p.Col + 1},
		{p.Row + 1, p.Col + 1},
	}
}

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	} else {
		return valueIfFalse
	}
}
