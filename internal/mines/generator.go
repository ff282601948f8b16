package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidDimension, p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w (got %d)", ErrNegativeMineCount, p.MineCount)
	}
	if p.MineCount >= p.Cells() {
		return fmt.Errorf("%w (%d mines for %d cells)", ErrTooManyMines, p.MineCount, p.Cells())
	}
	return nil
}

// String formats p as WxH(M), the inverse of [ParseGameParams].
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

func ParseGameParams(s string) (*GameParams, error) {
	p := &GameParams{}
	fields := strings.NewReplacer("x", " ", "(", " ", ")", " ").Replace(s)
	n, err := fmt.Sscanf(fields, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params (s = "%s", n = %d, err = %w)`, s, n, err,
		)
	}
	return p, nil
}
