package mines

import "errors"

var (
	ErrInvalidDimension  = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("mine count must be less than the number of cells")
	ErrNegativeMineCount = errors.New("mine count must not be negative")
)
