package grids

import "errors"

var (
	// ErrEmptyGrid indicates the input has no usable rows or columns.
	ErrEmptyGrid = errors.New("grids: input must have at least one row and one column")
	// ErrBadCharacter indicates the decoder rejected an input byte.
	ErrBadCharacter = errors.New("grids: unexpected character in grid input")
)
