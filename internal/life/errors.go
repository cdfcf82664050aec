package life

import "errors"

var (
	// ErrInvalidSize indicates a board dimension that is zero or negative.
	ErrInvalidSize = errors.New("life: board dimensions must be positive")

	// ErrOutOfBounds indicates a coordinate outside [0, W) x [0, H).
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")

	// ErrSizeMismatch indicates two boards that were expected to share dimensions.
	ErrSizeMismatch = errors.New("life: board dimensions differ")

	// ErrAliasedBoard indicates a step whose destination is also its source.
	ErrAliasedBoard = errors.New("life: destination board aliases source")

	// ErrInvalidRule indicates a rule string that is not valid B/S notation.
	ErrInvalidRule = errors.New("life: invalid rule")
)
