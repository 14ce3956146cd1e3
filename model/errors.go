package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a height or width is not positive
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDimensionMismatch is returned when seed data does not match the declared shape
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrOutOfBounds is returned when a row/col falls outside the board
	ErrOutOfBounds = errors.New("index out of bounds")
)

func checkDimensions(fn string, height, width int) error {
	if height <= 0 || width <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "[%s] height=%d width=%d", fn, height, width)
	}
	return nil
}
