package grid

import "errors"

var (
	// ErrBadSize indicates a grid size below 1.
	ErrBadSize = errors.New("grid: size must be at least 1")
	// ErrOutOfBounds indicates a coordinate (or part of a word run) outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBadLetter indicates a write of anything other than 'A'..'Z'.
	ErrBadLetter = errors.New("grid: letter must be A-Z")
	// ErrConflict indicates a write over a cell holding a different letter.
	ErrConflict = errors.New("grid: cell already holds a different letter")
	// ErrInconsistent indicates the buffer and the letter index disagree.
	ErrInconsistent = errors.New("grid: buffer and letter index disagree")
)
