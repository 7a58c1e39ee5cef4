package board

import "errors"

var (
	// ErrEmptyBoard indicates a board with no rows or no columns was requested.
	ErrEmptyBoard = errors.New("board: must have at least one row and one column")
	// ErrNonRectangular indicates literal rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("board: position out of bounds")
	// ErrInvalidCell indicates a negative tile label.
	ErrInvalidCell = errors.New("board: invalid cell value")
)
