package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooSmall indicates a generated grid cannot hold both 2×2 corner clearances.
	ErrGridTooSmall = errors.New("gridgraph: generated grid must be at least 2×2")
	// ErrBadScale indicates a non-positive obstacle scale.
	ErrBadScale = errors.New("gridgraph: obstacle scale must be positive")
	// ErrBadCell indicates an unknown character in a textual grid.
	ErrBadCell = errors.New("gridgraph: unknown cell character")
	// ErrOutOfBounds indicates a queried cell lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
