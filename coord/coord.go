// Package coord packs 2D grid cells into scalar keys so that cells can be
// used directly as map keys and heap entries.
//
// The packing is key = row*Fudge + col. It is a bijection over every cell
// with 0 <= col < Fudge, so Fudge must strictly exceed the grid width.
// NewCodec enforces that precondition instead of letting rows collide.
package coord

import (
	"errors"
	"fmt"
	"math"
)

// DefaultFudge is the row multiplier used when none is configured.
// It is far larger than any realistic grid width.
const DefaultFudge = 100000

var (
	// ErrFudgeTooSmall indicates Fudge <= grid width, which would make keys of
	// different rows collide.
	ErrFudgeTooSmall = errors.New("coord: fudge must exceed grid width")

	// ErrBadWidth indicates a non-positive grid width.
	ErrBadWidth = errors.New("coord: grid width must be positive")
)

// Cell is a (row, col) grid coordinate.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Key is the packed scalar form of a Cell.
type Key int64

// Codec converts between Cell and Key for one grid width.
type Codec struct {
	fudge int64
}

// NewCodec validates fudge against width and returns a Codec.
// Returns ErrBadWidth if width <= 0, ErrFudgeTooSmall if fudge <= width.
func NewCodec(width, fudge int) (Codec, error) {
	if width <= 0 {
		return Codec{}, fmt.Errorf("%w: width=%d", ErrBadWidth, width)
	}
	if fudge <= width {
		return Codec{}, fmt.Errorf("%w: fudge=%d width=%d", ErrFudgeTooSmall, fudge, width)
	}

	return Codec{fudge: int64(fudge)}, nil
}

// Fudge returns the row multiplier.
func (cd Codec) Fudge() int { return int(cd.fudge) }

// Pack returns row*Fudge + col.
func (cd Codec) Pack(c Cell) Key {
	return Key(int64(c.Row)*cd.fudge + int64(c.Col))
}

// Unpack inverts Pack: col = key mod Fudge, row = key div Fudge.
func (cd Codec) Unpack(k Key) Cell {
	return Cell{Row: int(int64(k) / cd.fudge), Col: int(int64(k) % cd.fudge)}
}

// Euclidean returns the straight-line distance between two cells.
// It serves as both the edge cost and the heuristic of the grid search.
func Euclidean(a, b Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}
