// Package gridgraph provides the obstacle grid that the grid search runs on.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds and blocked-cell queries
//   - Identification of connected components of open cells
//   - Minimal obstacle clearance between two cells
//
// Cells marked true in the blocked matrix are obstacles; everything else is open.
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/coord"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as blocked[row][col].
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(blocked [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], blocked[r])
	}

	return newGrid(cells, opts.Conn), nil
}

// Parse builds a GridGraph from text rows, '#' for blocked and '.' for open.
// Intended for tests, fixtures and logs.
func Parse(conn Connectivity, rows ...string) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, len(rows))
	for r, line := range rows {
		if len(line) != len(rows[0]) {
			return nil, ErrNonRectangular
		}
		cells[r] = make([]bool, len(line))
		for c, ch := range []byte(line) {
			switch ch {
			case OpenChar:
			case BlockedChar:
				cells[r][c] = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, r, c)
			}
		}
	}

	return newGrid(cells, conn), nil
}

// newGrid wraps an owned matrix and precomputes neighbor offsets.
func newGrid(cells [][]bool, conn Connectivity) *GridGraph {
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &GridGraph{
		Width:           len(cells[0]),
		Height:          len(cells),
		Conn:            conn,
		blocked:         cells,
		neighborOffsets: offsets,
	}
}

// Bounds returns the grid dimensions as (height, width).
func (gg *GridGraph) Bounds() (height, width int) {
	return gg.Height, gg.Width
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c coord.Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// IsBlocked reports whether c is an obstacle. Out-of-bounds cells count as blocked.
// Complexity: O(1).
func (gg *GridGraph) IsBlocked(c coord.Cell) bool {
	return !gg.InBounds(c) || gg.blocked[c.Row][c.Col]
}

// Start returns the top-left corner cell.
func (gg *GridGraph) Start() coord.Cell { return coord.Cell{} }

// Goal returns the bottom-right corner cell.
func (gg *GridGraph) Goal() coord.Cell {
	return coord.Cell{Row: gg.Height - 1, Col: gg.Width - 1}
}

// BlockedCount returns the number of obstacle cells.
func (gg *GridGraph) BlockedCount() int {
	n := 0
	for _, row := range gg.blocked {
		for _, b := range row {
			if b {
				n++
			}
		}
	}

	return n
}

// index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c coord.Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) coord.Cell {
	return coord.Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}

// String renders the grid one row per line using '#' and '.'.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for r, row := range gg.blocked {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, b := range row {
			if b {
				sb.WriteByte(BlockedChar)
			} else {
				sb.WriteByte(OpenChar)
			}
		}
	}

	return sb.String()
}
