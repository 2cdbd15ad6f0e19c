package gridgraph

import (
	"fmt"
	"math/rand"
	"time"
)

// Generate builds a height×width grid with radially biased random obstacles.
//
// For cell (i, j) let t = (i+j)/(H+W). The cell is blocked when
//
//	-Scale·U(0,1) > t·(t−1)
//
// t·(t−1) is zero at the start corner and most negative along the
// anti-diagonal midline, so obstacles are rare near the corners and dense
// across the middle. Afterwards the 2×2 blocks at the start and goal corners
// are cleared unconditionally. This does not guarantee that a path exists.
//
// Returns ErrGridTooSmall if height or width < 2, ErrBadScale for a non-positive scale.
// Complexity: O(W×H).
func Generate(height, width int, opts ...GenOption) (*GridGraph, error) {
	cfg := DefaultGenOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if height < 2 || width < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrGridTooSmall, height, width)
	}
	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([][]bool, height)
	for i := 0; i < height; i++ {
		cells[i] = make([]bool, width)
		for j := 0; j < width; j++ {
			cells[i][j] = -cfg.Scale*r.Float64() > bias(i, j, height, width)
		}
	}

	// Escape routes around both corners.
	cells[0][0], cells[0][1], cells[1][0], cells[1][1] = false, false, false, false
	h, w := height-1, width-1
	cells[h][w], cells[h][w-1], cells[h-1][w], cells[h-1][w-1] = false, false, false, false

	return newGrid(cells, cfg.Conn), nil
}

// bias is the downward parabola t·(t−1) over the normalized anti-diagonal position.
func bias(i, j, height, width int) float64 {
	t := float64(i+j) / float64(height+width)
	return t * (t - 1)
}
