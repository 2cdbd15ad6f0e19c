package gridgraph

import "github.com/katalvlaran/gridsearch/coord"

// ConnectedComponents finds all contiguous regions of open cells
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order.
//
// To convert an index back to a cell, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			cell := coord.Cell{Row: r, Col: c}
			if gg.blocked[r][c] || seen[gg.index(cell)] {
				continue
			}
			comps = append(comps, gg.flood(cell, seen))
		}
	}

	return comps
}

// Connected reports whether a and b are joined by a chain of open cells.
// Blocked or out-of-bounds endpoints are never connected.
// Complexity: O(W·H·d) worst case.
func (gg *GridGraph) Connected(a, b coord.Cell) bool {
	if gg.IsBlocked(a) || gg.IsBlocked(b) {
		return false
	}
	target := gg.index(b)
	for _, i := range gg.flood(a, make([]bool, gg.Width*gg.Height)) {
		if i == target {
			return true
		}
	}

	return false
}

// flood collects the open component containing start, marking seen.
func (gg *GridGraph) flood(start coord.Cell, seen []bool) []int {
	i0 := gg.index(start)
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			v := u.Add(d[0], d[1])
			if gg.IsBlocked(v) {
				continue
			}
			vi := gg.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
