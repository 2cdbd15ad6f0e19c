// Package gridgraph models the obstacle grid of the grid search: a fixed
// rectangle of cells, each either open or blocked.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool obstacle matrix, indexed [row][col].
//   - Generate produces a random grid whose obstacle density follows a radial bias:
//     sparse around the start (top-left) and goal (bottom-right) corners, dense
//     across the anti-diagonal midline. Both 2×2 corner blocks are always cleared.
//   - Identifies connected components of open cells.
//   - Computes the minimal number of obstacles separating two cells (0-1 BFS).
//
// Why:
//
//   - Search demos: a fresh, visually interesting maze for every run.
//   - Diagnostics: explain an "exhausted" search by how many walls block the way.
//
// Complexity:
//
//   - Generate:            O(W×H).
//   - InBounds, IsBlocked: O(1).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - MinClearance:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithScale, WithSeed, WithRand, WithConnectivity for Generate.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooSmall: generated grid smaller than 2×2.
//   - ErrBadScale: non-positive obstacle scale.
//   - ErrBadCell: unknown character passed to Parse.
//   - ErrOutOfBounds: MinClearance endpoint outside the grid.
package gridgraph
