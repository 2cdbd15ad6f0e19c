package astar

import (
	"context"

	"github.com/katalvlaran/gridsearch/coord"
)

// Result contains the outcome of a complete search.
type Result struct {
	Path     []coord.Cell // start → goal, nil unless Found
	Cost     float64      // g-score of the goal, 0 unless Found
	Steps    int          // Step calls performed
	Expanded int          // cells closed
	Found    bool
}

// FindPath initializes a search and runs it to completion.
// A missing path is reported as Result.Found == false, not as an error.
func FindPath(ctx context.Context, grid Grid, start, goal coord.Cell, opts ...Option) (Result, error) {
	s, err := Initialize(grid, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	res, err := s.Run(ctx)
	out := Result{Steps: s.Steps(), Expanded: s.Expanded(), Found: res == Found}
	if err != nil {
		return out, err
	}
	if out.Found {
		out.Path, _ = s.Path()
		out.Cost, _ = s.Cost()
	}

	return out, nil
}
