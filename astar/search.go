// Package astar implements A* search over an implicit 8-connected grid,
// one expansion per Step so that a caller can animate or bound the search.
//
// Edge cost and heuristic are both the Euclidean distance between cells,
// which makes the heuristic consistent: a cell's g-score is final once it is
// popped, and no cell is expanded twice.
//
// Notes on implementation choices:
//
//   - Cells are packed into coord.Key scalars; every map and the open set
//     are keyed by them.
//   - The open set is a pqset.PriorityQueueSet ordered by f-score. Absent
//     scores count as +Inf. When a queued cell's f-score drops, the entry is
//     re-sifted with Fix instead of pushing a duplicate.
//   - A newly discovered neighbor is reported as Frontier before its
//     relaxation check, so observers see discovery order, not improvement order.
package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/coord"
	"github.com/katalvlaran/gridsearch/pqset"
)

// Search holds the mutable state of one search run. It is not safe for
// concurrent use; a new run needs a new Search.
type Search struct {
	grid          Grid
	height, width int
	codec         coord.Codec
	start, goal   coord.Key
	opts          Options

	gScore   map[coord.Key]float64   // best known cost from start
	fScore   map[coord.Key]float64   // gScore + heuristic to goal
	closed   map[coord.Key]bool      // expanded cells
	cameFrom map[coord.Key]coord.Key // predecessor on best known path
	open     *pqset.PriorityQueueSet[coord.Key]

	state    StepResult
	steps    int
	expanded int
}

// Initialize prepares a search from start to goal on grid.
//
// The start cell is queued even if it is blocked. Initialize reports the
// Unexplored/Blocked class of every cell to the observer before returning.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. Options.Fudge must be positive (ErrBadFudge) and exceed the grid width
//     (wrapped coord.ErrFudgeTooSmall / coord.ErrBadWidth).
//  3. start and goal must be in bounds (ErrOutOfBounds).
func Initialize(grid Grid, start, goal coord.Cell, opts ...Option) (*Search, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if grid == nil {
		return nil, ErrNilGrid
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	h, w := grid.Bounds()
	codec, err := coord.NewCodec(w, cfg.Fudge)
	if err != nil {
		return nil, fmt.Errorf("astar: invalid codec: %w", err)
	}

	s := &Search{
		grid:     grid,
		height:   h,
		width:    w,
		codec:    codec,
		opts:     cfg,
		gScore:   make(map[coord.Key]float64),
		fScore:   make(map[coord.Key]float64),
		closed:   make(map[coord.Key]bool),
		cameFrom: make(map[coord.Key]coord.Key),
	}
	if !s.inBounds(start) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, start, h, w)
	}
	if !s.inBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v in %d×%d grid", ErrOutOfBounds, goal, h, w)
	}
	s.start = codec.Pack(start)
	s.goal = codec.Pack(goal)
	s.open = pqset.New(func(a, b coord.Key) bool { return s.f(a) < s.f(b) })

	s.paintGrid()

	s.open.Push(s.start)
	s.gScore[s.start] = 0
	s.fScore[s.start] = s.heuristic(start)

	return s, nil
}

// Step performs exactly one expansion.
//
//  1. Pop the open cell with the lowest f-score. If it is the goal, report
//     the path (goal → start) to the observer and return Found.
//  2. Otherwise close it and report it as Visited.
//  3. For each in-bounds, open, unclosed 8-neighbor: queue it (reported as
//     Frontier) if not yet queued, then relax it if going through the current
//     cell is strictly cheaper.
//  4. Return Exhausted if the open set is now empty, Continue otherwise.
//
// Returns ErrFinished if the search is already in a terminal state.
func (s *Search) Step() (StepResult, error) {
	if s.state.Terminal() {
		return s.state, ErrFinished
	}
	s.steps++

	current, err := s.open.Pop()
	if err != nil {
		// Only reachable if the open set was emptied outside Step.
		s.state = Exhausted
		return s.state, fmt.Errorf("astar: step %d: %w", s.steps, err)
	}
	cur := s.codec.Unpack(current)
	s.opts.OnExpand(cur)

	if current == s.goal {
		s.state = Found
		s.paintPath()
		return s.state, nil
	}

	s.closed[current] = true
	s.expanded++
	s.opts.OnCellStateChange(cur, Visited)

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			nc := cur.Add(dr, dc)
			if !s.inBounds(nc) || s.grid.IsBlocked(nc) {
				continue
			}
			neighbor := s.codec.Pack(nc)
			if neighbor == current || s.closed[neighbor] {
				continue
			}

			tentative := s.g(current) + coord.Euclidean(cur, nc)
			if !s.open.Has(neighbor) {
				s.open.Push(neighbor)
				s.opts.OnCellStateChange(nc, Frontier)
			}
			if tentative < s.g(neighbor) {
				s.cameFrom[neighbor] = current
				s.gScore[neighbor] = tentative
				s.fScore[neighbor] = tentative + s.heuristic(nc)
				s.open.Fix(neighbor)
			}
		}
	}

	if s.open.IsEmpty() {
		s.state = Exhausted
	}

	return s.state, nil
}

// Run steps until the search is terminal or ctx is done.
// Calling Run on a finished search returns its state without error.
func (s *Search) Run(ctx context.Context) (StepResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for !s.state.Terminal() {
		select {
		case <-ctx.Done():
			return s.state, ctx.Err()
		default:
		}
		if _, err := s.Step(); err != nil {
			return s.state, err
		}
	}

	return s.state, nil
}

// Path returns the cells from start to goal. Only valid after Found.
func (s *Search) Path() ([]coord.Cell, error) {
	if s.state != Found {
		return nil, ErrNoPath
	}
	keys := s.backtrack()
	path := make([]coord.Cell, len(keys))
	for i, k := range keys {
		path[len(keys)-1-i] = s.codec.Unpack(k)
	}

	return path, nil
}

// Cost returns the g-score of the goal. Only valid after Found.
func (s *Search) Cost() (float64, error) {
	if s.state != Found {
		return 0, ErrNoPath
	}

	return s.g(s.goal), nil
}

// State returns the result of the latest Step (Continue before the first).
func (s *Search) State() StepResult { return s.state }

// Steps returns how many times Step did work.
func (s *Search) Steps() int { return s.steps }

// Expanded returns the number of closed cells.
func (s *Search) Expanded() int { return s.expanded }

// OpenLen returns the number of queued cells.
func (s *Search) OpenLen() int { return s.open.Len() }

// Closed reports whether c has been expanded.
func (s *Search) Closed(c coord.Cell) bool {
	return s.inBounds(c) && s.closed[s.codec.Pack(c)]
}

// InOpen reports whether c is queued for expansion.
func (s *Search) InOpen(c coord.Cell) bool {
	return s.inBounds(c) && s.open.Has(s.codec.Pack(c))
}

// GScore returns the best known cost from start to c, +Inf if unknown.
func (s *Search) GScore(c coord.Cell) float64 {
	if !s.inBounds(c) {
		return math.Inf(1)
	}

	return s.g(s.codec.Pack(c))
}

// Start returns the start cell.
func (s *Search) Start() coord.Cell { return s.codec.Unpack(s.start) }

// Goal returns the goal cell.
func (s *Search) Goal() coord.Cell { return s.codec.Unpack(s.goal) }

// backtrack walks predecessors from goal to start, both included.
func (s *Search) backtrack() []coord.Key {
	keys := []coord.Key{s.goal}
	for cur := s.goal; cur != s.start; {
		prev, ok := s.cameFrom[cur]
		if !ok {
			break
		}
		keys = append(keys, prev)
		cur = prev
	}

	return keys
}

func (s *Search) paintPath() {
	for _, k := range s.backtrack() {
		s.opts.OnCellStateChange(s.codec.Unpack(k), Path)
	}
}

func (s *Search) paintGrid() {
	for r := 0; r < s.height; r++ {
		for c := 0; c < s.width; c++ {
			cell := coord.Cell{Row: r, Col: c}
			if s.grid.IsBlocked(cell) {
				s.opts.OnCellStateChange(cell, Blocked)
			} else {
				s.opts.OnCellStateChange(cell, Unexplored)
			}
		}
	}
}

func (s *Search) inBounds(c coord.Cell) bool {
	return c.Row >= 0 && c.Row < s.height && c.Col >= 0 && c.Col < s.width
}

func (s *Search) heuristic(c coord.Cell) float64 {
	return coord.Euclidean(c, s.codec.Unpack(s.goal))
}

// g and f treat absent entries as +Inf.
func (s *Search) g(k coord.Key) float64 { return score(s.gScore, k) }
func (s *Search) f(k coord.Key) float64 { return score(s.fScore, k) }

func score(m map[coord.Key]float64, k coord.Key) float64 {
	if v, ok := m[k]; ok {
		return v
	}

	return math.Inf(1)
}
