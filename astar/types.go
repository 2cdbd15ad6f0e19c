// Package astar defines the grid contract, result and state enums,
// sentinel errors and functional options of the step-driven A* search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/coord"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil Grid was passed to Initialize.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrFinished indicates Step was called after the search reached Found or Exhausted.
	ErrFinished = errors.New("astar: search already finished")

	// ErrNoPath indicates Path or Cost was requested before the goal was found.
	ErrNoPath = errors.New("astar: no path available")

	// ErrBadFudge indicates WithFudge received a non-positive value.
	ErrBadFudge = errors.New("astar: fudge must be positive")
)

// Grid is the obstacle model the search runs on.
type Grid interface {
	// Bounds returns the grid dimensions.
	Bounds() (height, width int)
	// IsBlocked reports whether a cell is an obstacle.
	IsBlocked(c coord.Cell) bool
}

// StepResult is the state of a search after a Step.
type StepResult int

const (
	// Continue means more expansions are pending.
	Continue StepResult = iota
	// Found means the goal was popped; Path and Cost are available.
	Found
	// Exhausted means the open set ran empty without reaching the goal.
	Exhausted
)

// Terminal reports whether no further Step is allowed.
func (r StepResult) Terminal() bool { return r != Continue }

func (r StepResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("StepResult(%d)", int(r))
	}
}

// CellState classifies a cell for observers such as renderers.
type CellState int

const (
	// Unexplored is an open cell the search has not touched.
	Unexplored CellState = iota
	// Blocked is an obstacle.
	Blocked
	// Frontier is a newly discovered cell, now in the open set.
	Frontier
	// Visited is a cell moved to the closed set.
	Visited
	// Path is a cell on the reconstructed solution.
	Path
)

func (s CellState) String() string {
	switch s {
	case Unexplored:
		return "unexplored"
	case Blocked:
		return "blocked"
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Options configures a search.
type Options struct {
	// OnCellStateChange is called for every state change, including the
	// initial Unexplored/Blocked classification emitted by Initialize.
	OnCellStateChange func(c coord.Cell, s CellState)

	// OnExpand is called with each cell popped for expansion, goal included.
	OnExpand func(c coord.Cell)

	// Fudge is the row multiplier of the cell codec. Must exceed the grid width.
	Fudge int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns no-op hooks and coord.DefaultFudge.
func DefaultOptions() Options {
	return Options{
		OnCellStateChange: func(coord.Cell, CellState) {},
		OnExpand:          func(coord.Cell) {},
		Fudge:             coord.DefaultFudge,
	}
}

// WithObserver registers the cell state sink. A nil fn is ignored.
func WithObserver(fn func(c coord.Cell, s CellState)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCellStateChange = fn
		}
	}
}

// WithOnExpand registers a callback run for each expanded cell. A nil fn is ignored.
func WithOnExpand(fn func(c coord.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithFudge overrides the codec row multiplier. Initialize returns
// ErrBadFudge for a non-positive value and coord.ErrFudgeTooSmall for a
// value not exceeding the grid width.
func WithFudge(fudge int) Option {
	return func(o *Options) {
		if fudge <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadFudge, fudge)
			return
		}
		o.Fudge = fudge
		o.err = nil
	}
}
