// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/gridsearch.
package gridgraph

import "math/rand"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultScale is the obstacle scale of the radial-bias generator.
// A cell is blocked when Scale·U(0,1) < t·(1−t), so larger scales give fewer obstacles.
const DefaultScale = 0.4

// Textual grid characters used by Parse and String.
const (
	OpenChar    = '.'
	BlockedChar = '#'
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity for component analysis.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8, matching the
// 8-connected movement of the grid search.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// GenOptions configures the random obstacle generator.
type GenOptions struct {
	// Scale controls obstacle sparsity; must be > 0.
	Scale float64
	// Rand is the random source. Nil means a time-seeded source.
	Rand *rand.Rand
	// Conn is copied into the generated grid.
	Conn Connectivity

	// internal error recorded during option parsing
	err error
}

// GenOption configures Generate via functional arguments.
type GenOption func(*GenOptions)

// DefaultGenOptions returns Scale=DefaultScale, Conn8 and no fixed random source.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Scale: DefaultScale,
		Conn:  Conn8,
	}
}

// WithScale sets the obstacle scale. Non-positive values surface as ErrBadScale from Generate
// unless a later WithScale supplies a valid one.
func WithScale(scale float64) GenOption {
	return func(o *GenOptions) {
		if scale <= 0 {
			o.err = ErrBadScale
			return
		}
		o.Scale = scale
		o.err = nil
	}
}

// WithSeed makes generation deterministic.
func WithSeed(seed int64) GenOption {
	return func(o *GenOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) GenOption {
	return func(o *GenOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithConnectivity sets the connectivity of the generated grid.
func WithConnectivity(conn Connectivity) GenOption {
	return func(o *GenOptions) {
		o.Conn = conn
	}
}

// GridGraph treats a 2D obstacle matrix as an implicit graph. It is immutable once built.
// Width and Height define dimensions; blocked[row][col] marks obstacles.
// neighborOffsets is precomputed from Conn as (dRow, dCol) pairs.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	blocked         [][]bool
	neighborOffsets [][2]int
}
