// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/coord"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// TestConnectedComponents_Simple4 tests ConnectedComponents on a 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid ('.' open, '#' blocked):
//
//	#..#
//	..##
//	##..
//
// Expected: 2 components of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.Parse(gridgraph.Conn4,
		"#..#",
		"..##",
		"##..",
	)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
}

// TestConnectedComponents_Diagonal8 checks that corner-touching cells join under Conn8
// but stay apart under Conn4.
//
// Grid:
//
//	.###.
//	#.#.#
//	##.##
//	#.#.#
//	.###.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	rows := []string{
		".###.",
		"#.#.#",
		"##.##",
		"#.#.#",
		".###.",
	}
	g8, err := gridgraph.Parse(gridgraph.Conn8, rows...)
	require.NoError(t, err)
	comps := g8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	g4, err := gridgraph.Parse(gridgraph.Conn4, rows...)
	require.NoError(t, err)
	assert.Len(t, g4.ConnectedComponents(), 9)
}

// TestConnectedComponents_AllBlocked yields no components.
func TestConnectedComponents_AllBlocked(t *testing.T) {
	gg, err := gridgraph.Parse(gridgraph.Conn8, "##", "##")
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())
}

// TestConnected covers reachable, walled-off and blocked endpoints.
func TestConnected(t *testing.T) {
	gg, err := gridgraph.Parse(gridgraph.Conn8,
		"..#..",
		"..#..",
		"..#..",
	)
	require.NoError(t, err)
	assert.True(t, gg.Connected(coord.Cell{Row: 0, Col: 0}, coord.Cell{Row: 2, Col: 1}))
	assert.False(t, gg.Connected(coord.Cell{Row: 0, Col: 0}, coord.Cell{Row: 2, Col: 4}))
	assert.False(t, gg.Connected(coord.Cell{Row: 0, Col: 2}, coord.Cell{Row: 0, Col: 0}))
	assert.False(t, gg.Connected(coord.Cell{Row: 0, Col: 0}, coord.Cell{Row: 9, Col: 9}))
	assert.True(t, gg.Connected(coord.Cell{Row: 1, Col: 1}, coord.Cell{Row: 1, Col: 1}))
}
