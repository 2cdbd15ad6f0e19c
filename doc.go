// Package gridsearch is a step-driven A* playground for 2D grids: generate an
// obstacle field, search it one expansion at a time, and watch every cell
// change state as the search runs.
//
// What is inside?
//
//	pqset/          generic binary-heap priority queue with O(1) membership and decrease-key
//	coord/          grid cells, scalar key packing (row·Fudge + col) and Euclidean distance
//	gridgraph/      immutable obstacle grids, radial-bias generator, components and clearance
//	astar/          the A* engine: Initialize, Step, Run, Path plus a cell-state observer
//	render/         tcell painter that turns observer events into colored cells
//	cmd/gridsearch  terminal demo: generate → search → pause → regenerate
//
// Quick ASCII example (S start, G goal, # blocked, * path):
//
//	S . # #
//	* # # .
//	. * * G
//
// The engine needs nothing but a Grid (Bounds + IsBlocked), so any occupancy
// source can be searched:
//
//	gg, _ := gridgraph.Generate(50, 50, gridgraph.WithSeed(1))
//	res, err := astar.FindPath(ctx, gg, gg.Start(), gg.Goal())
//
// Step-driven callers keep the *astar.Search and call Step once per frame.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
