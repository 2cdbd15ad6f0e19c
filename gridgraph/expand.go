package gridgraph

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/gridsearch/coord"
)

// MinClearance finds the fewest obstacles that would have to be removed to
// join a and b, moving with gg.Conn connectivity. The grid itself is not modified.
// Returns the cell sequence from a to b (both included) and the number of
// blocked cells on it, including blocked endpoints.
//
// Behavior:
//  1. Validate both endpoints are in bounds.
//  2. 0–1 BFS from a:
//     • Moving into an open cell    → cost 0
//     • Moving into a blocked cell  → cost 1
//  3. Stop when b is dequeued.
//  4. Reconstruct path via predecessors.
//
// A cost of 0 means a and b are already connected.
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) MinClearance(a, b coord.Cell) (path []coord.Cell, cost int, err error) {
	if !gg.InBounds(a) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !gg.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(a), gg.index(b)
	dist[src] = gg.stepCost(a)

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vc := uc.Add(d[0], d[1])
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := gg.stepCost(vc)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

func (gg *GridGraph) stepCost(c coord.Cell) int {
	if gg.blocked[c.Row][c.Col] {
		return 1
	}
	return 0
}
