// Package pathfind implements A* and uniform-cost (Dijkstra) search over
// 4-connected grids, with an optional time-indexed dynamic obstacle map.
// The open-set heap shape is grounded on the teacher's astarHeap
// (internal/algo/astar.go in the reference pack); the dynamic-obstacle
// modes and the exact loop structure are grounded on
// original_source/backend/pathfinding.py:astar.
package pathfind

import (
	"container/heap"
	"time"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/geometry"
)

// Heuristic estimates remaining cost from a cell to the goal. Manhattan
// distance is used for A*, the zero heuristic for Dijkstra.
type Heuristic func(from, goal core.Cell) int

// Zero is the zero heuristic: uniform-cost / Dijkstra search.
func Zero(core.Cell, core.Cell) int { return 0 }

// Result is what one search call returns.
type Result struct {
	Path    core.Path
	Nodes   int
	Elapsed time.Duration
}

// node is one A* open/closed-set entry.
type node struct {
	cell  core.Cell
	g     int
	f     int
	index int // heap index
}

type openHeap []*node

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	if h[i].g != h[j].g {
		return h[i].g < h[j].g
	}
	// Deterministic tie-break on cell ordering (row-major) so equal-cost
	// searches over equal inputs always return the same path.
	a, b := h[i].cell, h[j].cell
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *openHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// DynamicObstacles is a time_step -> set of blocked cells mapping. Moving
// into cell n at step g+1 is forbidden when n is in blocked[g+1].
type DynamicObstacles map[int]map[core.Cell]bool

// Search runs A* (or Dijkstra, with heuristic = Zero) from start to goal.
// static is an optional set of cells treated as permanently obstructed for
// this search (in addition to grid walls); dynamic is an optional
// time-indexed obstacle map. Only one of static/dynamic need be non-nil;
// when both are nil the search is plain static-grid A*/Dijkstra.
func Search(grid *core.Grid, start, goal core.Cell, heuristic Heuristic, static map[core.Cell]bool, dynamic DynamicObstacles) Result {
	t0 := time.Now()

	open := &openHeap{}
	heap.Init(open)
	gscore := map[core.Cell]int{start: 0}
	came := map[core.Cell]core.Cell{}
	closed := map[core.Cell]bool{}
	nodesExpanded := 0

	heap.Push(open, &node{cell: start, g: 0, f: heuristic(start, goal)})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true
		nodesExpanded++

		if cur.cell == goal {
			return Result{Path: reconstruct(came, start, goal), Nodes: nodesExpanded, Elapsed: time.Since(t0)}
		}

		for _, nb := range geometry.Neighbors4(grid, cur.cell) {
			if static != nil && static[nb] {
				continue
			}
			nextStep := cur.g + 1
			if dynamic != nil {
				if blocked := dynamic[nextStep]; blocked != nil && blocked[nb] {
					continue
				}
			}
			tentative := cur.g + 1
			if best, ok := gscore[nb]; !ok || tentative < best {
				gscore[nb] = tentative
				came[nb] = cur.cell
				heap.Push(open, &node{cell: nb, g: tentative, f: tentative + heuristic(nb, goal)})
			}
		}
	}

	return Result{Path: nil, Nodes: nodesExpanded, Elapsed: time.Since(t0)}
}

// AStar runs A* with the Manhattan heuristic.
func AStar(grid *core.Grid, start, goal core.Cell, static map[core.Cell]bool, dynamic DynamicObstacles) Result {
	return Search(grid, start, goal, geometry.Manhattan, static, dynamic)
}

// Dijkstra runs uniform-cost search (zero heuristic).
func Dijkstra(grid *core.Grid, start, goal core.Cell, static map[core.Cell]bool, dynamic DynamicObstacles) Result {
	return Search(grid, start, goal, Zero, static, dynamic)
}

func reconstruct(came map[core.Cell]core.Cell, start, goal core.Cell) core.Path {
	path := core.Path{goal}
	cur := goal
	for cur != start {
		prev, ok := came[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
