// Package geometry provides the 4-neighbour grid primitives used by the
// path engine, greedy assignment and forklift-loop/map-generation helpers:
// bounds-clipped neighbour iteration, Manhattan/Euclidean distance and a
// BFS reachability pass. Grounded on the teacher's Workspace.Neighbors /
// CanOccupy shape (internal/core/workspace.go in the reference pack),
// specialized from an arbitrary adjacency list to a dense row-major grid.
package geometry

import (
	"math"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

// deltas are the 4-neighbour offsets: down, up, right, left.
var deltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors4 returns the passable 4-adjacent neighbours of c within grid's
// bounds, walls excluded.
func Neighbors4(grid *core.Grid, c core.Cell) []core.Cell {
	out := make([]core.Cell, 0, 4)
	for _, d := range deltas {
		nb := c.Add(d[0], d[1])
		if grid.Passable(nb) {
			out = append(out, nb)
		}
	}
	return out
}

// Manhattan is the L1 distance between two cells, used as the A* heuristic.
func Manhattan(a, b core.Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

// Euclidean is the L2 distance between two cells, used as the primary key
// of greedy assignment (path cost breaks ties).
func Euclidean(a, b core.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Hypot(dr, dc)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FreeCells enumerates every passable cell in the grid, row-major order.
func FreeCells(grid *core.Grid) []core.Cell {
	var out []core.Cell
	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			cell := core.Cell{Row: r, Col: c}
			if grid.Passable(cell) {
				out = append(out, cell)
			}
		}
	}
	return out
}

// ReachableComponent returns the connected passable component containing
// seed, via breadth-first search over 4-neighbour moves.
func ReachableComponent(grid *core.Grid, seed core.Cell) map[core.Cell]bool {
	visited := map[core.Cell]bool{seed: true}
	queue := []core.Cell{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range Neighbors4(grid, cur) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return visited
}

// ShortestPath performs a breadth-first search from s to g treating cells
// in blocked as impassable except when also present in allow. Used only to
// close forklift loops and during map generation — never on the main A*
// path (spec.md §4.1).
func ShortestPath(grid *core.Grid, s, g core.Cell, blocked, allow map[core.Cell]bool) core.Path {
	if s == g {
		return core.Path{s}
	}
	visited := map[core.Cell]bool{s: true}
	parent := map[core.Cell]core.Cell{}
	queue := []core.Cell{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range Neighbors4(grid, cur) {
			if blocked[nb] && !allow[nb] {
				continue
			}
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			if nb == g {
				return reconstruct(parent, s, g)
			}
			queue = append(queue, nb)
		}
	}
	return nil
}

func reconstruct(parent map[core.Cell]core.Cell, s, g core.Cell) core.Path {
	var rev core.Path
	cur := g
	for cur != s {
		rev = append(rev, cur)
		cur = parent[cur]
	}
	rev = append(rev, s)
	out := make(core.Path, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}
