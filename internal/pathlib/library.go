// Package pathlib memoizes path-engine results per (start, goal) pair
// within one planning call. Grounded directly on
// original_source/backend/pathfinding.py:PathLibrary (ensure/cost/path),
// generalized from a module-level cache keyed by Python tuples to a
// single-reader single-writer Go map keyed by core.Cell pairs.
package pathlib

import (
	"time"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathfind"
)

// Entry is one cached (start, goal) result.
type Entry struct {
	Path    core.Path
	Cost    int // core.InfCost when no path exists
	Nodes   int
	Elapsed time.Duration
}

type key struct {
	start, goal core.Cell
}

// Library memoizes shortest-path results for one planning request. It is a
// single-reader single-writer cache: its lifetime is exactly one call.
type Library struct {
	grid    *core.Grid
	astar   bool // true => A*, false => Dijkstra
	cache   map[key]*Entry
}

// New creates a path library for the given grid and algorithm selector
// ("astar", default, or anything else => Dijkstra, per spec.md §6).
func New(grid *core.Grid, alg string) *Library {
	return &Library{
		grid:  grid,
		astar: alg == "astar" || alg == "",
		cache: make(map[key]*Entry),
	}
}

// Ensure returns the cached entry for (start, goal), computing and caching
// it on first use. Two calls with equal keys return equal results because
// the underlying search is deterministic for equal inputs (pathfind's heap
// tie-break).
func (l *Library) Ensure(start, goal core.Cell) *Entry {
	k := key{start, goal}
	if e, ok := l.cache[k]; ok {
		return e
	}
	var res pathfind.Result
	if l.astar {
		res = pathfind.AStar(l.grid, start, goal, nil, nil)
	} else {
		res = pathfind.Dijkstra(l.grid, start, goal, nil, nil)
	}
	e := &Entry{Nodes: res.Nodes, Elapsed: res.Elapsed}
	if len(res.Path) == 0 {
		e.Path = nil
		e.Cost = core.InfCost
	} else {
		e.Path = res.Path
		e.Cost = res.Path.Cost()
	}
	l.cache[k] = e
	return e
}

// Cost returns len(path)-1, or core.InfCost when start cannot reach goal.
func (l *Library) Cost(start, goal core.Cell) int {
	return l.Ensure(start, goal).Cost
}

// Path returns the cached path for (start, goal), or nil if unreachable.
func (l *Library) Path(start, goal core.Cell) core.Path {
	return l.Ensure(start, goal).Path
}
