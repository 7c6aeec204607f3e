// Package csp implements the backtracking temporal scheduler of spec.md
// §4.7: it assigns each robot an integer start-delay so that vertex and
// edge (swap) conflicts with moving obstacles and other robots vanish.
//
// Conflict detection is grounded on the teacher's Conflict/Constraint
// shape (internal/algo/solver.go's FindFirstConflict in the reference
// pack), generalized from continuous-time robot-vs-robot comparison to the
// grid's integer-time vertex/edge occupancy sets; the search itself is
// grounded directly on original_source/backend/scheduling.py:csp_schedule.
package csp

import "github.com/irfansandyy/kka-warehouse-robot/internal/core"

// HorizonBuffer is the constant slack added to max_offset + longest base
// path when materializing the conflict sets (spec.md §4.7).
const HorizonBuffer = 10

// DefaultMaxOffsetSchedule is the default max_offset for compose-and-
// schedule requests (spec.md §6).
const DefaultMaxOffsetSchedule = 40

// DefaultMaxOffsetGeneral is the default max_offset for standalone CSP
// calls not going through compose-and-schedule (spec.md §6).
const DefaultMaxOffsetGeneral = 20

func timelineIndex(length, t int, loop bool) int {
	if length <= 0 {
		return 0
	}
	if loop {
		m := t % length
		if m < 0 {
			m += length
		}
		return m
	}
	if t < 0 {
		return 0
	}
	if t >= length {
		return length - 1
	}
	return t
}

type vertexKey struct {
	cell core.Cell
	t    int
}

type edgeKey struct {
	from, to core.Cell
	t        int
}

// obstacleSets materializes the vertex occupancy set V and edge traversal
// set E over [0, horizon] for the given moving obstacles (spec.md §4.7).
func obstacleSets(forklifts []*core.Forklift, horizon int) (map[vertexKey]bool, map[edgeKey]bool) {
	v := make(map[vertexKey]bool)
	e := make(map[edgeKey]bool)
	for _, f := range forklifts {
		L := len(f.Path)
		if L == 0 {
			continue
		}
		for t := 0; t <= horizon; t++ {
			a := f.Path[timelineIndex(L, t, f.Loop)]
			v[vertexKey{a, t}] = true
			if L > 1 {
				b := f.Path[timelineIndex(L, t+1, f.Loop)]
				if a != b {
					e[edgeKey{a, b, t}] = true
				}
			}
		}
	}
	return v, e
}
