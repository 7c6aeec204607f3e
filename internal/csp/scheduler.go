package csp

import "github.com/irfansandyy/kka-warehouse-robot/internal/core"

// Result is the outcome of a scheduling search (spec.md §4.7).
type Result struct {
	OK            bool
	StartTimes    map[core.RobotID]int
	NodesExpanded int
}

// Schedule assigns an integer start offset per robot, in [0, maxOffset],
// such that no robot's (possibly delayed) base path conflicts vertex-wise
// or edge-wise (swap) with any moving obstacle or any other robot. Robots
// are processed in the order given by robotOrder (spec.md §4.7: "input
// order").
//
// The search is an explicit-stack backtrack (one frame per robot, each
// frame remembering the next offset to try on resume) rather than Go call
// recursion, per design note §9 and the teacher's own preference for
// explicit search state (astarHeap/cbsHeap) over recursive formulations.
func Schedule(paths map[core.RobotID]core.Path, robotOrder []core.RobotID, forklifts []*core.Forklift, maxOffset int) Result {
	maxLen := 0
	for _, rid := range robotOrder {
		if l := len(paths[rid]); l > maxLen {
			maxLen = l
		}
	}
	horizon := maxOffset + maxLen + HorizonBuffer
	v, e := obstacleSets(forklifts, horizon)

	n := len(robotOrder)
	offsetTry := make([]int, n+1)
	assigned := make(map[core.RobotID]int, n)
	nodesExpanded := 0

	depth := 0
	for depth < n {
		r := robotOrder[depth]
		p := paths[r]

		found := -1
		for s := offsetTry[depth]; s <= maxOffset; s++ {
			nodesExpanded++
			if conflictsWithObstacles(p, s, v, e) {
				continue
			}
			if conflictsWithRobots(p, s, r, paths, assigned) {
				continue
			}
			found = s
			break
		}

		if found < 0 {
			offsetTry[depth] = 0
			if depth == 0 {
				return Result{OK: false, StartTimes: map[core.RobotID]int{}, NodesExpanded: nodesExpanded}
			}
			depth--
			delete(assigned, robotOrder[depth])
			continue
		}

		assigned[r] = found
		offsetTry[depth] = found + 1
		depth++
		if depth < n {
			offsetTry[depth] = 0
		}
	}

	out := make(map[core.RobotID]int, n)
	for r, s := range assigned {
		out[r] = s
	}
	return Result{OK: true, StartTimes: out, NodesExpanded: nodesExpanded}
}

// conflictsWithObstacles checks candidate offset s for robot path p against
// the materialized moving-obstacle vertex set V and edge set E (spec.md
// §4.7 rules 1-2).
func conflictsWithObstacles(p core.Path, s int, v map[vertexKey]bool, e map[edgeKey]bool) bool {
	for k, cell := range p {
		if v[vertexKey{cell, s + k}] {
			return true
		}
	}
	for k := 0; k < len(p)-1; k++ {
		a, b := p[k], p[k+1]
		if e[edgeKey{b, a, s + k}] {
			return true
		}
	}
	return false
}

// conflictsWithRobots checks candidate offset s for robot r's path p
// against every already-assigned robot's (offset, path) for vertex and
// swap conflicts (spec.md §4.7 rules 3-4).
func conflictsWithRobots(p core.Path, s int, r core.RobotID, paths map[core.RobotID]core.Path, assigned map[core.RobotID]int) bool {
	for other, so := range assigned {
		if other == r {
			continue
		}
		po := paths[other]
		for k, cell := range p {
			t := s + k
			for k2, cell2 := range po {
				if so+k2 == t && cell == cell2 {
					return true
				}
			}
		}
		for k := 0; k < len(p)-1; k++ {
			a, b := p[k], p[k+1]
			t := s + k
			for k2 := 0; k2 < len(po)-1; k2++ {
				a2, b2 := po[k2], po[k2+1]
				if so+k2 == t && a == b2 && b == a2 {
					return true
				}
			}
		}
	}
	return false
}
