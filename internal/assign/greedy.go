package assign

import (
	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/geometry"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// tieTolerance is the numeric tolerance for comparing Euclidean distances,
// matching the original's math.isclose(rel_tol=1e-6, abs_tol=1e-6).
const tieTolerance = 1e-6

// Greedy repeatedly picks the (robot, task) pair minimizing Euclidean
// distance from the robot's current cell to the task, breaking ties on
// path cost, until no finite-cost pair remains. Grounded directly on
// original_source/backend/assignment.py:greedy_assign.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Assign(robots []*core.Robot, tasks []*core.Task, lib *pathlib.Library) core.Assignment {
	out := make(core.Assignment, len(robots))
	pos := make(map[core.RobotID]core.Cell, len(robots))
	for _, r := range robots {
		out[r.ID] = nil
		pos[r.ID] = r.Start
	}

	remaining := make([]*core.Task, len(tasks))
	copy(remaining, tasks)

	for len(remaining) > 0 {
		var bestRobot *core.Robot
		var bestTaskIdx = -1
		bestDist := float64(core.InfCost)
		bestCost := core.InfCost

		for _, r := range robots {
			cur := pos[r.ID]
			for i, t := range remaining {
				cost := lib.Cost(cur, t.Location)
				if cost == core.InfCost {
					continue
				}
				dist := geometry.Euclidean(cur, t.Location)
				better := dist < bestDist-tieTolerance
				tie := isClose(dist, bestDist) && cost < bestCost
				if better || tie {
					bestDist = dist
					bestCost = cost
					bestRobot = r
					bestTaskIdx = i
				}
			}
		}

		if bestRobot == nil || bestTaskIdx < 0 {
			break
		}
		task := remaining[bestTaskIdx]
		out[bestRobot.ID] = append(out[bestRobot.ID], task.Location)
		pos[bestRobot.ID] = task.Location
		remaining = append(remaining[:bestTaskIdx], remaining[bestTaskIdx+1:]...)
	}

	return out
}

// isClose mirrors Python's math.isclose with rel_tol=abs_tol=1e-6.
func isClose(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	abs := a
	if abs < 0 {
		abs = -abs
	}
	absB := b
	if absB < 0 {
		absB = -absB
	}
	bound := tieTolerance * abs
	if bbound := tieTolerance * absB; bbound > bound {
		bound = bbound
	}
	if bound < tieTolerance {
		bound = tieTolerance
	}
	return diff <= bound
}
