// Package reachability partitions robots into active/inactive and tasks
// into assignable/unreachable before assignment runs, so unreachable pairs
// never enter the optimization strategies. Grounded directly on
// original_source/backend/assignment.py:analyze_reachability (and its
// kka_backend/services/assignments.py twin).
package reachability

import (
	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// Report is the result of a reachability pass.
type Report struct {
	Active       []*core.Robot
	Inactive     []*core.Robot
	Assignable   []*core.Task
	Unreachable  []*core.Task
}

// Analyze probes the path library for every (robot, task) pair. A robot is
// active if at least one task is reachable from it; a task is assignable
// if at least one robot can reach it.
//
// Edge cases (carried verbatim from the original's analyze_reachability):
// no robots => every task is unreachable; no tasks => every robot counts
// as active (reachability is vacuous with nothing to reach) and nothing
// is assignable or unreachable.
func Analyze(robots []*core.Robot, tasks []*core.Task, lib *pathlib.Library) Report {
	if len(robots) == 0 {
		return Report{Unreachable: append([]*core.Task{}, tasks...)}
	}
	if len(tasks) == 0 {
		return Report{Active: append([]*core.Robot{}, robots...)}
	}

	reachable := make(map[core.TaskID]bool, len(tasks))
	var active, inactive []*core.Robot

	for _, r := range robots {
		hasPath := false
		for _, t := range tasks {
			if lib.Cost(r.Start, t.Location) != core.InfCost {
				hasPath = true
				reachable[t.ID] = true
			}
		}
		if hasPath {
			active = append(active, r)
		} else {
			inactive = append(inactive, r)
		}
	}

	var assignable, unreachable []*core.Task
	for _, t := range tasks {
		if reachable[t.ID] {
			assignable = append(assignable, t)
		} else {
			unreachable = append(unreachable, t)
		}
	}

	return Report{Active: active, Inactive: inactive, Assignable: assignable, Unreachable: unreachable}
}
