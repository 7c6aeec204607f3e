// Package planner ties the path library, reachability analyzer, assignment
// strategies, CSP scheduler and timeline builder into operations 1, 2 and 4
// named in spec.md §6; operation 3 (replan) is internal/replan.Replan,
// which callers invoke directly. Grounded on original_source/backend/app.py's
// api_compute_paths / api_replan endpoint bodies, generalized from an HTTP
// handler into a plain Go call each subcommand in cmd/warehouseplanner
// invokes directly.
package planner

import (
	"time"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// NoPathError reports the first unreachable leg encountered while composing
// a robot's base path, matching the original's early
// {"ok": false, "reason": "no_path", "robot":..., "to":...} return.
type NoPathError struct {
	Reason string
	Robot  core.RobotID
	To     core.Cell
}

func (e *NoPathError) Error() string {
	return e.Reason + ": robot " + itoa(int(e.Robot)) + " cannot reach " + e.To.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// composeLegs walks start through tasks in order, joining each leg with
// AppendLeg's join-cell suppression, and fails fast on the first
// unreachable leg (spec.md §4.6). It accumulates planner node counts and
// elapsed search time across every leg for the robot's stats block.
func composeLegs(lib *pathlib.Library, robot core.RobotID, start core.Cell, tasks []core.Cell) (core.Path, int, time.Duration, error) {
	base := core.Path{start}
	totalNodes := 0
	var totalElapsed time.Duration
	cur := start
	for _, to := range tasks {
		entry := lib.Ensure(cur, to)
		totalNodes += entry.Nodes
		totalElapsed += entry.Elapsed
		if entry.Cost == core.InfCost {
			return nil, totalNodes, totalElapsed, &NoPathError{Reason: "no_path", Robot: robot, To: to}
		}
		base = core.AppendLeg(base, entry.Path)
		cur = to
	}
	return base, totalNodes, totalElapsed, nil
}
