// Package timeline builds the scheduled-path wait segments, per-robot
// stats and per-cell timelines of spec.md §4.8. Grounded directly on
// kka_backend/services/paths.py:build_timeline and the per-robot stats
// block assembled in original_source/backend/app.py:api_compute_paths.
package timeline

import (
	"math"
	"time"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

// ApplyDelay prepends delay repetitions of base's first cell, forming the
// scheduled path. An empty base yields an empty scheduled path regardless
// of delay (spec.md §3: "Scheduled path = [base[0]] * delay ++ base").
func ApplyDelay(base core.Path, delay int) core.Path {
	if len(base) == 0 || delay <= 0 {
		return base
	}
	out := make(core.Path, 0, delay+len(base))
	for i := 0; i < delay; i++ {
		out = append(out, base[0])
	}
	out = append(out, base...)
	return out
}

// Stats computes the per-robot bookkeeping of spec.md §4.8.
func Stats(base, scheduled core.Path, delay int, plannerNodes int, plannerTime time.Duration) *core.RobotStats {
	execSteps := scheduled.Cost()
	return &core.RobotStats{
		PathSteps:      base.Cost(),
		WaitSteps:      delay,
		ExecutionSteps: execSteps,
		ExecutionTimeS: float64(execSteps),
		PlannerNodes:   plannerNodes,
		PlannerTimeS:   plannerTime.Seconds(),
	}
}

// BuildTimeline records, for each step of a scheduled path, the cell
// occupied and whether that step reached the next unreached task in the
// robot's ordered list.
func BuildTimeline(path core.Path, tasks []core.Cell) []core.TimelineEntry {
	out := make([]core.TimelineEntry, 0, len(path))
	reached := 0
	for step, cell := range path {
		entry := core.TimelineEntry{Time: step, Cell: cell}
		if reached < len(tasks) && cell == tasks[reached] {
			reached++
			entry.ReachedTask = true
			entry.ReachedOrder = reached
		}
		out = append(out, entry)
	}
	return out
}

// EstimateDurationS samples a jittered execution-duration estimate for a
// path of the given step count, alongside the deterministic unit-time
// figure in Stats.ExecutionTimeS. Per-step duration is modelled as a
// LogNormal(stepMeanS, stepStdS); the whole-path duration is approximated
// as a single LogNormal via the moment-matching used for sums of
// LogNormals, mirroring (in simplified form) the per-path duration
// sampling in the teacher's StochasticECBS. standardNormal is typically
// rand.Rand.NormFloat64.
func EstimateDurationS(steps int, stepMeanS, stepStdS float64, standardNormal func() float64) float64 {
	if steps <= 0 {
		return 0
	}
	n := float64(steps)
	dist := FromMeanStd(stepMeanS*n, stepStdS*math.Sqrt(n))
	return dist.Sample(standardNormal)
}
