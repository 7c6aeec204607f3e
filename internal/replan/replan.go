// Package replan implements the receding-horizon single-robot replanning
// entry point of spec.md §4.9, independent of the multi-robot CSP pipeline
// in internal/planner: it consumes a current cell, a remaining task list,
// and a moving-obstacle schedule known up to some horizon, and returns a
// time-aware path for the robot alone. Grounded directly on
// original_source/backend/app.py:api_replan.
package replan

import (
	"math/rand"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/geometry"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathfind"
	"github.com/irfansandyy/kka-warehouse-robot/internal/timeline"
)

// stepMeanS and stepStdS parameterize the per-step duration jitter used to
// produce EstimatedDurationS: a unit-time step with +/-15% stochastic
// variance, loosely modelling forklift acceleration/handling noise.
const stepMeanS = 1.0
const stepStdS = 0.15

// NoPathError reports the task remaining-list entry that could not be
// reached, matching the original's {"ok": false, "reason":
// "no_path_replan", "task":...} return.
type NoPathError struct {
	Task core.Cell
}

func (e *NoPathError) Error() string {
	return "no_path_replan: " + e.Task.String()
}

// Result is the outcome of a successful Replan call.
type Result struct {
	Path          core.Path
	NodesExpanded int
	// EstimatedDurationS is a stochastic execution-duration estimate
	// sampled via timeline.EstimateDurationS, for callers that want a
	// jittered figure alongside the deterministic unit-time path cost.
	EstimatedDurationS float64
}

const minHorizon = 40
const horizonPerTask = 12

// Horizon returns max(40, 12*len(tasksRemaining)) (spec.md §4.9).
func Horizon(tasksRemaining int) int {
	h := horizonPerTask * tasksRemaining
	if h < minHorizon {
		return minHorizon
	}
	return h
}

// Replan builds a dynamic-obstacle timeline over Horizon(len(tasksRemaining))
// steps starting at currentTime, then runs time-indexed A* leg by leg
// through tasksRemaining in order, concatenating legs with the same
// join-cell suppression rule as base-path composition (spec.md §4.6). Each
// leg's obstacle timeline is re-based so that A* step 0 corresponds to the
// leg's absolute start time; steps whose absolute time would be negative
// carry no obstacles.
// Fails fast on the first unreachable leg.
func Replan(grid *core.Grid, start core.Cell, tasksRemaining []core.Cell, forklifts []*core.Forklift, currentTime int) (*Result, error) {
	horizon := Horizon(len(tasksRemaining))

	path := core.Path{start}
	nodes := 0
	cur := start
	legStart := currentTime

	for _, to := range tasksRemaining {
		dynamic := rebaseObstacles(forklifts, legStart, horizon)
		res := pathfind.Search(grid, cur, to, geometry.Manhattan, nil, dynamic)
		nodes += res.Nodes
		if len(res.Path) == 0 {
			return nil, &NoPathError{Task: to}
		}
		path = core.AppendLeg(path, res.Path)
		legStart += res.Path.Cost()
		cur = to
	}

	rng := rand.New(rand.NewSource(int64(currentTime) + 1))
	estimated := timeline.EstimateDurationS(path.Cost(), stepMeanS, stepStdS, rng.NormFloat64)

	return &Result{Path: path, NodesExpanded: nodes, EstimatedDurationS: estimated}, nil
}

// rebaseObstacles materializes a pathfind.DynamicObstacles map over
// [0, horizon] where index k holds every forklift's absolute position at
// time legStart+k, so that A* step 0 aligns with the leg's absolute start
// time (spec.md §4.9).
func rebaseObstacles(forklifts []*core.Forklift, legStart, horizon int) pathfind.DynamicObstacles {
	if len(forklifts) == 0 {
		return nil
	}
	out := make(pathfind.DynamicObstacles, horizon+1)
	for k := 0; k <= horizon; k++ {
		absolute := legStart + k
		if absolute < 0 {
			continue
		}
		blocked := make(map[core.Cell]bool, len(forklifts))
		for _, f := range forklifts {
			blocked[f.PositionAt(absolute)] = true
		}
		out[k] = blocked
	}
	return out
}
