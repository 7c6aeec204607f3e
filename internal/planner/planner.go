package planner

import (
	"time"

	"github.com/pkg/errors"

	"github.com/irfansandyy/kka-warehouse-robot/internal/assign"
	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/csp"
	"github.com/irfansandyy/kka-warehouse-robot/internal/obslog"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
	"github.com/irfansandyy/kka-warehouse-robot/internal/progress"
	"github.com/irfansandyy/kka-warehouse-robot/internal/reachability"
	"github.com/irfansandyy/kka-warehouse-robot/internal/timeline"
)

// PlanResult is the output of PlanAssignments: the chosen assignment plus
// the reachability counts that gated it (spec.md §6 operation 1).
type PlanResult struct {
	Assignment   core.Assignment
	Reachability reachability.Report
	Elapsed      time.Duration
	RequestID    string
}

// PlanAssignments runs the reachability analysis and then the chosen
// assignment strategy, restricted to active robots and assignable tasks
// (spec.md §4.4/§4.5). Robots with no reachable task, and tasks no robot
// can reach, never enter the optimizer.
func PlanAssignments(inst *core.Instance, lib *pathlib.Library, strategy assign.Strategy, reporter progress.Reporter) (*PlanResult, error) {
	if reporter == nil {
		reporter = progress.Noop{}
	}
	logger, requestID := obslog.New()
	defer logger.Sync()
	started := time.Now()

	report := reachability.Analyze(inst.Robots, inst.Tasks, lib)
	reporter.Report(progress.Event{Stage: "reachability", Message: "reachability analysis complete"})
	logger.Infow("reachability analyzed",
		"active", len(report.Active), "inactive", len(report.Inactive),
		"assignable", len(report.Assignable), "unreachable", len(report.Unreachable))

	assignment := make(core.Assignment, len(inst.Robots))
	for _, r := range inst.Robots {
		assignment[r.ID] = nil
	}
	if len(report.Active) > 0 && len(report.Assignable) > 0 {
		partial := strategy.Assign(report.Active, report.Assignable, lib)
		for rid, seq := range partial {
			assignment[rid] = seq
		}
	}
	reporter.Report(progress.Event{Stage: "assignment", Message: "assignment complete: " + strategy.Name()})
	logger.Infow("assignment complete", "strategy", strategy.Name())

	return &PlanResult{
		Assignment:   assignment,
		Reachability: report,
		Elapsed:      time.Since(started),
		RequestID:    requestID,
	}, nil
}

// ComposeAndSchedule builds each robot's base path from its assignment,
// finds a conflict-free per-robot start-delay via the CSP backtracking
// search, and emits scheduled paths, per-robot stats and timelines
// (spec.md §6 operation 2). The robot iteration order of inst.Robots is
// also the CSP search order (spec.md §4.7: "backtracking search in robot
// input order").
func ComposeAndSchedule(inst *core.Instance, assignment core.Assignment, lib *pathlib.Library, maxOffset int, reporter progress.Reporter) (*core.Solution, error) {
	if reporter == nil {
		reporter = progress.Noop{}
	}
	logger, requestID := obslog.New()
	defer logger.Sync()
	logger.Infow("compose-and-schedule started", "robots", len(inst.Robots), "max_offset", maxOffset)

	sol := core.NewSolution()
	sol.Assignment = assignment.Clone()

	robotOrder := make([]core.RobotID, 0, len(inst.Robots))
	basePaths := make(map[core.RobotID]core.Path, len(inst.Robots))
	legNodes := make(map[core.RobotID]int, len(inst.Robots))
	legElapsed := make(map[core.RobotID]time.Duration, len(inst.Robots))

	for _, r := range inst.Robots {
		robotOrder = append(robotOrder, r.ID)
		base, nodes, elapsed, err := composeLegs(lib, r.ID, r.Start, assignment[r.ID])
		if err != nil {
			logger.Warnw("composition failed", "robot", r.ID, "request_id", requestID, "error", err)
			return nil, errors.Wrapf(err, "compose base path for robot %d", r.ID)
		}
		basePaths[r.ID] = base
		legNodes[r.ID] = nodes
		legElapsed[r.ID] = elapsed
	}
	reporter.Report(progress.Event{Stage: "composition", Message: "base paths composed"})

	result := csp.Schedule(basePaths, robotOrder, inst.Forklifts, maxOffset)
	reporter.Report(progress.Event{Stage: "csp", Message: "scheduling complete"})
	logger.Infow("csp scheduled", "ok", result.OK, "nodes_expanded", result.NodesExpanded)
	sol.CSPOK = result.OK
	if !result.OK {
		// Per spec.md §9's design note: when no conflict-free offset
		// assignment exists within max_offset, the caller proceeds with
		// un-delayed base paths rather than failing the whole request.
		logger.Warnw("csp: no conflict-free start-delay assignment found within max_offset; proceeding un-delayed")
	}

	for _, r := range inst.Robots {
		base := basePaths[r.ID]
		delay := 0
		if result.OK {
			delay = result.StartTimes[r.ID]
		}
		scheduled := timeline.ApplyDelay(base, delay)
		sol.BasePaths[r.ID] = base
		sol.ScheduledPaths[r.ID] = scheduled
		sol.Stats[r.ID] = timeline.Stats(base, scheduled, delay, legNodes[r.ID], legElapsed[r.ID])
		sol.Timelines[r.ID] = timeline.BuildTimeline(scheduled, assignment[r.ID])
	}
	reporter.Report(progress.Event{Stage: "done", Message: "compose-and-schedule finished"})

	return sol, nil
}

// ReachabilityProbe exposes the reachability counts of operation 1 as a
// standalone call, for callers that only need the partition and not a full
// assignment (spec.md §6 operation 4).
func ReachabilityProbe(inst *core.Instance, lib *pathlib.Library) reachability.Report {
	return reachability.Analyze(inst.Robots, inst.Tasks, lib)
}
