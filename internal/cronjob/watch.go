// Package cronjob drives the CLI's watch mode: a recurring replan tick
// against an advancing clock, demonstrating the receding-horizon entry
// point outside a single call (SPEC_FULL.md §2/§5). Grounded on
// robfig/cron/v3, adopted from viamrobotics-rdk's dependency on the same
// scheduler; the teacher has no recurring-job concept of its own.
package cronjob

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/replan"
)

// ReplanWatcher re-runs Replan on a fixed tick against a JSON scenario
// file, advancing the current-time argument by the elapsed tick count on
// each invocation. Per spec.md §5, each tick opens its own fresh call-scoped
// path search state; cron supplies only the timer.
type ReplanWatcher struct {
	scenarioPath string
	logger       *zap.SugaredLogger
	ticks        int
}

// NewReplanWatcher builds a watcher over the scenario at path, logging
// through logger.
func NewReplanWatcher(path string, logger *zap.SugaredLogger) *ReplanWatcher {
	return &ReplanWatcher{scenarioPath: path, logger: logger}
}

// Start schedules a replan tick every `every` and returns a stop function.
// The cron spec is built as "@every <duration>" per robfig/cron/v3's
// syntax (spec.md design notes don't constrain tick cadence; every is the
// CLI's --every flag).
func (w *ReplanWatcher) Start(every time.Duration) (func(), error) {
	c := cron.New()
	spec := "@every " + every.String()
	_, err := c.AddFunc(spec, w.tick)
	if err != nil {
		return nil, errors.Wrap(err, "schedule replan watch tick")
	}
	c.Start()
	return func() { <-c.Stop().Done() }, nil
}

func (w *ReplanWatcher) tick() {
	w.ticks++
	currentTime := w.ticks

	raw, err := os.ReadFile(w.scenarioPath)
	if err != nil {
		w.logger.Errorw("watch tick: read scenario failed", "error", err)
		return
	}
	var s struct {
		Grid           [][]int `json:"grid"`
		Start          cellDTO `json:"start"`
		TasksRemaining []cellDTO `json:"tasks_remaining"`
		Forklifts      []forkliftDTO `json:"forklifts"`
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		w.logger.Errorw("watch tick: parse scenario failed", "error", err)
		return
	}

	grid := core.NewGrid(s.Grid)
	tasks := make([]core.Cell, len(s.TasksRemaining))
	for i, c := range s.TasksRemaining {
		tasks[i] = core.Cell{Row: c.Row, Col: c.Col}
	}
	forklifts := make([]*core.Forklift, 0, len(s.Forklifts))
	for _, f := range s.Forklifts {
		path := make([]core.Cell, len(f.Path))
		for i, c := range f.Path {
			path[i] = core.Cell{Row: c.Row, Col: c.Col}
		}
		forklifts = append(forklifts, &core.Forklift{ID: f.ID, Path: path, Loop: f.Loop, Period: f.Period})
	}

	result, err := replan.Replan(grid, core.Cell{Row: s.Start.Row, Col: s.Start.Col}, tasks, forklifts, currentTime)
	if err != nil {
		w.logger.Warnw("watch tick: replan failed", "current_time", currentTime, "error", err)
		return
	}
	w.logger.Infow("watch tick: replan succeeded", "current_time", currentTime, "path_len", len(result.Path), "nodes_expanded", result.NodesExpanded)
}

type cellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type forkliftDTO struct {
	ID     int       `json:"id"`
	Path   []cellDTO `json:"path"`
	Loop   bool      `json:"loop"`
	Period int       `json:"period"`
}
