package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

// cellJSON is the wire shape of a core.Cell.
type cellJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c cellJSON) toCell() core.Cell { return core.Cell{Row: c.Row, Col: c.Col} }

type robotJSON struct {
	ID    int      `json:"id"`
	Start cellJSON `json:"start"`
}

type taskJSON struct {
	ID       int      `json:"id"`
	Location cellJSON `json:"location"`
}

type forkliftJSON struct {
	ID     int        `json:"id"`
	Path   []cellJSON `json:"path"`
	Loop   bool       `json:"loop"`
	Period int        `json:"period"`
}

// scenario is the JSON shape read from --scenario for plan/schedule
// subcommands: grid + entities + the algorithm/optimizer selectors of
// spec.md §6.
type scenario struct {
	Grid      [][]int        `json:"grid"`
	Robots    []robotJSON    `json:"robots"`
	Tasks     []taskJSON     `json:"tasks"`
	Forklifts []forkliftJSON `json:"forklifts"`
	Algorithm string         `json:"algorithm"`
	Optimizer string         `json:"optimizer"`
	MaxOffset int            `json:"max_offset"`
}

// replanScenario is the JSON shape read from --scenario for the replan
// subcommand (spec.md §6 operation 3).
type replanScenario struct {
	Grid           [][]int       `json:"grid"`
	Start          cellJSON      `json:"start"`
	TasksRemaining []cellJSON    `json:"tasks_remaining"`
	Forklifts      []forkliftJSON `json:"forklifts"`
	CurrentTime    int           `json:"current_time"`
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario file")
	}
	var s scenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "parse scenario JSON")
	}
	return &s, nil
}

func loadReplanScenario(path string) (*replanScenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scenario file")
	}
	var s replanScenario
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "parse scenario JSON")
	}
	return &s, nil
}

func (s *scenario) toInstance() *core.Instance {
	inst := core.NewInstance(core.NewGrid(s.Grid))
	for _, r := range s.Robots {
		inst.Robots = append(inst.Robots, &core.Robot{ID: core.RobotID(r.ID), Start: r.Start.toCell()})
	}
	for _, t := range s.Tasks {
		inst.Tasks = append(inst.Tasks, &core.Task{ID: core.TaskID(t.ID), Location: t.Location.toCell()})
	}
	for _, f := range s.Forklifts {
		path := make([]core.Cell, len(f.Path))
		for i, c := range f.Path {
			path[i] = c.toCell()
		}
		inst.Forklifts = append(inst.Forklifts, &core.Forklift{ID: f.ID, Path: path, Loop: f.Loop, Period: f.Period})
	}
	return inst
}

func toForklifts(in []forkliftJSON) []*core.Forklift {
	out := make([]*core.Forklift, 0, len(in))
	for _, f := range in {
		path := make([]core.Cell, len(f.Path))
		for i, c := range f.Path {
			path[i] = c.toCell()
		}
		out = append(out, &core.Forklift{ID: f.ID, Path: path, Loop: f.Loop, Period: f.Period})
	}
	return out
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
