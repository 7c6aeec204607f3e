// Package mapgen holds only the contract boundary with procedural map
// generation, which spec.md §1 places out of scope ("beyond the contract
// that it produces a grid and valid entity positions"). No generation
// algorithm lives here — the density search / shelf-column carving that
// produces a GeneratedMap is an external collaborator; this package just
// validates that collaborator's output before it is handed to planning.
//
// Grounded on original_source/backend/grid.py: ensure_perimeter_clear and
// validate_positions define exactly the invariants checked here.
package mapgen

import (
	"fmt"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

// GeneratedMap is the output contract an external map generator must
// satisfy before a scenario enters planning.
type GeneratedMap struct {
	Grid      *core.Grid
	Robots    []*core.Robot
	Tasks     []*core.Task
	Forklifts []*core.Forklift
}

// Validate checks the spec.md §3 invariants: perimeter passable, robot
// starts passable and pairwise distinct, tasks passable and disjoint from
// robot starts, robot count within MaxRobots, forklift paths non-trivial.
func (m GeneratedMap) Validate() error {
	if err := m.validatePerimeter(); err != nil {
		return err
	}
	if len(m.Robots) > core.MaxRobots {
		return fmt.Errorf("mapgen: %d robots exceeds max of %d", len(m.Robots), core.MaxRobots)
	}

	starts := make(map[core.Cell]bool, len(m.Robots))
	for _, r := range m.Robots {
		if !m.Grid.Passable(r.Start) {
			return fmt.Errorf("mapgen: robot %d start %v is not passable", r.ID, r.Start)
		}
		if starts[r.Start] {
			return fmt.Errorf("mapgen: duplicate robot start %v", r.Start)
		}
		starts[r.Start] = true
	}

	for _, t := range m.Tasks {
		if !m.Grid.Passable(t.Location) {
			return fmt.Errorf("mapgen: task %d at %v is not passable", t.ID, t.Location)
		}
		if starts[t.Location] {
			return fmt.Errorf("mapgen: task %d at %v coincides with a robot start", t.ID, t.Location)
		}
	}

	for _, f := range m.Forklifts {
		if len(f.Path) < 2 {
			return fmt.Errorf("mapgen: forklift %d path has fewer than 2 cells", f.ID)
		}
		for _, c := range f.Path {
			if !m.Grid.Passable(c) {
				return fmt.Errorf("mapgen: forklift %d visits impassable cell %v", f.ID, c)
			}
		}
	}

	return nil
}

func (m GeneratedMap) validatePerimeter() error {
	g := m.Grid
	h, w := g.Height(), g.Width()
	if h == 0 || w == 0 {
		return fmt.Errorf("mapgen: empty grid")
	}
	for c := 0; c < w; c++ {
		if !g.Passable(core.Cell{Row: 0, Col: c}) || !g.Passable(core.Cell{Row: h - 1, Col: c}) {
			return fmt.Errorf("mapgen: perimeter wall at column %d", c)
		}
	}
	for r := 0; r < h; r++ {
		if !g.Passable(core.Cell{Row: r, Col: 0}) || !g.Passable(core.Cell{Row: r, Col: w - 1}) {
			return fmt.Errorf("mapgen: perimeter wall at row %d", r)
		}
	}
	return nil
}

// Fallback returns a trivially passable 3x3 grid, used when a generated
// map's free-cell set turns out empty (spec.md §7: "Empty free-cell set in
// a generated map -> return a trivially passable fallback; never crash").
func Fallback() *core.Grid {
	cells := make([][]int, 3)
	for i := range cells {
		cells[i] = make([]int, 3)
	}
	return core.NewGrid(cells)
}
