package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

func validMap() GeneratedMap {
	return GeneratedMap{
		Grid: core.NewGrid([][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}),
		Robots:    []*core.Robot{{ID: 0, Start: core.Cell{Row: 0, Col: 0}}},
		Tasks:     []*core.Task{{ID: 0, Location: core.Cell{Row: 2, Col: 2}}},
		Forklifts: []*core.Forklift{{ID: 0, Path: []core.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, Loop: true}},
	}
}

func TestValidate_AcceptsWellFormedMap(t *testing.T) {
	require.NoError(t, validMap().Validate())
}

func TestValidate_RejectsPerimeterWall(t *testing.T) {
	m := validMap()
	m.Grid = core.NewGrid([][]int{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	assert.Error(t, m.Validate())
}

func TestValidate_RejectsTooManyRobots(t *testing.T) {
	m := validMap()
	for i := 1; i <= core.MaxRobots; i++ {
		m.Robots = append(m.Robots, &core.Robot{ID: core.RobotID(i), Start: core.Cell{Row: 1, Col: 2}})
	}
	assert.Error(t, m.Validate())
}

func TestValidate_RejectsTaskOnRobotStart(t *testing.T) {
	m := validMap()
	m.Tasks = []*core.Task{{ID: 0, Location: core.Cell{Row: 0, Col: 0}}}
	assert.Error(t, m.Validate())
}

func TestValidate_RejectsForkliftOnWall(t *testing.T) {
	m := validMap()
	m.Grid = core.NewGrid([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	m.Forklifts = []*core.Forklift{{ID: 0, Path: []core.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, Loop: true}}
	assert.Error(t, m.Validate())
}

func TestFallback_IsTriviallyPassable(t *testing.T) {
	g := Fallback()
	require.Equal(t, 3, g.Height())
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			assert.True(t, g.Passable(core.Cell{Row: r, Col: c}))
		}
	}
}
