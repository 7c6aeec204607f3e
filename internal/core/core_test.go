package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_CostAndClone(t *testing.T) {
	p := Path{{0, 0}, {0, 1}, {0, 2}}
	assert.Equal(t, 2, p.Cost())
	assert.Equal(t, 0, Path{}.Cost())

	clone := p.Clone()
	clone[0] = Cell{Row: 9, Col: 9}
	assert.NotEqual(t, p[0], clone[0])
}

func TestAppendLeg_SuppressesJoinCell(t *testing.T) {
	base := Path{{0, 0}, {0, 1}, {0, 2}}
	leg := Path{{0, 2}, {0, 3}}
	assert.Equal(t, Path{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, AppendLeg(base, leg))
}

func TestAppendLeg_NoSuppressionWhenCellsDiffer(t *testing.T) {
	base := Path{{0, 0}, {0, 1}}
	leg := Path{{1, 1}, {1, 2}}
	assert.Equal(t, Path{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, AppendLeg(base, leg))
}

func TestAppendLeg_EmptyLegLeavesBaseUnchanged(t *testing.T) {
	base := Path{{0, 0}, {0, 1}}
	assert.Equal(t, base, AppendLeg(base, nil))
}

func TestForklift_PositionAt_LoopsAndClamps(t *testing.T) {
	loop := &Forklift{Path: []Cell{{0, 0}, {0, 1}, {0, 2}}, Loop: true}
	assert.Equal(t, Cell{Row: 0, Col: 0}, loop.PositionAt(3))
	assert.Equal(t, Cell{Row: 0, Col: 1}, loop.PositionAt(4))

	clamped := &Forklift{Path: []Cell{{0, 0}, {0, 1}, {0, 2}}, Loop: false}
	assert.Equal(t, Cell{Row: 0, Col: 2}, clamped.PositionAt(10))
	assert.Equal(t, Cell{Row: 0, Col: 0}, clamped.PositionAt(0))
}

func TestGrid_PassableRespectsBoundsAndWalls(t *testing.T) {
	g := NewGrid([][]int{{0, 1}, {0, 0}})
	assert.True(t, g.Passable(Cell{Row: 0, Col: 0}))
	assert.False(t, g.Passable(Cell{Row: 0, Col: 1}))
	assert.False(t, g.Passable(Cell{Row: -1, Col: 0}))
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 2, g.Width())
}

func TestInstance_LookupByID(t *testing.T) {
	inst := NewInstance(NewGrid([][]int{{0}}))
	inst.Robots = []*Robot{{ID: 5, Start: Cell{Row: 0, Col: 0}}}
	inst.Tasks = []*Task{{ID: 9, Location: Cell{Row: 0, Col: 0}}}

	assert.Equal(t, RobotID(5), inst.RobotByID(5).ID)
	assert.Nil(t, inst.RobotByID(6))
	assert.Equal(t, TaskID(9), inst.TaskByID(9).ID)
	assert.Nil(t, inst.TaskByID(10))
}

func TestSolution_NewSolutionInitializesMaps(t *testing.T) {
	sol := NewSolution()
	assert.NotNil(t, sol.Assignment)
	assert.NotNil(t, sol.BasePaths)
	assert.NotNil(t, sol.ScheduledPaths)
	assert.NotNil(t, sol.Stats)
	assert.NotNil(t, sol.Timelines)
}

func TestAssignment_CloneIsIndependent(t *testing.T) {
	a := Assignment{1: {{0, 0}}}
	clone := a.Clone()
	clone[1][0] = Cell{Row: 9, Col: 9}
	assert.NotEqual(t, a[1][0], clone[1][0])
}
