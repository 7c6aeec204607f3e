package pathlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
)

func TestLibrary_MemoizesAndIsDeterministic(t *testing.T) {
	g := core.NewGrid([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	lib := New(g, "astar")

	s, goal := core.Cell{Row: 0, Col: 0}, core.Cell{Row: 2, Col: 2}
	first := lib.Ensure(s, goal)
	second := lib.Ensure(s, goal)
	assert.Same(t, first, second, "repeated Ensure calls must return the cached entry")
	assert.Equal(t, 4, first.Cost)
}

func TestLibrary_CostIsInfForUnreachable(t *testing.T) {
	g := core.NewGrid([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	})
	lib := New(g, "astar")
	cost := lib.Cost(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 2, Col: 2})
	assert.Equal(t, core.InfCost, cost)
	assert.Nil(t, lib.Path(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 2, Col: 2}))
}

func TestLibrary_DijkstraSelector(t *testing.T) {
	g := core.NewGrid([][]int{{0, 0, 0}})
	lib := New(g, "dijkstra")
	require.Equal(t, 2, lib.Cost(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 2}))
}
