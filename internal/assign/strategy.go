// Package assign implements the three interchangeable task-to-robot
// assignment strategies of spec.md §4.5: greedy nearest-available, a
// genetic algorithm over a flattened permutation chromosome, and a
// local-search/simulated-annealing refinement. All three minimize the same
// objective: summed path cost over each robot's ordered task list.
//
// The Strategy interface mirrors the teacher's algo.Solver shape
// (Solve/Name in the reference pack's internal/algo/solver.go),
// generalized from whole-MAPF-solution solvers to assignment-only
// strategies.
package assign

import (
	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// Strategy assigns tasks to robots, minimizing summed path cost.
type Strategy interface {
	Assign(robots []*core.Robot, tasks []*core.Task, lib *pathlib.Library) core.Assignment
	Name() string
}

// score evaluates the total path cost of a per-robot task decoding,
// walking each robot from its start through its ordered task list.
func score(robots []*core.Robot, parts [][]core.Cell, lib *pathlib.Library) int {
	total := 0
	for i, r := range robots {
		cur := r.Start
		for _, t := range parts[i] {
			c := lib.Cost(cur, t)
			if c == core.InfCost {
				return core.InfCost
			}
			total += c
			cur = t
		}
	}
	return total
}

// splitChromosome decodes a flattened task permutation into per-robot
// contiguous blocks: ceil(N/R) cells for the first N mod R robots,
// floor(N/R) for the rest (spec.md §4.5.2).
func splitChromosome(chrom []core.Cell, numRobots int) [][]core.Cell {
	n := len(chrom)
	sizes := make([]int, numRobots)
	for i := range sizes {
		sizes[i] = n / numRobots
	}
	for i := 0; i < n%numRobots; i++ {
		sizes[i]++
	}
	parts := make([][]core.Cell, numRobots)
	idx := 0
	for i, s := range sizes {
		parts[i] = chrom[idx : idx+s]
		idx += s
	}
	return parts
}

func partsToAssignment(robots []*core.Robot, parts [][]core.Cell) core.Assignment {
	out := make(core.Assignment, len(robots))
	for i, r := range robots {
		cp := make([]core.Cell, len(parts[i]))
		copy(cp, parts[i])
		out[r.ID] = cp
	}
	return out
}

// flatten concatenates an assignment's per-robot lists in robot order.
func flatten(robots []*core.Robot, a core.Assignment) []core.Cell {
	var out []core.Cell
	for _, r := range robots {
		out = append(out, a[r.ID]...)
	}
	return out
}
