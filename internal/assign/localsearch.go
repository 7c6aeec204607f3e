package assign

import (
	"math/rand"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// Local-search defaults (spec.md §4.5.3).
const (
	LocalSearchDefaultIterations = 2000
	LocalSearchAnnealProb        = 0.05
	LocalSearchReverseProb       = 0.25
)

// LocalSearch starts from the greedy flattened order and perturbs it,
// accepting strictly-better candidates or, with a small fixed probability,
// worse ones (a simulated-annealing-style escape). Grounded directly on
// original_source/backend/assignment.py:local_search_assign.
type LocalSearch struct {
	Iterations int
	Rand       *rand.Rand
}

func (l LocalSearch) Name() string { return "local_search" }

func (l LocalSearch) withDefaults() LocalSearch {
	if l.Iterations <= 0 {
		l.Iterations = LocalSearchDefaultIterations
	}
	if l.Rand == nil {
		l.Rand = rand.New(rand.NewSource(1))
	}
	return l
}

func (l LocalSearch) Assign(robots []*core.Robot, tasks []*core.Task, lib *pathlib.Library) core.Assignment {
	l = l.withDefaults()
	numRobots := len(robots)
	assigned := Greedy{}.Assign(robots, tasks, lib)
	flat := flatten(robots, assigned)
	if len(flat) == 0 {
		return assigned
	}

	current := append([]core.Cell{}, flat...)
	currentScore := score(robots, splitChromosome(current, numRobots), lib)
	best := append([]core.Cell{}, current...)
	bestScore := currentScore

	for i := 0; i < l.Iterations; i++ {
		candidate := append([]core.Cell{}, current...)
		if len(candidate) >= 2 {
			i, j := l.Rand.Intn(len(candidate)), l.Rand.Intn(len(candidate))
			for j == i {
				j = l.Rand.Intn(len(candidate))
			}
			candidate[i], candidate[j] = candidate[j], candidate[i]
		}
		if l.Rand.Float64() < LocalSearchReverseProb && len(candidate) >= 3 {
			a, b := l.Rand.Intn(len(candidate)), l.Rand.Intn(len(candidate))
			if a > b {
				a, b = b, a
			}
			reverseSegment(candidate[a:b])
		}

		val := score(robots, splitChromosome(candidate, numRobots), lib)
		if val < currentScore || l.Rand.Float64() < LocalSearchAnnealProb {
			current = candidate
			currentScore = val
			if val < bestScore {
				best = append([]core.Cell{}, candidate...)
				bestScore = val
			}
		}
	}

	parts := splitChromosome(best, numRobots)
	return partsToAssignment(robots, parts)
}

func reverseSegment(seg []core.Cell) {
	for i, j := 0, len(seg)-1; i < j; i, j = i+1, j-1 {
		seg[i], seg[j] = seg[j], seg[i]
	}
}
