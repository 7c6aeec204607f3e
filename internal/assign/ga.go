package assign

import (
	"math/rand"

	"github.com/irfansandyy/kka-warehouse-robot/internal/core"
	"github.com/irfansandyy/kka-warehouse-robot/internal/pathlib"
)

// GA defaults (spec.md §4.5.2). PMut sits at the high end of the spec's
// 0.25-0.3 band; original_source's config.py (GA_DEFAULT_MUTATION_RATE)
// was not present in the retrieved excerpt, see SPEC_FULL.md §4.5.
const (
	GADefaultPopulation  = 40
	GADefaultGenerations = 80
	GADefaultMutation    = 0.3
	GATournamentSize     = 3
)

// GA assigns tasks via a genetic algorithm over a flattened permutation of
// the full task list. Grounded directly on
// original_source/backend/assignment.py:ga_assign.
type GA struct {
	Population int
	Generations int
	PMut       float64
	Rand       *rand.Rand
}

func (g GA) Name() string { return "ga" }

func (g GA) withDefaults() GA {
	if g.Population <= 0 {
		g.Population = GADefaultPopulation
	}
	if g.Generations <= 0 {
		g.Generations = GADefaultGenerations
	}
	if g.PMut <= 0 {
		g.PMut = GADefaultMutation
	}
	if g.Rand == nil {
		g.Rand = rand.New(rand.NewSource(1))
	}
	return g
}

func (g GA) Assign(robots []*core.Robot, tasks []*core.Task, lib *pathlib.Library) core.Assignment {
	g = g.withDefaults()
	numRobots := len(robots)
	if numRobots == 0 {
		return core.Assignment{}
	}
	if len(tasks) == 0 {
		out := make(core.Assignment, numRobots)
		for _, r := range robots {
			out[r.ID] = nil
		}
		return out
	}

	cells := make([]core.Cell, len(tasks))
	for i, t := range tasks {
		cells[i] = t.Location
	}

	greedySeed := Greedy{}.Assign(robots, tasks, lib)
	greedyFlat := flatten(robots, greedySeed)
	if len(greedyFlat) == 0 {
		greedyFlat = append([]core.Cell{}, cells...)
	}

	fitnessCache := map[string]int{}
	fitness := func(chrom []core.Cell) int {
		key := chromKey(chrom)
		if v, ok := fitnessCache[key]; ok {
			return v
		}
		parts := splitChromosome(chrom, numRobots)
		v := score(robots, parts, lib)
		fitnessCache[key] = v
		return v
	}

	randomChrom := func() []core.Cell {
		perm := append([]core.Cell{}, cells...)
		g.Rand.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		return perm
	}

	population := make([][]core.Cell, 0, g.Population)
	population = append(population, greedyFlat)
	for len(population) < g.Population {
		population = append(population, randomChrom())
	}

	bestOf := func(pop [][]core.Cell) []core.Cell {
		best := pop[0]
		bestScore := fitness(best)
		for _, c := range pop[1:] {
			s := fitness(c)
			if s < bestScore {
				best = c
				bestScore = s
			}
		}
		return best
	}

	tournament := func(pop [][]core.Cell) []core.Cell {
		k := GATournamentSize
		if k > len(pop) {
			k = len(pop)
		}
		idxs := g.Rand.Perm(len(pop))[:k]
		best := pop[idxs[0]]
		bestScore := fitness(best)
		for _, idx := range idxs[1:] {
			s := fitness(pop[idx])
			if s < bestScore {
				best = pop[idx]
				bestScore = s
			}
		}
		return best
	}

	for gen := 0; gen < g.Generations; gen++ {
		next := make([][]core.Cell, 0, g.Population)
		elite := bestOf(population)
		next = append(next, append([]core.Cell{}, elite...))
		for len(next) < g.Population {
			p1 := tournament(population)
			p2 := tournament(population)
			child := orderedCrossover(p1, p2, g.Rand)
			if g.Rand.Float64() < g.PMut {
				mutate(child, g.Rand)
			}
			next = append(next, child)
		}
		population = next
	}

	best := bestOf(population)
	parts := splitChromosome(best, numRobots)
	return partsToAssignment(robots, parts)
}

// orderedCrossover copies a[i..j] into the child, then fills the remaining
// slots in order from b (wrapping from j+1), skipping entries already
// present (spec.md §4.5.2).
func orderedCrossover(a, b []core.Cell, rng *rand.Rand) []core.Cell {
	n := len(a)
	if n < 2 {
		return append([]core.Cell{}, a...)
	}
	i, j := rng.Intn(n), rng.Intn(n)
	if i > j {
		i, j = j, i
	}
	child := make([]*core.Cell, n)
	present := make(map[core.Cell]bool, n)
	for k := i; k <= j; k++ {
		c := a[k]
		child[k] = &c
		present[c] = true
	}
	fillIdx := (j + 1) % n
	for _, cand := range b {
		if present[cand] {
			continue
		}
		c := cand
		child[fillIdx] = &c
		present[cand] = true
		fillIdx = (fillIdx + 1) % n
	}
	out := make([]core.Cell, 0, n)
	for _, c := range child {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// mutate swaps two random positions, or with equal probability shuffles an
// in-place subsegment (spec.md §4.5.2).
func mutate(chrom []core.Cell, rng *rand.Rand) {
	if len(chrom) < 2 {
		return
	}
	i, j := rng.Intn(len(chrom)), rng.Intn(len(chrom))
	for j == i {
		j = rng.Intn(len(chrom))
	}
	if i > j {
		i, j = j, i
	}
	if rng.Float64() < 0.5 {
		chrom[i], chrom[j] = chrom[j], chrom[i]
		return
	}
	segment := chrom[i:j]
	rng.Shuffle(len(segment), func(a, b int) { segment[a], segment[b] = segment[b], segment[a] })
}

func chromKey(chrom []core.Cell) string {
	buf := make([]byte, 0, len(chrom)*9)
	for _, c := range chrom {
		buf = append(buf, byte(c.Row), byte(c.Row>>8), byte(c.Row>>16), byte(c.Row>>24))
		buf = append(buf, byte(c.Col), byte(c.Col>>8), byte(c.Col>>16), byte(c.Col>>24))
		buf = append(buf, ',')
	}
	return string(buf)
}
