package core

// Path is a sequence of cells, each step 4-adjacent to the last, every
// cell passable. A trivial path from s to s is []Cell{s}.
type Path []Cell

// Cost is len(path)-1, the number of unit-time steps to traverse it; an
// empty path costs 0.
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// InfCost is the sentinel for "no path exists" used in place of relying on
// IEEE Inf ordering across the assignment strategies (spec.md §9).
const InfCost = 1 << 30

// AppendLeg appends leg to base, suppressing the duplicated join cell when
// base's last cell equals leg's first cell (spec.md §4.6). An empty leg
// leaves base unchanged.
func AppendLeg(base Path, leg Path) Path {
	if len(leg) == 0 {
		return base
	}
	if len(base) > 0 && base[len(base)-1] == leg[0] {
		return append(base, leg[1:]...)
	}
	return append(base, leg...)
}
