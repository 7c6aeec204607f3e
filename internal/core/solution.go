package core

// Assignment maps a robot to its ordered list of task locations. The union
// of all sequences is a subset of the input task set; every task appears
// at most once across all robots.
type Assignment map[RobotID][]Cell

// Clone returns an independent deep copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for r, seq := range a {
		cp := make([]Cell, len(seq))
		copy(cp, seq)
		out[r] = cp
	}
	return out
}

// RobotStats carries the per-robot bookkeeping of spec.md §4.8.
type RobotStats struct {
	PathSteps       int     // len(base)-1
	WaitSteps       int     // CSP-assigned delay
	ExecutionSteps  int     // len(scheduled)-1
	ExecutionTimeS  float64 // execution steps at unit time, seconds
	PlannerNodes    int     // accumulated across legs
	PlannerTimeS    float64 // accumulated across legs
}

// TimelineEntry records, for one robot at one step, the cell occupied and
// whether that step reached the next unreached task in order.
type TimelineEntry struct {
	Time         int
	Cell         Cell
	ReachedTask  bool
	ReachedOrder int // 1-based order of the task reached, if ReachedTask
}

// Solution is the full output of a compose-and-schedule call.
type Solution struct {
	Assignment     Assignment
	BasePaths      map[RobotID]Path
	ScheduledPaths map[RobotID]Path
	Stats          map[RobotID]*RobotStats
	Timelines      map[RobotID][]TimelineEntry
	// CSPOK is false when no conflict-free start-delay assignment was found
	// within max_offset; scheduled paths are then un-delayed base paths
	// rather than a hard failure (spec.md §9).
	CSPOK bool
}

// NewSolution creates an empty solution with initialized maps.
func NewSolution() *Solution {
	return &Solution{
		Assignment:     make(Assignment),
		BasePaths:      make(map[RobotID]Path),
		ScheduledPaths: make(map[RobotID]Path),
		Stats:          make(map[RobotID]*RobotStats),
		Timelines:      make(map[RobotID][]TimelineEntry),
	}
}
