package domain

// Allocation is actual/scheduled effort for one team on one activity within
// one sprint. Several allocations may target the same (activity, team,
// sprint) triple; callers consolidate by editing existing ones.
type Allocation struct {
	ID         string
	ActivityID string
	TeamID     string
	SprintID   string
	Effort     float64
}

// CloneAllocations returns an independent copy of the slice. Used for the
// baseline snapshot, which must never alias the live list.
func CloneAllocations(allocs []Allocation) []Allocation {
	out := make([]Allocation, len(allocs))
	copy(out, allocs)
	return out
}
