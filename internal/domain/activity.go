package domain

// TeamEstimate is the committed effort figure for one team on one activity.
// There is at most one estimate per (activity, team) pair; allocations are
// compared against it, never constrained by it.
type TeamEstimate struct {
	TeamID string
	Effort float64
	Status EstimateStatus
}

// Activity is a backlog item. IsIncluded marks inclusion in the current
// planning board as opposed to the raw program backlog.
type Activity struct {
	ID          string
	Title       string
	Description string
	Estimates   []TeamEstimate
	IsIncluded  bool
}

// Clone returns a deep copy of the activity and its estimates.
func (a Activity) Clone() Activity {
	out := a
	out.Estimates = make([]TeamEstimate, len(a.Estimates))
	copy(out.Estimates, a.Estimates)
	return out
}

// EstimateFor returns the estimate for the given team, or nil.
func (a *Activity) EstimateFor(teamID string) *TeamEstimate {
	for i := range a.Estimates {
		if a.Estimates[i].TeamID == teamID {
			return &a.Estimates[i]
		}
	}
	return nil
}

// TotalEstimate sums the committed effort across all teams.
func (a *Activity) TotalEstimate() float64 {
	var sum float64
	for _, e := range a.Estimates {
		sum += e.Effort
	}
	return sum
}

// AggregateStatus rolls per-team estimate statuses into one activity status:
// done when every estimate is done, in progress when any estimate has been
// started or finished, todo otherwise. An activity with no estimates is todo.
func (a *Activity) AggregateStatus() EstimateStatus {
	if len(a.Estimates) == 0 {
		return EstimateTodo
	}
	allDone := true
	anyStarted := false
	for _, e := range a.Estimates {
		if e.Status != EstimateDone {
			allDone = false
		}
		if e.Status == EstimateInProgress || e.Status == EstimateDone {
			anyStarted = true
		}
	}
	switch {
	case allDone:
		return EstimateDone
	case anyStarted:
		return EstimateInProgress
	default:
		return EstimateTodo
	}
}
