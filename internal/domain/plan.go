package domain

import (
	"fmt"
	"time"
)

// PIConfig defines the sprint generation rule for a plan. Sprints are
// derived from it, not stored.
type PIConfig struct {
	StartDate          time.Time
	NumberOfSprints    int
	SprintDurationDays int
}

// Validate checks the config invariants.
func (c PIConfig) Validate() error {
	if c.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if c.NumberOfSprints < 1 {
		return fmt.Errorf("number of sprints must be at least 1, got %d", c.NumberOfSprints)
	}
	if c.SprintDurationDays < 1 {
		return fmt.Errorf("sprint duration must be positive, got %d days", c.SprintDurationDays)
	}
	return nil
}

// EndDate returns the day after the last sprint ends; the plan spans
// [StartDate, EndDate).
func (c PIConfig) EndDate() time.Time {
	return c.StartDate.AddDate(0, 0, c.NumberOfSprints*c.SprintDurationDays)
}

// Holiday is an organization-wide non-working span; it affects every team's
// capacity in the owning plan.
type Holiday struct {
	ID    string
	Name  string
	Range DateRange
}

// Plan is the aggregate root: it owns teams, activities, allocations and
// holidays, plus the config sprints derive from. BaselineAllocations is
// populated exactly once, on the draft→active transition, and is immutable
// afterwards even as Allocations continues to change.
type Plan struct {
	ID                  string
	Name                string
	Status              PlanStatus
	CreatedAt           time.Time
	Config              PIConfig
	Teams               []Team
	Activities          []Activity
	Allocations         []Allocation
	Holidays            []Holiday
	BaselineAllocations []Allocation
	BaselineCaptured    bool
}

// Clone returns a deep copy of the whole aggregate. Services mutate plans
// copy-on-write: clone, edit the clone, persist the clone. Readers holding
// the previous snapshot are never affected.
func (p *Plan) Clone() *Plan {
	out := *p
	out.Teams = make([]Team, len(p.Teams))
	for i, t := range p.Teams {
		out.Teams[i] = t.Clone()
	}
	out.Activities = make([]Activity, len(p.Activities))
	for i, a := range p.Activities {
		out.Activities[i] = a.Clone()
	}
	out.Allocations = CloneAllocations(p.Allocations)
	out.Holidays = make([]Holiday, len(p.Holidays))
	copy(out.Holidays, p.Holidays)
	if p.BaselineAllocations != nil {
		out.BaselineAllocations = CloneAllocations(p.BaselineAllocations)
	}
	return &out
}

// FindTeam returns the team with the given id, or nil.
func (p *Plan) FindTeam(teamID string) *Team {
	for i := range p.Teams {
		if p.Teams[i].ID == teamID {
			return &p.Teams[i]
		}
	}
	return nil
}

// FindActivity returns the activity with the given id, or nil.
func (p *Plan) FindActivity(activityID string) *Activity {
	for i := range p.Activities {
		if p.Activities[i].ID == activityID {
			return &p.Activities[i]
		}
	}
	return nil
}

// GlobalHolidayRanges flattens the plan's holidays into bare date ranges for
// the capacity calculator.
func (p *Plan) GlobalHolidayRanges() []DateRange {
	ranges := make([]DateRange, len(p.Holidays))
	for i, h := range p.Holidays {
		ranges[i] = h.Range
	}
	return ranges
}
