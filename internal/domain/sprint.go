package domain

import "time"

// Sprint is a derived time box. Sprints are never persisted: they are
// regenerated from the plan's PIConfig on every read, so editing the config
// immediately reshapes the schedule.
type Sprint struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// Range returns the sprint's inclusive date span.
func (s Sprint) Range() DateRange {
	return DateRange{Start: s.Start, End: s.End}
}
