package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and CLI format for calendar dates.
const DateLayout = "2006-01-02"

// DateRange is an inclusive span of calendar dates. Times of day are
// ignored everywhere; only year/month/day matter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a validated range from two YYYY-MM-DD strings.
func NewDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	r := DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the start <= end invariant.
func (r DateRange) Validate() error {
	if truncateDay(r.End).Before(truncateDay(r.Start)) {
		return fmt.Errorf("range end %s precedes start %s",
			r.End.Format(DateLayout), r.Start.Format(DateLayout))
	}
	return nil
}

// Contains reports whether the given day falls inside the range, bounds
// inclusive, comparing calendar dates only.
func (r DateRange) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(r.Start)) && !d.After(truncateDay(r.End))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
