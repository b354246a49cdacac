// Package calendar counts working days inside inclusive date ranges.
// Everything here is pure: no state, no clocks, identical results for
// identical inputs regardless of call order.
package calendar

import (
	"time"

	"github.com/nexusart/artplan/internal/domain"
)

// CountWorkingDays walks each calendar day of [start, end] inclusive and
// counts the days that are neither a weekend nor inside any exclusion
// range. Overlapping exclusions never double-subtract: a day either counts
// or it does not.
func CountWorkingDays(start, end time.Time, exclusions []domain.DateRange) int {
	count := 0
	for day := dateOnly(start); !day.After(dateOnly(end)); day = day.AddDate(0, 0, 1) {
		if IsWeekend(day) {
			continue
		}
		if inAnyRange(day, exclusions) {
			continue
		}
		count++
	}
	return count
}

// IsWeekend reports whether the day is Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func inAnyRange(day time.Time, ranges []domain.DateRange) bool {
	for _, r := range ranges {
		if r.Contains(day) {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
