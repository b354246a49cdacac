package calendar

import (
	"testing"
	"time"

	"github.com/nexusart/artplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	r, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestCountWorkingDays_FullWeek(t *testing.T) {
	// Mon 2025-01-06 through Sun 2025-01-12: five working days.
	got := CountWorkingDays(day(2025, 1, 6), day(2025, 1, 12), nil)
	assert.Equal(t, 5, got)
}

func TestCountWorkingDays_SingleDay(t *testing.T) {
	assert.Equal(t, 1, CountWorkingDays(day(2025, 1, 6), day(2025, 1, 6), nil), "Monday")
	assert.Equal(t, 0, CountWorkingDays(day(2025, 1, 11), day(2025, 1, 11), nil), "Saturday")
}

func TestCountWorkingDays_TwoWeekSprint(t *testing.T) {
	// A 14-day sprint starting on a Monday always contains 10 working days.
	got := CountWorkingDays(day(2025, 1, 6), day(2025, 1, 19), nil)
	assert.Equal(t, 10, got)
}

func TestCountWorkingDays_Exclusions(t *testing.T) {
	start, end := day(2025, 1, 6), day(2025, 1, 19)

	midweek := mustRange(t, "2025-01-15", "2025-01-15")
	assert.Equal(t, 9, CountWorkingDays(start, end, []domain.DateRange{midweek}))

	// Exclusion landing on a weekend changes nothing.
	weekend := mustRange(t, "2025-01-11", "2025-01-12")
	assert.Equal(t, 10, CountWorkingDays(start, end, []domain.DateRange{weekend}))
}

func TestCountWorkingDays_OverlappingExclusionsNoDoubleSubtraction(t *testing.T) {
	start, end := day(2025, 1, 6), day(2025, 1, 10)

	a := mustRange(t, "2025-01-07", "2025-01-08")
	b := mustRange(t, "2025-01-08", "2025-01-09")
	got := CountWorkingDays(start, end, []domain.DateRange{a, b})
	assert.Equal(t, 2, got, "Jan 7-9 excluded once each, Mon and Fri remain")
}

func TestCountWorkingDays_ExclusionCoversWholeRange(t *testing.T) {
	cover := mustRange(t, "2025-01-01", "2025-02-01")
	assert.Equal(t, 0, CountWorkingDays(day(2025, 1, 6), day(2025, 1, 19), []domain.DateRange{cover}))
}

func TestCountWorkingDays_ExclusionsNeverIncrease(t *testing.T) {
	start := day(2025, 3, 1)
	end := day(2025, 4, 30)
	base := CountWorkingDays(start, end, nil)

	// Sliding one-week exclusions across the range never raise the count.
	for off := -10; off < 70; off += 3 {
		excl := domain.DateRange{
			Start: start.AddDate(0, 0, off),
			End:   start.AddDate(0, 0, off+6),
		}
		got := CountWorkingDays(start, end, []domain.DateRange{excl})
		assert.LessOrEqual(t, got, base, "offset %d", off)
	}
}
