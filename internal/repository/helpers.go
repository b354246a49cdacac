package repository

import (
	"fmt"
	"time"

	"github.com/nexusart/artplan/internal/domain"
)

const dateLayout = domain.DateLayout

// parseDate parses a stored date column. Dates are stored as bare
// YYYY-MM-DD strings and are always in UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
