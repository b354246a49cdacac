// Package scheduler derives sprint schedules from plan configuration and
// computes capacity, load and variance figures over them. Every function is
// pure: results depend only on the arguments.
package scheduler

import (
	"fmt"

	"github.com/nexusart/artplan/internal/domain"
)

// The final sprint of an increment is conventionally reserved for
// innovation and planning.
const ipSuffix = " (IP)"

// GenerateSprints derives the ordered sprint list from the config. Sprint i
// (0-indexed) covers [start + i*duration, start + (i+1)*duration - 1]:
// contiguous, non-overlapping, no gaps. IDs are positional ("sprint-1",
// "sprint-2", ...) and stay stable as long as the config is unchanged.
func GenerateSprints(cfg domain.PIConfig) []domain.Sprint {
	sprints := make([]domain.Sprint, 0, cfg.NumberOfSprints)
	for i := 0; i < cfg.NumberOfSprints; i++ {
		start := cfg.StartDate.AddDate(0, 0, i*cfg.SprintDurationDays)
		end := start.AddDate(0, 0, cfg.SprintDurationDays-1)

		name := fmt.Sprintf("Sprint %d", i+1)
		if i == cfg.NumberOfSprints-1 {
			name += ipSuffix
		}

		sprints = append(sprints, domain.Sprint{
			ID:    fmt.Sprintf("sprint-%d", i+1),
			Name:  name,
			Start: start,
			End:   end,
		})
	}
	return sprints
}

// SprintIndex returns the position of the sprint with the given id in the
// derived list, or -1 when no such sprint exists (e.g. an allocation
// referencing a sprint removed by a config change).
func SprintIndex(sprints []domain.Sprint, sprintID string) int {
	for i, s := range sprints {
		if s.ID == sprintID {
			return i
		}
	}
	return -1
}
