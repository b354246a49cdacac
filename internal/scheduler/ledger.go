package scheduler

import "github.com/nexusart/artplan/internal/domain"

// SumByTeamSprint totals allocated effort for one team in one sprint — the
// "used" figure compared against TeamCapacity.
func SumByTeamSprint(allocs []domain.Allocation, teamID, sprintID string) float64 {
	var sum float64
	for _, a := range allocs {
		if a.TeamID == teamID && a.SprintID == sprintID {
			sum += a.Effort
		}
	}
	return sum
}

// SumByActivityTeam totals allocated effort for one team on one activity
// across all sprints — the "allocated" figure compared against the team's
// estimate.
func SumByActivityTeam(allocs []domain.Allocation, activityID, teamID string) float64 {
	var sum float64
	for _, a := range allocs {
		if a.ActivityID == activityID && a.TeamID == teamID {
			sum += a.Effort
		}
	}
	return sum
}

// SumByActivity totals allocated effort for one activity across all teams
// and sprints.
func SumByActivity(allocs []domain.Allocation, activityID string) float64 {
	var sum float64
	for _, a := range allocs {
		if a.ActivityID == activityID {
			sum += a.Effort
		}
	}
	return sum
}

// SumEffort totals effort over the whole ledger.
func SumEffort(allocs []domain.Allocation) float64 {
	var sum float64
	for _, a := range allocs {
		sum += a.Effort
	}
	return sum
}
