package scheduler

import (
	"github.com/nexusart/artplan/internal/calendar"
	"github.com/nexusart/artplan/internal/domain"
)

// MemberCapacity is one member's working days within a sprint, net of
// weekends, personal vacations and organization-wide holidays. A day
// excluded by either calendar is excluded once.
func MemberCapacity(member domain.TeamMember, sprint domain.Sprint, globalHolidays []domain.DateRange) int {
	exclusions := make([]domain.DateRange, 0, len(member.Vacations)+len(globalHolidays))
	for _, v := range member.Vacations {
		exclusions = append(exclusions, v.Range)
	}
	exclusions = append(exclusions, globalHolidays...)
	return calendar.CountWorkingDays(sprint.Start, sprint.End, exclusions)
}

// TeamCapacity sums MemberCapacity over the team for one sprint.
func TeamCapacity(team domain.Team, sprint domain.Sprint, globalHolidays []domain.DateRange) int {
	total := 0
	for _, m := range team.Members {
		total += MemberCapacity(m, sprint, globalHolidays)
	}
	return total
}

// TotalPICapacity sums TeamCapacity across every sprint of the increment;
// the denominator for whole-increment utilization.
func TotalPICapacity(team domain.Team, sprints []domain.Sprint, globalHolidays []domain.DateRange) int {
	total := 0
	for _, s := range sprints {
		total += TeamCapacity(team, s, globalHolidays)
	}
	return total
}
