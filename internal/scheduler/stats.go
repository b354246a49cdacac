package scheduler

import (
	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
)

// ActivityTeamStats compares a team's committed estimate on an activity
// with its allocated total. An activity without an estimate for the team
// counts as estimated 0, so any allocation flags it over.
func ActivityTeamStats(plan *domain.Plan, activityID, teamID string) contract.ActivityTeamStats {
	stats := contract.ActivityTeamStats{
		ActivityID: activityID,
		TeamID:     teamID,
		Status:     domain.EstimateTodo,
	}

	act := plan.FindActivity(activityID)
	if act == nil {
		return stats
	}
	if est := act.EstimateFor(teamID); est != nil {
		stats.Estimated = est.Effort
		stats.Status = est.Status
	}

	stats.Allocated = SumByActivityTeam(plan.Allocations, activityID, teamID)
	stats.IsOver = stats.Allocated > stats.Estimated
	stats.IsUnder = stats.Allocated < stats.Estimated
	if stats.IsOver {
		stats.Overdue = stats.Allocated - stats.Estimated
	} else {
		stats.Remaining = stats.Estimated - stats.Allocated
	}
	return stats
}

// BuildBoard assembles the full planning-board projection: derived sprints
// and per-(team, sprint) capacity against used effort.
func BuildBoard(plan *domain.Plan) contract.BoardSnapshot {
	sprints := GenerateSprints(plan.Config)
	holidays := plan.GlobalHolidayRanges()

	rows := make([]contract.BoardRow, 0, len(plan.Teams))
	for _, team := range plan.Teams {
		row := contract.BoardRow{
			TeamID:   team.ID,
			TeamName: team.Name,
			Members:  len(team.Members),
			Cells:    make([]contract.BoardCell, 0, len(sprints)),
		}
		for _, sprint := range sprints {
			capacity := TeamCapacity(team, sprint, holidays)
			used := SumByTeamSprint(plan.Allocations, team.ID, sprint.ID)

			cell := contract.BoardCell{
				TeamID:   team.ID,
				SprintID: sprint.ID,
				Capacity: capacity,
				Used:     used,
				Over:     used > float64(capacity),
			}
			if capacity > 0 {
				cell.Utilization = used / float64(capacity) * 100
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return contract.BoardSnapshot{Sprints: sprints, Rows: rows}
}

// TeamPIStats computes whole-increment utilization per team: committed
// effort of included activities against total PI capacity.
func TeamPIStats(plan *domain.Plan) []contract.TeamPIStat {
	sprints := GenerateSprints(plan.Config)
	holidays := plan.GlobalHolidayRanges()

	stats := make([]contract.TeamPIStat, 0, len(plan.Teams))
	for _, team := range plan.Teams {
		capacity := TotalPICapacity(team, sprints, holidays)

		var committed float64
		for _, act := range plan.Activities {
			if !act.IsIncluded {
				continue
			}
			if est := act.EstimateFor(team.ID); est != nil {
				committed += est.Effort
			}
		}

		stat := contract.TeamPIStat{
			TeamID:    team.ID,
			TeamName:  team.Name,
			Capacity:  capacity,
			Committed: committed,
		}
		if capacity > 0 {
			stat.Utilization = committed / float64(capacity) * 100
		}
		stat.Over = stat.Utilization > 100
		stats = append(stats, stat)
	}
	return stats
}
