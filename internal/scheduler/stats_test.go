package scheduler

import (
	"testing"
	"time"

	"github.com/nexusart/artplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioPlan is a two-sprint draft plan with one two-member team and a
// single included activity estimated at 10 days but allocated 12.
func scenarioPlan() *domain.Plan {
	return &domain.Plan{
		ID:     "plan-1",
		Name:   "Q1 Increment",
		Status: domain.PlanDraft,
		Config: domain.PIConfig{
			StartDate:          time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			NumberOfSprints:    2,
			SprintDurationDays: 14,
		},
		Teams: []domain.Team{
			{
				ID:   "apollo",
				Name: "Apollo",
				Members: []domain.TeamMember{
					{ID: "m1", Name: "Ada"},
					{ID: "m2", Name: "Grace"},
				},
			},
		},
		Activities: []domain.Activity{
			{
				ID:         "act-1",
				Title:      "Payment gateway",
				IsIncluded: true,
				Estimates: []domain.TeamEstimate{
					{TeamID: "apollo", Effort: 10, Status: domain.EstimateTodo},
				},
			},
		},
		Allocations: []domain.Allocation{
			{ID: "al-1", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-1", Effort: 8},
			{ID: "al-2", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-2", Effort: 4},
		},
	}
}

func TestActivityTeamStats_OverAllocated(t *testing.T) {
	stats := ActivityTeamStats(scenarioPlan(), "act-1", "apollo")

	assert.Equal(t, 10.0, stats.Estimated)
	assert.Equal(t, 12.0, stats.Allocated)
	assert.True(t, stats.IsOver)
	assert.False(t, stats.IsUnder)
	assert.Equal(t, 2.0, stats.Overdue)
	assert.Equal(t, 0.0, stats.Remaining)
}

func TestActivityTeamStats_UnderAllocated(t *testing.T) {
	plan := scenarioPlan()
	plan.Allocations = plan.Allocations[:1]

	stats := ActivityTeamStats(plan, "act-1", "apollo")

	assert.Equal(t, 8.0, stats.Allocated)
	assert.True(t, stats.IsUnder)
	assert.Equal(t, 2.0, stats.Remaining)
	assert.Equal(t, 0.0, stats.Overdue)
}

func TestActivityTeamStats_NoEstimate(t *testing.T) {
	plan := scenarioPlan()
	plan.Allocations = append(plan.Allocations, domain.Allocation{
		ID: "al-3", ActivityID: "act-1", TeamID: "zephyr", SprintID: "sprint-1", Effort: 3,
	})

	stats := ActivityTeamStats(plan, "act-1", "zephyr")

	assert.Equal(t, 0.0, stats.Estimated)
	assert.Equal(t, 3.0, stats.Allocated)
	assert.True(t, stats.IsOver, "any allocation against a zero estimate is over")
}

func TestActivityTeamStats_UnknownActivity(t *testing.T) {
	stats := ActivityTeamStats(scenarioPlan(), "act-missing", "apollo")

	assert.Equal(t, 0.0, stats.Estimated)
	assert.Equal(t, 0.0, stats.Allocated)
	assert.Equal(t, domain.EstimateTodo, stats.Status)
	assert.False(t, stats.IsOver)
	assert.False(t, stats.IsUnder)
}

func TestBuildBoard(t *testing.T) {
	plan := scenarioPlan()
	plan.Holidays = []domain.Holiday{
		{ID: "h1", Name: "Org day", Range: domain.DateRange{
			Start: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		}},
	}

	board := BuildBoard(plan)

	require.Len(t, board.Sprints, 2)
	require.Len(t, board.Rows, 1)
	row := board.Rows[0]
	assert.Equal(t, "Apollo", row.TeamName)
	assert.Equal(t, 2, row.Members)
	require.Len(t, row.Cells, 2)

	first := row.Cells[0]
	assert.Equal(t, 18, first.Capacity, "holiday inside sprint 1 costs each member a day")
	assert.Equal(t, 8.0, first.Used)
	assert.False(t, first.Over)
	assert.InDelta(t, 44.4, first.Utilization, 0.1)

	second := row.Cells[1]
	assert.Equal(t, 20, second.Capacity)
	assert.Equal(t, 4.0, second.Used)
	assert.False(t, second.Over)
}

func TestBuildBoard_OverCapacityCell(t *testing.T) {
	plan := scenarioPlan()
	plan.Allocations = []domain.Allocation{
		{ID: "al-1", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-1", Effort: 25},
	}

	board := BuildBoard(plan)
	cell := board.Rows[0].Cells[0]

	assert.Equal(t, 20, cell.Capacity)
	assert.True(t, cell.Over)
	assert.Greater(t, cell.Utilization, 100.0)
}

func TestTeamPIStats(t *testing.T) {
	plan := scenarioPlan()
	plan.Activities = append(plan.Activities, domain.Activity{
		ID:         "act-2",
		Title:      "Backlog only",
		IsIncluded: false,
		Estimates: []domain.TeamEstimate{
			{TeamID: "apollo", Effort: 99},
		},
	})

	stats := TeamPIStats(plan)

	require.Len(t, stats, 1)
	assert.Equal(t, 40, stats[0].Capacity)
	assert.Equal(t, 10.0, stats[0].Committed, "excluded activities do not count as committed")
	assert.InDelta(t, 25.0, stats[0].Utilization, 0.01)
	assert.False(t, stats[0].Over)
}

func TestTeamPIStats_OverCommitted(t *testing.T) {
	plan := scenarioPlan()
	plan.Activities[0].Estimates[0].Effort = 45

	stats := TeamPIStats(plan)

	require.Len(t, stats, 1)
	assert.True(t, stats[0].Over)
}
