package scheduler

import (
	"testing"

	"github.com/nexusart/artplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baselinedPlan is scenarioPlan at its commitment point: the baseline is a
// snapshot of 8 allocated days, after which the live ledger grew to 12.
func baselinedPlan() *domain.Plan {
	plan := scenarioPlan()
	plan.Status = domain.PlanActive
	plan.BaselineCaptured = true
	plan.BaselineAllocations = []domain.Allocation{
		{ID: "al-1", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-1", Effort: 8},
	}
	return plan
}

func TestActivityVariance(t *testing.T) {
	plan := baselinedPlan()

	v := ActivityVariance(plan.Allocations, plan.BaselineAllocations, "act-1")
	assert.Equal(t, 4.0, v, "12 allocated against 8 planned")

	assert.Equal(t, 0.0, ActivityVariance(plan.Allocations, plan.BaselineAllocations, "act-missing"))
}

func TestActivityVariance_ShrunkScope(t *testing.T) {
	plan := baselinedPlan()
	plan.Allocations = []domain.Allocation{
		{ID: "al-1", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-1", Effort: 4},
	}

	v := ActivityVariance(plan.Allocations, plan.BaselineAllocations, "act-1")
	assert.Equal(t, -4.0, v)
}

func TestTotalVariance(t *testing.T) {
	plan := baselinedPlan()
	assert.Equal(t, 4.0, TotalVariance(plan.Allocations, plan.BaselineAllocations))
}

func TestIsScopeCreep(t *testing.T) {
	plan := baselinedPlan()
	plan.Activities = append(plan.Activities, domain.Activity{ID: "act-new", Title: "Late add"})
	plan.Allocations = append(plan.Allocations, domain.Allocation{
		ID: "al-9", ActivityID: "act-new", TeamID: "apollo", SprintID: "sprint-2", Effort: 2,
	})

	assert.True(t, IsScopeCreep(plan, "act-new"), "allocated but absent from the baseline")
	assert.False(t, IsScopeCreep(plan, "act-1"), "present in the baseline")
}

func TestIsScopeCreep_NoBaseline(t *testing.T) {
	plan := scenarioPlan()
	assert.False(t, IsScopeCreep(plan, "act-1"), "drafts cannot creep")
}

func TestIsScopeCreep_NoAllocations(t *testing.T) {
	plan := baselinedPlan()
	plan.Activities = append(plan.Activities, domain.Activity{ID: "act-idle", Title: "Unscheduled"})

	assert.False(t, IsScopeCreep(plan, "act-idle"))
}

func TestBuildTrackReport(t *testing.T) {
	plan := baselinedPlan()

	report := BuildTrackReport(plan)

	assert.True(t, report.HasBaseline)
	assert.Equal(t, 12.0, report.TotalActual)
	assert.Equal(t, 8.0, report.TotalPlanned)
	assert.Equal(t, 4.0, report.Variance)
	assert.Equal(t, 100, report.Progress, "12 allocated of 10 estimated caps at 100")

	require.Len(t, report.Activities, 1)
	tr := report.Activities[0]
	assert.Equal(t, "act-1", tr.ActivityID)
	assert.Equal(t, 10.0, tr.Estimated)
	assert.Equal(t, 12.0, tr.Actual)
	assert.Equal(t, 8.0, tr.Planned)
	assert.Equal(t, 4.0, tr.Variance)
	assert.False(t, tr.ScopeCreep)
	assert.Equal(t, 0, tr.ActualFirst)
	assert.Equal(t, 1, tr.ActualLast)
	assert.Equal(t, 0, tr.BaselineFirst)
	assert.Equal(t, 0, tr.BaselineLast)
}

func TestBuildTrackReport_OrphanedSprintRefs(t *testing.T) {
	plan := baselinedPlan()
	plan.Allocations = append(plan.Allocations, domain.Allocation{
		ID: "al-orphan", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-7", Effort: 5,
	})

	report := BuildTrackReport(plan)

	require.Len(t, report.Activities, 1)
	tr := report.Activities[0]
	assert.Equal(t, 17.0, tr.Actual, "orphaned effort still counts in totals")
	assert.Equal(t, 1, tr.ActualLast, "orphaned sprint refs do not extend the span")
}

func TestBuildTrackReport_NoEstimates(t *testing.T) {
	plan := baselinedPlan()
	plan.Activities[0].Estimates = nil

	report := BuildTrackReport(plan)

	assert.Equal(t, 0, report.Progress)
	require.Len(t, report.Activities, 1)
	assert.Equal(t, 0, report.Activities[0].Progress)
}

func TestCompletionProgress(t *testing.T) {
	plan := scenarioPlan()
	plan.Activities[0].Estimates = []domain.TeamEstimate{
		{TeamID: "apollo", Effort: 10, Status: domain.EstimateDone},
		{TeamID: "zephyr", Effort: 10, Status: domain.EstimateInProgress},
		{TeamID: "titan", Effort: 10, Status: domain.EstimateTodo},
	}

	assert.Equal(t, 50, CompletionProgress(plan), "10 done + 5 half-credit of 30")
}

func TestCompletionProgress_Empty(t *testing.T) {
	plan := scenarioPlan()
	plan.Activities = nil
	assert.Equal(t, 0, CompletionProgress(plan))
}

func TestCompletionProgress_AllDone(t *testing.T) {
	plan := scenarioPlan()
	plan.Activities[0].Estimates[0].Status = domain.EstimateDone
	assert.Equal(t, 100, CompletionProgress(plan))
}

// The baseline snapshot must stay fixed while the live ledger mutates.
func TestBaselineUnaffectedByLedgerMutation(t *testing.T) {
	plan := baselinedPlan()
	before := SumEffort(plan.BaselineAllocations)

	plan.Allocations[0].Effort = 99
	plan.Allocations = append(plan.Allocations, domain.Allocation{
		ID: "al-x", ActivityID: "act-1", TeamID: "apollo", SprintID: "sprint-1", Effort: 7,
	})

	assert.Equal(t, before, SumEffort(plan.BaselineAllocations))
}
