package scheduler

import (
	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
)

// ActivityVariance is actual minus baseline effort for one activity.
// Positive means the activity grew after the commitment point.
func ActivityVariance(actual, baseline []domain.Allocation, activityID string) float64 {
	return SumByActivity(actual, activityID) - SumByActivity(baseline, activityID)
}

// TotalVariance is actual minus baseline effort across the whole plan.
func TotalVariance(actual, baseline []domain.Allocation) float64 {
	return SumEffort(actual) - SumEffort(baseline)
}

// IsScopeCreep reports work added after the commitment point: the plan has
// a baseline, the activity has no baseline entry, yet it carries at least
// one current allocation.
func IsScopeCreep(plan *domain.Plan, activityID string) bool {
	if !plan.BaselineCaptured {
		return false
	}
	for _, a := range plan.BaselineAllocations {
		if a.ActivityID == activityID {
			return false
		}
	}
	for _, a := range plan.Allocations {
		if a.ActivityID == activityID {
			return true
		}
	}
	return false
}

// BuildTrackReport assembles the plan-vs-actual projection for every
// activity plus program-wide totals. Progress is actual effort over total
// estimated effort, capped at 100.
func BuildTrackReport(plan *domain.Plan) contract.TrackReport {
	sprints := GenerateSprints(plan.Config)

	report := contract.TrackReport{
		HasBaseline:  plan.BaselineCaptured,
		TotalActual:  SumEffort(plan.Allocations),
		TotalPlanned: SumEffort(plan.BaselineAllocations),
		Activities:   make([]contract.ActivityTrack, 0, len(plan.Activities)),
	}
	report.Variance = report.TotalActual - report.TotalPlanned

	var totalEstimated float64
	for i := range plan.Activities {
		act := &plan.Activities[i]
		totalEstimated += act.TotalEstimate()
		report.Activities = append(report.Activities, trackActivity(plan, act, sprints))
	}
	if totalEstimated > 0 {
		report.Progress = cappedPercent(report.TotalActual, totalEstimated)
	}
	return report
}

func trackActivity(plan *domain.Plan, act *domain.Activity, sprints []domain.Sprint) contract.ActivityTrack {
	tr := contract.ActivityTrack{
		ActivityID:    act.ID,
		Title:         act.Title,
		Status:        act.AggregateStatus(),
		Estimated:     act.TotalEstimate(),
		Actual:        SumByActivity(plan.Allocations, act.ID),
		Planned:       SumByActivity(plan.BaselineAllocations, act.ID),
		ScopeCreep:    IsScopeCreep(plan, act.ID),
		ActualFirst:   -1,
		ActualLast:    -1,
		BaselineFirst: -1,
		BaselineLast:  -1,
	}
	tr.Variance = tr.Actual - tr.Planned
	if tr.Estimated > 0 {
		tr.Progress = cappedPercent(tr.Actual, tr.Estimated)
	}

	tr.ActualFirst, tr.ActualLast = sprintSpan(plan.Allocations, act.ID, sprints)
	tr.BaselineFirst, tr.BaselineLast = sprintSpan(plan.BaselineAllocations, act.ID, sprints)
	return tr
}

// sprintSpan finds the first and last sprint positions an activity touches.
// Allocations referencing sprints absent from the current schedule are
// ignored, matching how orphaned references render as "not scheduled".
func sprintSpan(allocs []domain.Allocation, activityID string, sprints []domain.Sprint) (first, last int) {
	first, last = -1, -1
	for _, a := range allocs {
		if a.ActivityID != activityID {
			continue
		}
		idx := SprintIndex(sprints, a.SprintID)
		if idx == -1 {
			continue
		}
		if first == -1 || idx < first {
			first = idx
		}
		if idx > last {
			last = idx
		}
	}
	return first, last
}

// CompletionProgress is the dashboard progress figure: done estimates count
// at full effort, in-progress at half, todo at zero, over total estimated
// effort, capped at 100.
func CompletionProgress(plan *domain.Plan) int {
	var total, completed float64
	for _, act := range plan.Activities {
		for _, est := range act.Estimates {
			total += est.Effort
			switch est.Status {
			case domain.EstimateDone:
				completed += est.Effort
			case domain.EstimateInProgress:
				completed += est.Effort / 2
			}
		}
	}
	if total == 0 {
		return 0
	}
	return cappedPercent(completed, total)
}

func cappedPercent(part, whole float64) int {
	pct := int(part/whole*100 + 0.5)
	if pct > 100 {
		return 100
	}
	return pct
}
