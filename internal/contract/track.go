package contract

import "github.com/nexusart/artplan/internal/domain"

// ActivityTrack is the plan-vs-actual projection for one activity.
// Sprint indexes are positions in the derived sprint list; -1 means the
// activity has no allocation (or no baseline entry) in any current sprint.
type ActivityTrack struct {
	ActivityID string
	Title      string
	Status     domain.EstimateStatus
	Estimated  float64
	Actual     float64
	Planned    float64 // baseline total
	Variance   float64 // Actual - Planned
	ScopeCreep bool    // allocated after baseline capture, no baseline entry
	Progress   int     // Actual/Estimated in percent, capped at 100

	ActualFirst   int
	ActualLast    int
	BaselineFirst int
	BaselineLast  int
}

// TrackReport is the program-wide variance projection.
type TrackReport struct {
	HasBaseline  bool
	Progress     int // total actual / total estimated, percent, capped
	TotalActual  float64
	TotalPlanned float64
	Variance     float64
	Activities   []ActivityTrack
}

// PlanSummary is the dashboard line for one plan, with completion-weighted
// progress (done estimates count fully, in-progress ones half).
type PlanSummary struct {
	Plan     *domain.Plan
	Progress int
}
