package domain

type PlanStatus string

const (
	PlanDraft  PlanStatus = "draft"
	PlanActive PlanStatus = "active"
	PlanClosed PlanStatus = "closed"
)

// ValidPlanStatuses is the canonical set of accepted plan status strings.
var ValidPlanStatuses = map[string]bool{
	"draft": true, "active": true, "closed": true,
}

// CanTransition reports whether a plan may move from one status to another.
// The lifecycle is monotonic: draft → active → closed, nothing else.
func CanTransition(from, to PlanStatus) bool {
	switch {
	case from == PlanDraft && to == PlanActive:
		return true
	case from == PlanActive && to == PlanClosed:
		return true
	default:
		return false
	}
}

type EstimateStatus string

const (
	EstimateTodo       EstimateStatus = "todo"
	EstimateInProgress EstimateStatus = "in_progress"
	EstimateDone       EstimateStatus = "done"
)

// ValidEstimateStatuses is the canonical set of accepted estimate status strings.
var ValidEstimateStatuses = map[string]bool{
	"todo": true, "in_progress": true, "done": true,
}
