package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/nexusart/artplan/internal/domain"
)

// MustDate parses a YYYY-MM-DD string, panicking on bad input. For fixtures
// only.
func MustDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// MustRange builds an inclusive date range from two YYYY-MM-DD strings.
func MustRange(start, end string) domain.DateRange {
	return domain.DateRange{Start: MustDate(start), End: MustDate(end)}
}

// Plan options
type PlanOption func(*domain.Plan)

func WithPlanStatus(s domain.PlanStatus) PlanOption {
	return func(p *domain.Plan) {
		p.Status = s
	}
}

func WithStartDate(start string) PlanOption {
	return func(p *domain.Plan) {
		p.Config.StartDate = MustDate(start)
	}
}

func WithSprints(count, durationDays int) PlanOption {
	return func(p *domain.Plan) {
		p.Config.NumberOfSprints = count
		p.Config.SprintDurationDays = durationDays
	}
}

func WithTeam(t domain.Team) PlanOption {
	return func(p *domain.Plan) {
		p.Teams = append(p.Teams, t)
	}
}

func WithActivity(a domain.Activity) PlanOption {
	return func(p *domain.Plan) {
		p.Activities = append(p.Activities, a)
	}
}

func WithAllocation(a domain.Allocation) PlanOption {
	return func(p *domain.Plan) {
		p.Allocations = append(p.Allocations, a)
	}
}

func WithHoliday(name, start, end string) PlanOption {
	return func(p *domain.Plan) {
		p.Holidays = append(p.Holidays, domain.Holiday{
			ID:    uuid.New().String(),
			Name:  name,
			Range: MustRange(start, end),
		})
	}
}

func WithBaseline(allocs []domain.Allocation) PlanOption {
	return func(p *domain.Plan) {
		p.BaselineCaptured = true
		p.BaselineAllocations = domain.CloneAllocations(allocs)
	}
}

// NewTestPlan builds a draft plan starting Monday 2025-01-06 with two
// 14-day sprints. Options attach teams, activities and the rest.
func NewTestPlan(name string, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.PlanDraft,
		CreatedAt: time.Now().UTC(),
		Config: domain.PIConfig{
			StartDate:          MustDate("2025-01-06"),
			NumberOfSprints:    2,
			SprintDurationDays: 14,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Member options
type MemberOption func(*domain.TeamMember)

func WithVacation(start, end string) MemberOption {
	return func(m *domain.TeamMember) {
		m.Vacations = append(m.Vacations, domain.VacationRange{
			ID:    uuid.New().String(),
			Range: MustRange(start, end),
		})
	}
}

func NewTestMember(name string, opts ...MemberOption) domain.TeamMember {
	m := domain.TeamMember{
		ID:   uuid.New().String(),
		Name: name,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// NewTestTeam builds a team with one plain member per given name.
func NewTestTeam(name string, memberNames ...string) domain.Team {
	t := domain.Team{
		ID:   uuid.New().String(),
		Name: name,
	}
	for _, mn := range memberNames {
		t.Members = append(t.Members, NewTestMember(mn))
	}
	return t
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithEstimate(teamID string, effort float64, status domain.EstimateStatus) ActivityOption {
	return func(a *domain.Activity) {
		a.Estimates = append(a.Estimates, domain.TeamEstimate{
			TeamID: teamID,
			Effort: effort,
			Status: status,
		})
	}
}

func WithExcluded() ActivityOption {
	return func(a *domain.Activity) {
		a.IsIncluded = false
	}
}

func WithDescription(d string) ActivityOption {
	return func(a *domain.Activity) {
		a.Description = d
	}
}

// NewTestActivity builds an included activity.
func NewTestActivity(title string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:         uuid.New().String(),
		Title:      title,
		IsIncluded: true,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func NewTestAllocation(activityID, teamID, sprintID string, effort float64) domain.Allocation {
	return domain.Allocation{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		TeamID:     teamID,
		SprintID:   sprintID,
		Effort:     effort,
	}
}
