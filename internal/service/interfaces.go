package service

import (
	"context"
	"time"

	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/domain"
)

type PlanService interface {
	Create(ctx context.Context, name string, start time.Time, sprints, durationDays int) (*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Rename(ctx context.Context, id, name string) (*domain.Plan, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.PlanStatus) (*domain.Plan, error)
	UpdateConfig(ctx context.Context, id string, cfg domain.PIConfig) (*domain.Plan, error)
	AddHoliday(ctx context.Context, id, name, start, end string) (*domain.Plan, error)
	RemoveHoliday(ctx context.Context, id, holidayID string) (*domain.Plan, error)
}

type TeamService interface {
	Add(ctx context.Context, planID, name string) (*domain.Team, error)
	Rename(ctx context.Context, planID, teamID, name string) error
	Remove(ctx context.Context, planID, teamID string) error
	AddMember(ctx context.Context, planID, teamID, name string) (*domain.TeamMember, error)
	RenameMember(ctx context.Context, planID, teamID, memberID, name string) error
	RemoveMember(ctx context.Context, planID, teamID, memberID string) error
	AddVacation(ctx context.Context, planID, teamID, memberID, start, end string) (*domain.VacationRange, error)
	RemoveVacation(ctx context.Context, planID, teamID, memberID, vacationID string) error
}

type ActivityService interface {
	Add(ctx context.Context, planID, title, description string) (*domain.Activity, error)
	Update(ctx context.Context, planID, activityID, title, description string) error
	Remove(ctx context.Context, planID, activityID string) error
	SetIncluded(ctx context.Context, planID, activityID string, included bool) error
	SetEstimate(ctx context.Context, planID, activityID, teamID string, effort float64) error
	SetEstimateStatus(ctx context.Context, planID, activityID, teamID string, status domain.EstimateStatus) error
}

type AllocationService interface {
	Allocate(ctx context.Context, planID, activityID, teamID, sprintID string, effort float64) (*domain.Allocation, error)
	Update(ctx context.Context, planID, allocationID string, effort float64) error
	Set(ctx context.Context, planID, activityID, teamID, sprintID string, effort float64) error
	Remove(ctx context.Context, planID, allocationID string) error
}

type BoardService interface {
	Board(ctx context.Context, planID string) (*contract.BoardSnapshot, error)
	ActivityStats(ctx context.Context, planID, activityID, teamID string) (*contract.ActivityTeamStats, error)
	TeamStats(ctx context.Context, planID string) ([]contract.TeamPIStat, error)
}

type TrackService interface {
	Report(ctx context.Context, planID string) (*contract.TrackReport, error)
	Summaries(ctx context.Context) ([]contract.PlanSummary, error)
}
