package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
)

type activityService struct {
	planMutator
}

func NewActivityService(plans repository.PlanRepo, uow db.UnitOfWork) ActivityService {
	return &activityService{planMutator: planMutator{plans: plans, uow: uow}}
}

func (s *activityService) Add(ctx context.Context, planID, title, description string) (*domain.Activity, error) {
	if title == "" {
		return nil, fmt.Errorf("activity title is required")
	}
	act := domain.Activity{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		IsIncluded:  true,
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		p.Activities = append(p.Activities, act)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (s *activityService) Update(ctx context.Context, planID, activityID, title, description string) error {
	if title == "" {
		return fmt.Errorf("activity title is required")
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		act, err := mustFindActivity(p, activityID)
		if err != nil {
			return err
		}
		act.Title = title
		act.Description = description
		return nil
	})
	return err
}

// Remove drops the activity and every allocation that references it.
func (s *activityService) Remove(ctx context.Context, planID, activityID string) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		for i, a := range p.Activities {
			if a.ID != activityID {
				continue
			}
			p.Activities = append(p.Activities[:i], p.Activities[i+1:]...)

			kept := p.Allocations[:0]
			for _, al := range p.Allocations {
				if al.ActivityID != activityID {
					kept = append(kept, al)
				}
			}
			p.Allocations = kept
			return nil
		}
		return nil
	})
	return err
}

func (s *activityService) SetIncluded(ctx context.Context, planID, activityID string, included bool) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		act, err := mustFindActivity(p, activityID)
		if err != nil {
			return err
		}
		act.IsIncluded = included
		return nil
	})
	return err
}

// SetEstimate upserts the team's committed effort on an activity. Zero
// effort removes the estimate, negative effort is rejected.
func (s *activityService) SetEstimate(ctx context.Context, planID, activityID, teamID string, effort float64) error {
	if effort < 0 {
		return fmt.Errorf("estimate effort cannot be negative, got %g", effort)
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		act, err := mustFindActivity(p, activityID)
		if err != nil {
			return err
		}
		if _, err := mustFindTeam(p, teamID); err != nil {
			return err
		}

		if effort == 0 {
			for i, e := range act.Estimates {
				if e.TeamID == teamID {
					act.Estimates = append(act.Estimates[:i], act.Estimates[i+1:]...)
					break
				}
			}
			return nil
		}

		if est := act.EstimateFor(teamID); est != nil {
			est.Effort = effort
			return nil
		}
		act.Estimates = append(act.Estimates, domain.TeamEstimate{
			TeamID: teamID,
			Effort: effort,
			Status: domain.EstimateTodo,
		})
		return nil
	})
	return err
}

func (s *activityService) SetEstimateStatus(ctx context.Context, planID, activityID, teamID string, status domain.EstimateStatus) error {
	if !domain.ValidEstimateStatuses[string(status)] {
		return fmt.Errorf("unknown estimate status %q", status)
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		act, err := mustFindActivity(p, activityID)
		if err != nil {
			return err
		}
		est := act.EstimateFor(teamID)
		if est == nil {
			return fmt.Errorf("no estimate for team %s on activity %s", teamID, activityID)
		}
		est.Status = status
		return nil
	})
	return err
}
