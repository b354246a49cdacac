package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/scheduler"
)

type allocationService struct {
	planMutator
}

func NewAllocationService(plans repository.PlanRepo, uow db.UnitOfWork) AllocationService {
	return &allocationService{planMutator: planMutator{plans: plans, uow: uow}}
}

// Allocate records effort for one team on one activity within one sprint.
// The ledger does not enforce one entry per (activity, team, sprint); several
// allocations may target the same cell and their sum is what the board shows.
// Allocations may exceed both the estimate and the sprint capacity; overruns
// are flagged, never rejected.
func (s *allocationService) Allocate(ctx context.Context, planID, activityID, teamID, sprintID string, effort float64) (*domain.Allocation, error) {
	if effort <= 0 {
		return nil, fmt.Errorf("allocation effort must be positive, got %g", effort)
	}

	alloc := domain.Allocation{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		TeamID:     teamID,
		SprintID:   sprintID,
		Effort:     effort,
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		if err := validateAllocationTarget(p, activityID, teamID, sprintID); err != nil {
			return err
		}
		p.Allocations = append(p.Allocations, alloc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &alloc, nil
}

// Update replaces the effort on an existing allocation. Unknown ids are a
// no-op; stale references from interactive editing are tolerated.
func (s *allocationService) Update(ctx context.Context, planID, allocationID string, effort float64) error {
	if effort <= 0 {
		return fmt.Errorf("allocation effort must be positive, got %g", effort)
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		for i := range p.Allocations {
			if p.Allocations[i].ID == allocationID {
				p.Allocations[i].Effort = effort
				break
			}
		}
		return nil
	})
	return err
}

// Set is the consolidating write the board uses: it treats the
// (activity, team, sprint) cell as a single slot, overwriting an existing
// allocation there or creating one. Zero effort clears the cell.
func (s *allocationService) Set(ctx context.Context, planID, activityID, teamID, sprintID string, effort float64) error {
	if effort < 0 {
		return fmt.Errorf("allocation effort cannot be negative, got %g", effort)
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		if err := validateAllocationTarget(p, activityID, teamID, sprintID); err != nil {
			return err
		}

		for i := range p.Allocations {
			a := &p.Allocations[i]
			if a.ActivityID == activityID && a.TeamID == teamID && a.SprintID == sprintID {
				if effort == 0 {
					p.Allocations = append(p.Allocations[:i], p.Allocations[i+1:]...)
				} else {
					a.Effort = effort
				}
				return nil
			}
		}

		if effort == 0 {
			return nil
		}
		p.Allocations = append(p.Allocations, domain.Allocation{
			ID:         uuid.New().String(),
			ActivityID: activityID,
			TeamID:     teamID,
			SprintID:   sprintID,
			Effort:     effort,
		})
		return nil
	})
	return err
}

// Remove deletes an allocation by id. Unknown ids are a no-op.
func (s *allocationService) Remove(ctx context.Context, planID, allocationID string) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		for i, a := range p.Allocations {
			if a.ID == allocationID {
				p.Allocations = append(p.Allocations[:i], p.Allocations[i+1:]...)
				break
			}
		}
		return nil
	})
	return err
}

func validateAllocationTarget(p *domain.Plan, activityID, teamID, sprintID string) error {
	if _, err := mustFindActivity(p, activityID); err != nil {
		return err
	}
	if _, err := mustFindTeam(p, teamID); err != nil {
		return err
	}
	sprints := scheduler.GenerateSprints(p.Config)
	if scheduler.SprintIndex(sprints, sprintID) == -1 {
		return fmt.Errorf("sprint %s: %w", sprintID, repository.ErrNotFound)
	}
	return nil
}
