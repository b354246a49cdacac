package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/scheduler"
)

const (
	defaultSprintCount    = 5
	defaultSprintDuration = 14
)

type planService struct {
	planMutator
	observer UseCaseObserver
}

func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return &planService{
		planMutator: planMutator{plans: plans, uow: uow},
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Create(ctx context.Context, name string, start time.Time, sprints, durationDays int) (*domain.Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if sprints == 0 {
		sprints = defaultSprintCount
	}
	if durationDays == 0 {
		durationDays = defaultSprintDuration
	}

	p := &domain.Plan{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.PlanDraft,
		CreatedAt: time.Now().UTC(),
		Config: domain.PIConfig{
			StartDate:          start,
			NumberOfSprints:    sprints,
			SprintDurationDays: durationDays,
		},
	}
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Rename(ctx context.Context, id, name string) (*domain.Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	return s.mutate(ctx, id, func(p *domain.Plan) error {
		p.Name = name
		return nil
	})
}

func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}

// SetStatus moves the plan along its lifecycle. Activating a draft captures
// the baseline: a one-time snapshot of the current allocation ledger that
// later variance reporting compares against. Setting the status a plan
// already has is a no-op.
func (s *planService) SetStatus(ctx context.Context, id string, status domain.PlanStatus) (p *domain.Plan, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-plan-status",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"plan_id": id, "status": string(status)},
		})
	}()

	current, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !domain.CanTransition(current.Status, status) {
		return nil, fmt.Errorf("cannot move plan from %s to %s", current.Status, status)
	}

	next := current.Clone()
	next.Status = status
	if status == domain.PlanActive && !next.BaselineCaptured {
		next.BaselineCaptured = true
		next.BaselineAllocations = domain.CloneAllocations(next.Allocations)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Save(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// UpdateConfig rewrites the sprint generation rule. Allocations pointing at
// sprints that no longer exist under the new rule are dropped.
func (s *planService) UpdateConfig(ctx context.Context, id string, cfg domain.PIConfig) (*domain.Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *domain.Plan) error {
		p.Config = cfg
		sprints := scheduler.GenerateSprints(cfg)

		kept := p.Allocations[:0]
		for _, a := range p.Allocations {
			if scheduler.SprintIndex(sprints, a.SprintID) != -1 {
				kept = append(kept, a)
			}
		}
		p.Allocations = kept
		return nil
	})
}

func (s *planService) AddHoliday(ctx context.Context, id, name, start, end string) (*domain.Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("holiday name is required")
	}
	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *domain.Plan) error {
		p.Holidays = append(p.Holidays, domain.Holiday{
			ID:    uuid.New().String(),
			Name:  name,
			Range: r,
		})
		return nil
	})
}

func (s *planService) RemoveHoliday(ctx context.Context, id, holidayID string) (*domain.Plan, error) {
	return s.mutate(ctx, id, func(p *domain.Plan) error {
		for i, h := range p.Holidays {
			if h.ID == holidayID {
				p.Holidays = append(p.Holidays[:i], p.Holidays[i+1:]...)
				break
			}
		}
		return nil
	})
}
