package service

import (
	"context"
	"fmt"

	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
)

// planMutator is the shared copy-on-write edit path: load the aggregate,
// clone it, apply the edit, persist the clone transactionally. Closed plans
// are read-only for every edit that goes through here.
type planMutator struct {
	plans repository.PlanRepo
	uow   db.UnitOfWork
}

func (m *planMutator) mutate(ctx context.Context, planID string, fn func(p *domain.Plan) error) (*domain.Plan, error) {
	current, err := m.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.PlanClosed {
		return nil, fmt.Errorf("plan %q is closed", current.Name)
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	err = m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Save(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// mustFindTeam returns the team or an error naming the missing id.
func mustFindTeam(p *domain.Plan, teamID string) (*domain.Team, error) {
	team := p.FindTeam(teamID)
	if team == nil {
		return nil, fmt.Errorf("team %s: %w", teamID, repository.ErrNotFound)
	}
	return team, nil
}

// mustFindActivity returns the activity or an error naming the missing id.
func mustFindActivity(p *domain.Plan, activityID string) (*domain.Activity, error) {
	act := p.FindActivity(activityID)
	if act == nil {
		return nil, fmt.Errorf("activity %s: %w", activityID, repository.ErrNotFound)
	}
	return act, nil
}
