package repository

import (
	"context"
	"errors"

	"github.com/nexusart/artplan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PlanRepo persists whole plan aggregates. Plans are loaded and saved as a
// unit: teams, activities, allocations, holidays and the baseline snapshot
// travel with the root.
type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Save(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id string) error
}
