package cli

import (
	"context"
	"testing"
	"time"

	"github.com/nexusart/artplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlanService struct {
	plans []*domain.Plan
}

func (f *fakePlanService) Create(ctx context.Context, name string, start time.Time, sprints, durationDays int) (*domain.Plan, error) {
	return nil, nil
}

func (f *fakePlanService) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakePlanService) List(ctx context.Context) ([]*domain.Plan, error) {
	return f.plans, nil
}

func (f *fakePlanService) Rename(ctx context.Context, id, name string) (*domain.Plan, error) {
	return nil, nil
}

func (f *fakePlanService) Delete(ctx context.Context, id string) error { return nil }

func (f *fakePlanService) SetStatus(ctx context.Context, id string, status domain.PlanStatus) (*domain.Plan, error) {
	return nil, nil
}

func (f *fakePlanService) UpdateConfig(ctx context.Context, id string, cfg domain.PIConfig) (*domain.Plan, error) {
	return nil, nil
}

func (f *fakePlanService) AddHoliday(ctx context.Context, id, name, start, end string) (*domain.Plan, error) {
	return nil, nil
}

func (f *fakePlanService) RemoveHoliday(ctx context.Context, id, holidayID string) (*domain.Plan, error) {
	return nil, nil
}

func resolverApp() *App {
	return &App{Plans: &fakePlanService{plans: []*domain.Plan{
		{
			ID:   "a1b2c3d4-0000-0000-0000-000000000001",
			Name: "PI 2025.1",
			Teams: []domain.Team{
				{ID: "team-alpha", Name: "Apollo"},
				{ID: "team-beta", Name: "Borealis"},
			},
			Activities: []domain.Activity{
				{ID: "act-gateway", Title: "Gateway rework"},
				{ID: "act-gopher", Title: "Gopher migration"},
			},
		},
		{ID: "a1b2c3d4-ffff-0000-0000-000000000002", Name: "PI 2025.2"},
	}}}
}

func TestResolvePlanID_ByName(t *testing.T) {
	app := resolverApp()
	id, err := resolvePlanID(context.Background(), app, "pi 2025.1")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-0000-0000-0000-000000000001", id)
}

func TestResolvePlanID_ByExactID(t *testing.T) {
	app := resolverApp()
	id, err := resolvePlanID(context.Background(), app, "a1b2c3d4-ffff-0000-0000-000000000002")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-ffff-0000-0000-000000000002", id)
}

func TestResolvePlanID_AmbiguousPrefix(t *testing.T) {
	app := resolverApp()
	_, err := resolvePlanID(context.Background(), app, "a1b2c3d4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolvePlanID_UniquePrefix(t *testing.T) {
	app := resolverApp()
	id, err := resolvePlanID(context.Background(), app, "a1b2c3d4-0000-0000-0000-000000000001"[:35])
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4-0000-0000-0000-000000000001", id)
}

func TestResolvePlanID_NotFound(t *testing.T) {
	app := resolverApp()
	_, err := resolvePlanID(context.Background(), app, "nope")
	require.Error(t, err)
}

func TestResolvePlanID_Empty(t *testing.T) {
	_, err := resolvePlanID(context.Background(), resolverApp(), "")
	require.Error(t, err)
}

func TestResolveTeamID(t *testing.T) {
	app := resolverApp()
	planID := "a1b2c3d4-0000-0000-0000-000000000001"

	id, err := resolveTeamID(context.Background(), app, planID, "apollo")
	require.NoError(t, err)
	assert.Equal(t, "team-alpha", id)

	id, err = resolveTeamID(context.Background(), app, planID, "team-b")
	require.NoError(t, err)
	assert.Equal(t, "team-beta", id)

	_, err = resolveTeamID(context.Background(), app, planID, "team-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveActivityID(t *testing.T) {
	app := resolverApp()
	planID := "a1b2c3d4-0000-0000-0000-000000000001"

	id, err := resolveActivityID(context.Background(), app, planID, "gateway rework")
	require.NoError(t, err)
	assert.Equal(t, "act-gateway", id)

	_, err = resolveActivityID(context.Background(), app, planID, "act-g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
