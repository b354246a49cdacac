package service

import (
	"context"
	"testing"

	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityService_AddUpdateRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "Stripe integration")
	require.NoError(t, err)
	assert.True(t, act.IsIncluded, "new activities join the board by default")

	require.NoError(t, env.acts.Update(ctx, plan.ID, act.ID, "Payments", "Stripe + refunds"))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Payments", fetched.Activities[0].Title)
	assert.Equal(t, "Stripe + refunds", fetched.Activities[0].Description)

	require.NoError(t, env.acts.Remove(ctx, plan.ID, act.ID))
	fetched, err = env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Activities)

	_, err = env.acts.Add(ctx, plan.ID, "", "")
	assert.Error(t, err)
}

func TestActivityService_RemoveCascadesAllocations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "")
	require.NoError(t, err)
	other, err := env.acts.Add(ctx, plan.ID, "Search", "")
	require.NoError(t, err)
	require.NoError(t, env.allocs.Set(ctx, plan.ID, act.ID, team.ID, "sprint-1", 4))
	require.NoError(t, env.allocs.Set(ctx, plan.ID, other.ID, team.ID, "sprint-1", 2))

	require.NoError(t, env.acts.Remove(ctx, plan.ID, act.ID))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Allocations, 1)
	assert.Equal(t, other.ID, fetched.Allocations[0].ActivityID)
}

func TestActivityService_SetIncluded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "")
	require.NoError(t, err)

	require.NoError(t, env.acts.SetIncluded(ctx, plan.ID, act.ID, false))
	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Activities[0].IsIncluded)

	err = env.acts.SetIncluded(ctx, plan.ID, "ghost", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityService_SetEstimateUpsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "")
	require.NoError(t, err)

	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, team.ID, 10))
	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, team.ID, 12.5))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Activities[0].Estimates, 1, "second set overwrites, not duplicates")
	assert.Equal(t, 12.5, fetched.Activities[0].Estimates[0].Effort)

	// Zero clears the estimate; negative is rejected.
	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, team.ID, 0))
	fetched, err = env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Activities[0].Estimates)

	err = env.acts.SetEstimate(ctx, plan.ID, act.ID, team.ID, -1)
	assert.Error(t, err)

	err = env.acts.SetEstimate(ctx, plan.ID, act.ID, "ghost", 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityService_SetEstimateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "")
	require.NoError(t, err)
	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, team.ID, 10))

	require.NoError(t, env.acts.SetEstimateStatus(ctx, plan.ID, act.ID, team.ID, domain.EstimateInProgress))
	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EstimateInProgress, fetched.Activities[0].Estimates[0].Status)

	err = env.acts.SetEstimateStatus(ctx, plan.ID, act.ID, team.ID, "paused")
	assert.Error(t, err, "unknown status rejected")

	err = env.acts.SetEstimateStatus(ctx, plan.ID, act.ID, "ghost", domain.EstimateDone)
	assert.Error(t, err, "no estimate for that team")
}
