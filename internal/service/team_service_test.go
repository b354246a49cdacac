package service

import (
	"context"
	"testing"

	"github.com/nexusart/artplan/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_AddAndRename(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	require.NotEmpty(t, team.ID)

	require.NoError(t, env.teams.Rename(ctx, plan.ID, team.ID, "Artemis"))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Teams, 1)
	assert.Equal(t, "Artemis", fetched.Teams[0].Name)

	_, err = env.teams.Add(ctx, plan.ID, "")
	assert.Error(t, err)
}

func TestTeamService_RemoveCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	apollo, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	zephyr, err := env.teams.Add(ctx, plan.ID, "Zephyr")
	require.NoError(t, err)

	act, err := env.acts.Add(ctx, plan.ID, "Payment gateway", "")
	require.NoError(t, err)
	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, apollo.ID, 10))
	require.NoError(t, env.acts.SetEstimate(ctx, plan.ID, act.ID, zephyr.ID, 6))
	require.NoError(t, env.allocs.Set(ctx, plan.ID, act.ID, apollo.ID, "sprint-1", 4))
	require.NoError(t, env.allocs.Set(ctx, plan.ID, act.ID, zephyr.ID, "sprint-1", 3))

	require.NoError(t, env.teams.Remove(ctx, plan.ID, apollo.ID))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Teams, 1)
	assert.Equal(t, "Zephyr", fetched.Teams[0].Name)

	require.Len(t, fetched.Activities[0].Estimates, 1)
	assert.Equal(t, zephyr.ID, fetched.Activities[0].Estimates[0].TeamID)
	require.Len(t, fetched.Allocations, 1)
	assert.Equal(t, zephyr.ID, fetched.Allocations[0].TeamID)

	// Removing an unknown team is a no-op.
	assert.NoError(t, env.teams.Remove(ctx, plan.ID, "ghost"))
}

func TestTeamService_Members(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)

	ada, err := env.teams.AddMember(ctx, plan.ID, team.ID, "Ada")
	require.NoError(t, err)
	_, err = env.teams.AddMember(ctx, plan.ID, team.ID, "Grace")
	require.NoError(t, err)

	require.NoError(t, env.teams.RenameMember(ctx, plan.ID, team.ID, ada.ID, "Ada L."))
	require.NoError(t, env.teams.RemoveMember(ctx, plan.ID, team.ID, ada.ID))

	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Teams[0].Members, 1)
	assert.Equal(t, "Grace", fetched.Teams[0].Members[0].Name)

	_, err = env.teams.AddMember(ctx, plan.ID, "ghost", "Nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTeamService_Vacations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	plan := newDraftPlan(t, env)
	team, err := env.teams.Add(ctx, plan.ID, "Apollo")
	require.NoError(t, err)
	ada, err := env.teams.AddMember(ctx, plan.ID, team.ID, "Ada")
	require.NoError(t, err)

	vac, err := env.teams.AddVacation(ctx, plan.ID, team.ID, ada.ID, "2025-01-08", "2025-01-10")
	require.NoError(t, err)

	_, err = env.teams.AddVacation(ctx, plan.ID, team.ID, ada.ID, "2025-01-10", "2025-01-08")
	assert.Error(t, err, "inverted range rejected")

	require.NoError(t, env.teams.RemoveVacation(ctx, plan.ID, team.ID, ada.ID, vac.ID))
	fetched, err := env.plans.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Teams[0].Members[0].Vacations)
}
