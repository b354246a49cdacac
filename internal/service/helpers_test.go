package service

import (
	"context"
	"testing"
	"time"

	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	plans  PlanService
	teams  TeamService
	acts   ActivityService
	allocs AllocationService
	board  BoardService
	track  TrackService
	repo   repository.PlanRepo
	uow    db.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sqlDB := testutil.NewTestDB(t)
	repo := repository.NewSQLitePlanRepo(sqlDB)
	uow := testutil.NewTestUoW(sqlDB)
	return &testEnv{
		plans:  NewPlanService(repo, uow),
		teams:  NewTeamService(repo, uow),
		acts:   NewActivityService(repo, uow),
		allocs: NewAllocationService(repo, uow),
		board:  NewBoardService(repo),
		track:  NewTrackService(repo),
		repo:   repo,
		uow:    uow,
	}
}

// newDraftPlan creates a two-sprint plan starting Monday 2025-01-06.
func newDraftPlan(t *testing.T, env *testEnv) *domain.Plan {
	t.Helper()
	plan, err := env.plans.Create(context.Background(), "Q1 Increment",
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), 2, 14)
	require.NoError(t, err)
	return plan
}
