package service

import (
	"context"

	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/scheduler"
)

type boardService struct {
	plans repository.PlanRepo
}

func NewBoardService(plans repository.PlanRepo) BoardService {
	return &boardService{plans: plans}
}

func (s *boardService) Board(ctx context.Context, planID string) (*contract.BoardSnapshot, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	board := scheduler.BuildBoard(p)
	return &board, nil
}

func (s *boardService) ActivityStats(ctx context.Context, planID, activityID, teamID string) (*contract.ActivityTeamStats, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	stats := scheduler.ActivityTeamStats(p, activityID, teamID)
	return &stats, nil
}

func (s *boardService) TeamStats(ctx context.Context, planID string) ([]contract.TeamPIStat, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	return scheduler.TeamPIStats(p), nil
}
