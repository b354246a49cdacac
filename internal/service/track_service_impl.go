package service

import (
	"context"

	"github.com/nexusart/artplan/internal/contract"
	"github.com/nexusart/artplan/internal/repository"
	"github.com/nexusart/artplan/internal/scheduler"
)

type trackService struct {
	plans repository.PlanRepo
}

func NewTrackService(plans repository.PlanRepo) TrackService {
	return &trackService{plans: plans}
}

func (s *trackService) Report(ctx context.Context, planID string) (*contract.TrackReport, error) {
	p, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	report := scheduler.BuildTrackReport(p)
	return &report, nil
}

func (s *trackService) Summaries(ctx context.Context) ([]contract.PlanSummary, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]contract.PlanSummary, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, contract.PlanSummary{
			Plan:     p,
			Progress: scheduler.CompletionProgress(p),
		})
	}
	return summaries, nil
}
