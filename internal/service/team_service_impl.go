package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nexusart/artplan/internal/db"
	"github.com/nexusart/artplan/internal/domain"
	"github.com/nexusart/artplan/internal/repository"
)

type teamService struct {
	planMutator
}

func NewTeamService(plans repository.PlanRepo, uow db.UnitOfWork) TeamService {
	return &teamService{planMutator: planMutator{plans: plans, uow: uow}}
}

func (s *teamService) Add(ctx context.Context, planID, name string) (*domain.Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	team := domain.Team{ID: uuid.New().String(), Name: name}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		p.Teams = append(p.Teams, team)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *teamService) Rename(ctx context.Context, planID, teamID, name string) error {
	if name == "" {
		return fmt.Errorf("team name is required")
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		team.Name = name
		return nil
	})
	return err
}

// Remove drops the team along with its estimates and allocations; other
// teams' figures are untouched.
func (s *teamService) Remove(ctx context.Context, planID, teamID string) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		for i, t := range p.Teams {
			if t.ID != teamID {
				continue
			}
			p.Teams = append(p.Teams[:i], p.Teams[i+1:]...)

			for ai := range p.Activities {
				act := &p.Activities[ai]
				kept := act.Estimates[:0]
				for _, e := range act.Estimates {
					if e.TeamID != teamID {
						kept = append(kept, e)
					}
				}
				act.Estimates = kept
			}

			keptAllocs := p.Allocations[:0]
			for _, a := range p.Allocations {
				if a.TeamID != teamID {
					keptAllocs = append(keptAllocs, a)
				}
			}
			p.Allocations = keptAllocs
			return nil
		}
		return nil
	})
	return err
}

func (s *teamService) AddMember(ctx context.Context, planID, teamID, name string) (*domain.TeamMember, error) {
	if name == "" {
		return nil, fmt.Errorf("member name is required")
	}
	member := domain.TeamMember{ID: uuid.New().String(), Name: name}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		team.Members = append(team.Members, member)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *teamService) RenameMember(ctx context.Context, planID, teamID, memberID, name string) error {
	if name == "" {
		return fmt.Errorf("member name is required")
	}
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		m := team.FindMember(memberID)
		if m == nil {
			return fmt.Errorf("member %s: %w", memberID, repository.ErrNotFound)
		}
		m.Name = name
		return nil
	})
	return err
}

func (s *teamService) RemoveMember(ctx context.Context, planID, teamID, memberID string) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		for i, m := range team.Members {
			if m.ID == memberID {
				team.Members = append(team.Members[:i], team.Members[i+1:]...)
				break
			}
		}
		return nil
	})
	return err
}

func (s *teamService) AddVacation(ctx context.Context, planID, teamID, memberID, start, end string) (*domain.VacationRange, error) {
	r, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	vacation := domain.VacationRange{ID: uuid.New().String(), Range: r}
	_, err = s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		m := team.FindMember(memberID)
		if m == nil {
			return fmt.Errorf("member %s: %w", memberID, repository.ErrNotFound)
		}
		m.Vacations = append(m.Vacations, vacation)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vacation, nil
}

func (s *teamService) RemoveVacation(ctx context.Context, planID, teamID, memberID, vacationID string) error {
	_, err := s.mutate(ctx, planID, func(p *domain.Plan) error {
		team, err := mustFindTeam(p, teamID)
		if err != nil {
			return err
		}
		m := team.FindMember(memberID)
		if m == nil {
			return fmt.Errorf("member %s: %w", memberID, repository.ErrNotFound)
		}
		for i, v := range m.Vacations {
			if v.ID == vacationID {
				m.Vacations = append(m.Vacations[:i], m.Vacations[i+1:]...)
				break
			}
		}
		return nil
	})
	return err
}
