package teams

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"gorm.io/gorm"
)

type teamRepository interface {
	List(ctx context.Context) ([]models.Team, error)
	FindByID(ctx context.Context, id int64) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int64) error
	MemberCounts(ctx context.Context) (map[int64]int, error)
	CountMembers(ctx context.Context, teamID int64) (int, error)
	AddMember(ctx context.Context, teamID, memberID int64) error
	RemoveMember(ctx context.Context, teamID, memberID int64) error
	MemberExists(ctx context.Context, memberID int64) (bool, error)
}

// Service exposes the team resource operations.
type Service interface {
	List(ctx context.Context) ([]TeamView, error)
	GetByID(ctx context.Context, id int64) (*TeamView, error)
	Create(ctx context.Context, input CreateTeamInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateTeamInput) (int64, error)
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, teamID, memberID int64) error
	RemoveMember(ctx context.Context, teamID, memberID int64) error
}

type service struct {
	repo teamRepository
}

// NewService builds a team service with the provided repository.
func NewService(repo teamRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("team repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]TeamView, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list teams")
	}
	counts, err := s.repo.MemberCounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count team members")
	}
	views := make([]TeamView, 0, len(teams))
	for i := range teams {
		views = append(views, ViewFromModel(&teams[i], counts[teams[i].ID]))
	}
	return views, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*TeamView, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Team not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	count, err := s.repo.CountMembers(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count team members")
	}
	view := ViewFromModel(team, count)
	return &view, nil
}

func (s *service) Create(ctx context.Context, input CreateTeamInput) (int64, error) {
	name := strings.TrimSpace(input.TeamName)
	if name == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "team_name is required")
	}
	team := &models.Team{
		TeamName:    name,
		Description: input.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create team")
	}
	return team.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateTeamInput) (int64, error) {
	team, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Team not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}

	if input.TeamName.Set {
		team.TeamName = input.TeamName.Value
	}
	if input.Description.Set {
		team.Description = input.Description.Ptr()
	}
	if input.IsActive.Set {
		team.IsActive = input.IsActive.Value
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update team")
	}
	return team.ID, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Team not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete team")
	}
	return nil
}

func (s *service) AddMember(ctx context.Context, teamID, memberID int64) error {
	if _, err := s.repo.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Team not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	ok, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup member")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
	}
	if err := s.repo.AddMember(ctx, teamID, memberID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add team member")
	}
	return nil
}

func (s *service) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	if err := s.repo.RemoveMember(ctx, teamID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Membership not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove team member")
	}
	return nil
}
