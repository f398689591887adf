package teams

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
	"gorm.io/gorm"
)

type stubTeamRepo struct {
	teams        []models.Team
	team         *models.Team
	counts       map[int64]int
	count        int
	memberExists bool
	err          error
	memberErr    error
	assocErr     error

	created       *models.Team
	updated       *models.Team
	addedTeam     int64
	addedMember   int64
	removedTeam   int64
	removedMember int64
}

func (s *stubTeamRepo) List(ctx context.Context) ([]models.Team, error) {
	return s.teams, s.err
}

func (s *stubTeamRepo) FindByID(ctx context.Context, id int64) (*models.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.team, nil
}

func (s *stubTeamRepo) Create(ctx context.Context, team *models.Team) error {
	if s.err != nil {
		return s.err
	}
	team.ID = 11
	s.created = team
	return nil
}

func (s *stubTeamRepo) Update(ctx context.Context, team *models.Team) error {
	if s.err != nil {
		return s.err
	}
	s.updated = team
	return nil
}

func (s *stubTeamRepo) Delete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubTeamRepo) MemberCounts(ctx context.Context) (map[int64]int, error) {
	return s.counts, nil
}

func (s *stubTeamRepo) CountMembers(ctx context.Context, teamID int64) (int, error) {
	return s.count, nil
}

func (s *stubTeamRepo) AddMember(ctx context.Context, teamID, memberID int64) error {
	if s.assocErr != nil {
		return s.assocErr
	}
	s.addedTeam, s.addedMember = teamID, memberID
	return nil
}

func (s *stubTeamRepo) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	if s.assocErr != nil {
		return s.assocErr
	}
	s.removedTeam, s.removedMember = teamID, memberID
	return nil
}

func (s *stubTeamRepo) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	return s.memberExists, s.memberErr
}

func baseTeam() *models.Team {
	desc := "core team"
	return &models.Team{
		ID:          4,
		TeamName:    "Robotics",
		Description: &desc,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		IsActive:    true,
	}
}

func TestTeamListIncludesCounts(t *testing.T) {
	repo := &stubTeamRepo{
		teams:  []models.Team{*baseTeam()},
		counts: map[int64]int{4: 9},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	if rows[0].MembersCount != 9 {
		t.Fatalf("expected members_count 9 got %d", rows[0].MembersCount)
	}
	if rows[0].CreatedAt == nil || *rows[0].CreatedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected created_at: %v", rows[0].CreatedAt)
	}
}

func TestTeamGetByIDNotFound(t *testing.T) {
	svc, _ := NewService(&stubTeamRepo{err: gorm.ErrRecordNotFound})

	_, err := svc.GetByID(context.Background(), 404)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound || typed.Message() != "Team not found" {
		t.Fatalf("expected team not found, got %v", err)
	}
}

func TestTeamCreateRequiresName(t *testing.T) {
	svc, _ := NewService(&stubTeamRepo{})

	_, err := svc.Create(context.Background(), CreateTeamInput{TeamName: "   "})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "team_name is required" {
		t.Fatalf("expected name validation, got %v", err)
	}
}

func TestTeamCreateStartsActive(t *testing.T) {
	repo := &stubTeamRepo{}
	svc, _ := NewService(repo)

	id, err := svc.Create(context.Background(), CreateTeamInput{TeamName: "Robotics"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11 got %d", id)
	}
	if !repo.created.IsActive {
		t.Fatal("new teams should start active")
	}
}

func TestTeamUpdateAppliesPartialFields(t *testing.T) {
	repo := &stubTeamRepo{team: baseTeam()}
	svc, _ := NewService(repo)

	_, err := svc.Update(context.Background(), 4, UpdateTeamInput{
		IsActive:    types.NewOptional(false),
		Description: types.NullOptional[string](),
	})
	if err != nil {
		t.Fatalf("update team: %v", err)
	}
	if repo.updated.IsActive {
		t.Fatal("is_active not applied")
	}
	if repo.updated.Description != nil {
		t.Fatal("null description should clear the stored value")
	}
	if repo.updated.TeamName != "Robotics" {
		t.Fatal("untouched field was modified")
	}
}

func TestTeamAddMemberUnknownMember(t *testing.T) {
	repo := &stubTeamRepo{team: baseTeam(), memberExists: false}
	svc, _ := NewService(repo)

	err := svc.AddMember(context.Background(), 4, 77)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "Member not found" {
		t.Fatalf("expected member not found, got %v", err)
	}
}

func TestTeamAddMemberSuccess(t *testing.T) {
	repo := &stubTeamRepo{team: baseTeam(), memberExists: true}
	svc, _ := NewService(repo)

	if err := svc.AddMember(context.Background(), 4, 77); err != nil {
		t.Fatalf("add member: %v", err)
	}
	if repo.addedTeam != 4 || repo.addedMember != 77 {
		t.Fatalf("association not recorded: %d/%d", repo.addedTeam, repo.addedMember)
	}
}

func TestTeamRemoveMemberMissingMembership(t *testing.T) {
	repo := &stubTeamRepo{assocErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo)

	err := svc.RemoveMember(context.Background(), 4, 77)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "Membership not found" {
		t.Fatalf("expected membership not found, got %v", err)
	}
}

func TestTeamDeleteDependencyError(t *testing.T) {
	svc, _ := NewService(&stubTeamRepo{err: errors.New("boom")})

	err := svc.Delete(context.Background(), 4)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
