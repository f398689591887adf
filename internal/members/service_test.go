package members

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"github.com/memberhubhq/memberhub-backend/pkg/security"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
	"gorm.io/gorm"
)

type stubMemberRepo struct {
	members []models.Member
	member  *models.Member
	err     error

	created *models.Member
	updated *models.Member
	deleted int64
}

func (s *stubMemberRepo) List(ctx context.Context) ([]models.Member, error) {
	return s.members, s.err
}

func (s *stubMemberRepo) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.member, nil
}

func (s *stubMemberRepo) Create(ctx context.Context, member *models.Member) error {
	if s.err != nil {
		return s.err
	}
	member.ID = 7
	s.created = member
	return nil
}

func (s *stubMemberRepo) Update(ctx context.Context, member *models.Member) error {
	if s.err != nil {
		return s.err
	}
	s.updated = member
	return nil
}

func (s *stubMemberRepo) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = id
	return nil
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func baseMember() *models.Member {
	major := "CS"
	active := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return &models.Member{
		ID:           3,
		MemberName:   "Dana",
		Email:        "dana@example.com",
		PasswordHash: "$argon2id$...",
		Role:         "Officer",
		Level:        2,
		Major:        &major,
		LastActive:   &active,
		Status:       enums.MemberStatusActive,
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil, testPasswordConfig()); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceListMapsSummaries(t *testing.T) {
	repo := &stubMemberRepo{members: []models.Member{*baseMember()}}
	svc, err := NewService(repo, testPasswordConfig())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	rows, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row got %d", len(rows))
	}
	if rows[0].Name != "Dana" || rows[0].Email != "dana@example.com" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if rows[0].LastActive == nil || *rows[0].LastActive != "2026-05-01T12:00:00Z" {
		t.Fatalf("unexpected last_active: %v", rows[0].LastActive)
	}
}

func TestServiceGetByIDNotFound(t *testing.T) {
	repo := &stubMemberRepo{err: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo, testPasswordConfig())

	_, err := svc.GetByID(context.Background(), 99)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Member not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceCreateRequiresFields(t *testing.T) {
	svc, _ := NewService(&stubMemberRepo{}, testPasswordConfig())

	_, err := svc.Create(context.Background(), CreateMemberInput{Email: "a@b.c"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "member_name, email, password are required" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceCreateRejectsBadBirthday(t *testing.T) {
	svc, _ := NewService(&stubMemberRepo{}, testPasswordConfig())

	_, err := svc.Create(context.Background(), CreateMemberInput{
		MemberName: "Dana",
		Email:      "dana@example.com",
		Password:   "secret",
		Birthday:   "01/02/2003",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "birthday must be 'YYYY-MM-DD'" {
		t.Fatalf("expected birthday validation, got %v", err)
	}
}

func TestServiceCreateHashesAndDefaults(t *testing.T) {
	repo := &stubMemberRepo{}
	svc, _ := NewService(repo, testPasswordConfig())

	id, err := svc.Create(context.Background(), CreateMemberInput{
		MemberName: "Dana",
		Email:      "dana@example.com",
		Password:   "secret",
		Birthday:   "2001-06-15",
	})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7 got %d", id)
	}
	if repo.created.Role != "Member" {
		t.Fatalf("expected default role, got %q", repo.created.Role)
	}
	if repo.created.Status != enums.MemberStatusActive {
		t.Fatalf("expected active status, got %q", repo.created.Status)
	}
	if repo.created.PasswordHash == "secret" || repo.created.PasswordHash == "" {
		t.Fatal("password was not hashed")
	}
	ok, err := security.VerifyPassword("secret", repo.created.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
	if repo.created.Birthday == nil || repo.created.Birthday.Format("2006-01-02") != "2001-06-15" {
		t.Fatalf("unexpected birthday: %v", repo.created.Birthday)
	}
}

func TestServiceCreateDuplicateEmail(t *testing.T) {
	repo := &stubMemberRepo{err: ErrDuplicateEmail}
	svc, _ := NewService(repo, testPasswordConfig())

	_, err := svc.Create(context.Background(), CreateMemberInput{
		MemberName: "Dana",
		Email:      "dana@example.com",
		Password:   "secret",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if typed.Message() != "Email already exists" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceUpdateAppliesPartialFields(t *testing.T) {
	repo := &stubMemberRepo{member: baseMember()}
	svc, _ := NewService(repo, testPasswordConfig())

	id, err := svc.Update(context.Background(), 3, UpdateMemberInput{
		MemberName: types.NewOptional("Dana Q"),
		Level:      types.NewOptional(5),
		Status:     types.NewOptional("inactive"),
		Birthday:   types.NullOptional[string](),
	})
	if err != nil {
		t.Fatalf("update member: %v", err)
	}
	if id != 3 {
		t.Fatalf("expected id 3 got %d", id)
	}
	if repo.updated.MemberName != "Dana Q" || repo.updated.Level != 5 {
		t.Fatalf("fields not applied: %+v", repo.updated)
	}
	if repo.updated.Status != enums.MemberStatusInactive {
		t.Fatalf("status not applied: %q", repo.updated.Status)
	}
	if repo.updated.Birthday != nil {
		t.Fatal("null birthday should clear the stored value")
	}
	if repo.updated.Email != "dana@example.com" {
		t.Fatal("untouched field was modified")
	}
}

func TestServiceUpdateRejectsBadStatus(t *testing.T) {
	repo := &stubMemberRepo{member: baseMember()}
	svc, _ := NewService(repo, testPasswordConfig())

	_, err := svc.Update(context.Background(), 3, UpdateMemberInput{
		Status: types.NewOptional("banned"),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Message() != "status must be active/inactive/removed" {
		t.Fatalf("expected status validation, got %v", err)
	}
}

func TestServiceDeleteNotFound(t *testing.T) {
	repo := &stubMemberRepo{err: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo, testPasswordConfig())

	err := svc.Delete(context.Background(), 404)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceDeleteDependencyError(t *testing.T) {
	repo := &stubMemberRepo{err: errors.New("boom")}
	svc, _ := NewService(repo, testPasswordConfig())

	err := svc.Delete(context.Background(), 1)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
