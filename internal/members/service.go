package members

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"github.com/memberhubhq/memberhub-backend/pkg/security"
	"gorm.io/gorm"
)

type memberRepository interface {
	List(ctx context.Context) ([]models.Member, error)
	FindByID(ctx context.Context, id int64) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id int64) error
}

// Service exposes the member resource operations.
type Service interface {
	List(ctx context.Context) ([]MemberSummary, error)
	GetByID(ctx context.Context, id int64) (*MemberDetail, error)
	Create(ctx context.Context, input CreateMemberInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateMemberInput) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo        memberRepository
	passwordCfg config.PasswordConfig
}

// NewService builds a member service with the provided repository.
func NewService(repo memberRepository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

func (s *service) List(ctx context.Context) ([]MemberSummary, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list members")
	}
	summaries := make([]MemberSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, SummaryFromModel(&rows[i]))
	}
	return summaries, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*MemberDetail, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load member")
	}
	return DetailFromModel(member), nil
}

func (s *service) Create(ctx context.Context, input CreateMemberInput) (int64, error) {
	name := strings.TrimSpace(input.MemberName)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "member_name, email, password are required")
	}

	var birthday *time.Time
	if input.Birthday != "" {
		parsed, err := time.Parse(birthdayFormat, input.Birthday)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "birthday must be 'YYYY-MM-DD'")
		}
		birthday = &parsed
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	role := input.Role
	if role == "" {
		role = "Member"
	}

	member := &models.Member{
		MemberName:   name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Level:        input.Level,
		Major:        input.Major,
		Birthday:     birthday,
		Status:       enums.MemberStatusActive,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return 0, pkgerrors.New(pkgerrors.CodeConflict, "Email already exists")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create member")
	}
	return member.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateMemberInput) (int64, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load member")
	}

	if input.MemberName.Set {
		member.MemberName = input.MemberName.Value
	}
	if input.Email.Set {
		member.Email = input.Email.Value
	}
	if input.Password.Set && input.Password.Valid && input.Password.Value != "" {
		hash, err := security.HashPassword(input.Password.Value, s.passwordCfg)
		if err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		member.PasswordHash = hash
	}
	if input.Role.Set {
		member.Role = input.Role.Value
	}
	if input.Major.Set {
		member.Major = input.Major.Ptr()
	}
	if input.Level.Set {
		member.Level = input.Level.Value
	}
	if input.Status.Set {
		status, err := enums.ParseMemberStatus(input.Status.Value)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "status must be active/inactive/removed")
		}
		member.Status = status
	}
	if input.Birthday.Set {
		if !input.Birthday.Valid || input.Birthday.Value == "" {
			member.Birthday = nil
		} else {
			parsed, err := time.Parse(birthdayFormat, input.Birthday.Value)
			if err != nil {
				return 0, pkgerrors.New(pkgerrors.CodeValidation, "birthday must be 'YYYY-MM-DD'")
			}
			member.Birthday = &parsed
		}
	}

	if err := s.repo.Update(ctx, member); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return 0, pkgerrors.New(pkgerrors.CodeConflict, "Email already exists")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update member")
	}
	return member.ID, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete member")
	}
	return nil
}
