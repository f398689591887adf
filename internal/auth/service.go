package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/memberhubhq/memberhub-backend/internal/members"
	pkgauth "github.com/memberhubhq/memberhub-backend/pkg/auth"
	"github.com/memberhubhq/memberhub-backend/pkg/auth/session"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"github.com/memberhubhq/memberhub-backend/pkg/security"
	"gorm.io/gorm"
)

const defaultRole = "Member"

type memberAuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
	UpdateLastActive(ctx context.Context, id int64, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// TokenPair is the minted access token plus its refresh counterpart.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service exposes registration and the session lifecycle.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (int64, error)
	Login(ctx context.Context, input LoginInput) (*LoginResponse, *TokenPair, error)
	Logout(ctx context.Context, accessID string) error
	Refresh(ctx context.Context, staleToken, refreshToken string) (*RefreshResponse, *TokenPair, error)
}

type service struct {
	repo     memberAuthRepository
	sessions sessionManager
	jwtCfg   config.JWTConfig
	pwCfg    config.PasswordConfig
	now      func() time.Time
}

// NewService wires the auth flows to the member store and session manager.
func NewService(repo memberAuthRepository, sessions sessionManager, jwtCfg config.JWTConfig, pwCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("member repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{
		repo:     repo,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		pwCfg:    pwCfg,
		now:      time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (int64, error) {
	name := strings.TrimSpace(input.MemberName)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "member_name, email and password are required")
	}

	hash, err := security.HashPassword(input.Password, s.pwCfg)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = defaultRole
	}

	member := &models.Member{
		MemberName:   name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Major:        input.Major,
		Level:        0,
		Status:       enums.MemberStatusActive,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		if errors.Is(err, members.ErrDuplicateEmail) {
			return 0, pkgerrors.New(pkgerrors.CodeConflict, "Email already registered")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register member")
	}
	return member.ID, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResponse, *TokenPair, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	member, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, invalidCredentials()
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup member")
	}

	ok, err := security.VerifyPassword(input.Password, member.PasswordHash)
	if err != nil || !ok {
		return nil, nil, invalidCredentials()
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastActive(ctx, member.ID, now); err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stamp last active")
	}

	accessID := session.NewAccessID()
	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, now, pkgauth.AccessTokenPayload{
		MemberID: member.ID,
		Role:     member.Role,
		JTI:      accessID,
	})
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	refreshToken, err := s.sessions.Generate(ctx, accessID)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create session")
	}

	resp := &LoginResponse{
		Message: "Login successful",
		Member: LoginMember{
			ID:     member.ID,
			Name:   member.MemberName,
			Email:  member.Email,
			Role:   member.Role,
			Status: string(enums.MemberStatusActive),
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	return resp, &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

// Refresh rotates the session named by the (possibly expired) access token
// and mints a fresh pair for the same member.
func (s *service) Refresh(ctx context.Context, staleToken, refreshToken string) (*RefreshResponse, *TokenPair, error) {
	if strings.TrimSpace(staleToken) == "" || strings.TrimSpace(refreshToken) == "" {
		return nil, nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	claims, err := pkgauth.ParseAccessTokenAllowExpired(s.jwtCfg, staleToken)
	if err != nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")
	}

	newAccessID, newRefresh, err := s.sessions.Rotate(ctx, claims.ID, refreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	accessToken, err := pkgauth.MintAccessToken(s.jwtCfg, s.now().UTC(), pkgauth.AccessTokenPayload{
		MemberID: claims.MemberID,
		Role:     claims.Role,
		JTI:      newAccessID,
	})
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	resp := &RefreshResponse{
		Message:      "Token refreshed",
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}
	return resp, &TokenPair{AccessToken: accessToken, RefreshToken: newRefresh}, nil
}

func invalidCredentials() error {
	return pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid email or password")
}
