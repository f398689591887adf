package contents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"gorm.io/gorm"
)

type contentRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Content, error)
	Create(ctx context.Context, content *models.Content) error
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, id int64) error
	ListSubmissionRows(ctx context.Context) ([]SubmissionRow, error)
	ReportsForContent(ctx context.Context, contentID int64) ([]ContentReport, error)
}

// Service exposes the content resource operations.
type Service interface {
	ListSubmissions(ctx context.Context) ([]SubmissionRow, error)
	GetByID(ctx context.Context, id int64) (*ContentDetail, error)
	Create(ctx context.Context, input CreateContentInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateContentInput) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo contentRepository
}

// NewService builds a content service with the provided repository.
func NewService(repo contentRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListSubmissions(ctx context.Context) ([]SubmissionRow, error) {
	rows, err := s.repo.ListSubmissionRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list submissions")
	}
	if rows == nil {
		rows = []SubmissionRow{}
	}
	return rows, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ContentDetail, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Content not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load content")
	}
	reports, err := s.repo.ReportsForContent(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list content reports")
	}
	return DetailFromModel(content, reports), nil
}

func (s *service) Create(ctx context.Context, input CreateContentInput) (int64, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.ContentType) == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "title and content_type are required")
	}
	contentType, err := enums.ParseContentType(input.ContentType)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "content_type must be task/quiz/playlist")
	}

	content := &models.Content{
		Title:       title,
		ContentType: contentType,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, content); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create content")
	}
	return content.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateContentInput) (int64, error) {
	content, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Content not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load content")
	}

	if input.Title.Set {
		title := strings.TrimSpace(input.Title.Value)
		if title == "" {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "title and content_type are required")
		}
		content.Title = title
	}
	if input.ContentType.Set {
		contentType, err := enums.ParseContentType(input.ContentType.Value)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "content_type must be task/quiz/playlist")
		}
		content.ContentType = contentType
	}
	if input.Description.Set {
		content.Description = input.Description.Ptr()
	}

	if err := s.repo.Update(ctx, content); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update content")
	}
	return content.ID, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Content not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete content")
	}
	return nil
}
