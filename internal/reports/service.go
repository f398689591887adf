package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"gorm.io/gorm"
)

type reportRepository interface {
	ListRows(ctx context.Context) ([]ReportRow, error)
	FindRowByID(ctx context.Context, id int64) (*ReportRow, error)
	FindByID(ctx context.Context, id int64) (*models.Report, error)
	Create(ctx context.Context, report *models.Report) error
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, id int64) error
	ContentExists(ctx context.Context, contentID int64) (bool, error)
	MemberExists(ctx context.Context, memberID int64) (bool, error)
}

// Service exposes the report resource operations.
type Service interface {
	List(ctx context.Context) ([]ReportRow, error)
	GetByID(ctx context.Context, id int64) (*ReportRow, error)
	Create(ctx context.Context, input CreateReportInput) (int64, error)
	Update(ctx context.Context, id int64, input UpdateReportInput) (int64, error)
	Delete(ctx context.Context, id int64) error
	Submit(ctx context.Context, id int64, input SubmitReportInput) (int64, error)
}

type service struct {
	repo reportRepository
	now  func() time.Time
}

// NewService builds a report service with the provided repository.
func NewService(repo reportRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) List(ctx context.Context) ([]ReportRow, error) {
	rows, err := s.repo.ListRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reports")
	}
	if rows == nil {
		rows = []ReportRow{}
	}
	return rows, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ReportRow, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load report")
	}
	return row, nil
}

func (s *service) Create(ctx context.Context, input CreateReportInput) (int64, error) {
	title := strings.TrimSpace(input.Title)
	if input.ContentID <= 0 || input.SubmittedBy <= 0 || title == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "content_id, submitted_by, title are required")
	}

	ok, err := s.repo.ContentExists(ctx, input.ContentID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup content")
	}
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Content not found")
	}
	ok, err = s.repo.MemberExists(ctx, input.SubmittedBy)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup member")
	}
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
	}

	report := &models.Report{
		ContentID:   input.ContentID,
		SubmittedBy: input.SubmittedBy,
		Title:       title,
		Status:      enums.ReportStatusPending,
		Action:      enums.ReportActionNone,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create report")
	}
	return report.ID, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateReportInput) (int64, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load report")
	}

	if input.Title.Set {
		report.Title = input.Title.Value
	}
	if input.Status.Set {
		status, err := enums.ParseReportStatus(input.Status.Value)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
		}
		report.Status = status
	}
	if input.Action.Set {
		action, err := enums.ParseReportAction(input.Action.Value)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "Invalid action")
		}
		report.Action = action
	}
	if input.FilePath.Set {
		report.FilePath = input.FilePath.Ptr()
	}
	if input.SubmissionDate.Set {
		if !input.SubmissionDate.Valid {
			report.SubmissionDate = nil
		} else {
			date, err := parseSubmissionDate(input.SubmissionDate.Value)
			if err != nil {
				return 0, pkgerrors.New(pkgerrors.CodeValidation, "submission_date must be ISO format")
			}
			report.SubmissionDate = &date
		}
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update report")
	}
	return report.ID, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete report")
	}
	return nil
}

// Submit marks the report submitted: records the file path, stamps the
// submission time, and resets any pending action.
func (s *service) Submit(ctx context.Context, id int64, input SubmitReportInput) (int64, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Report not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load report")
	}

	filePath := strings.TrimSpace(input.FilePath)
	if filePath == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "file_path is required to submit")
	}

	submittedAt := s.now().UTC()
	report.FilePath = &filePath
	report.Status = enums.ReportStatusSubmitted
	report.SubmissionDate = &submittedAt
	report.Action = enums.ReportActionNone

	if err := s.repo.Update(ctx, report); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit report")
	}
	return report.ID, nil
}

// parseSubmissionDate accepts RFC3339 or a bare ISO date-time without zone.
func parseSubmissionDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
