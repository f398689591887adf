package contents

import (
	"context"
	"fmt"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"gorm.io/gorm"
)

// submissionJoinRow is the raw projection of the report/content/member join.
type submissionJoinRow struct {
	ReportID        int64
	ReportTitle     string
	ContentID       int64
	ContentTitle    string
	ContentType     string
	SubmittedBy     int64
	SubmittedByName *string
	Status          string
	SubmissionDate  *time.Time
	FilePath        *string
	Action          string
}

// Repository handles content persistence and the joined submission listings.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to content operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a content row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Content, error) {
	var content models.Content
	if err := r.db.WithContext(ctx).First(&content, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// Create inserts a content row.
func (r *Repository) Create(ctx context.Context, content *models.Content) error {
	if content == nil {
		return fmt.Errorf("content is required")
	}
	return r.db.WithContext(ctx).Create(content).Error
}

// Update saves the content row.
func (r *Repository) Update(ctx context.Context, content *models.Content) error {
	if content == nil {
		return fmt.Errorf("content is required")
	}
	return r.db.WithContext(ctx).Save(content).Error
}

// Delete removes the content row; its reports follow via cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Content{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListSubmissionRows returns every report flattened with its parent content,
// ordered the way the legacy listing was: by content creation, then report id.
func (r *Repository) ListSubmissionRows(ctx context.Context) ([]SubmissionRow, error) {
	var rows []submissionJoinRow
	if err := r.db.WithContext(ctx).
		Table("report").
		Select(`report.id AS report_id,
			content.id AS content_id,
			content.title AS content_title,
			content.content_type AS content_type,
			report.submitted_by AS submitted_by,
			member.member_name AS submitted_by_name,
			report.status AS status,
			report.submission_date AS submission_date,
			report.file_path AS file_path,
			report.action AS action`).
		Joins("JOIN content ON content.id = report.content_id").
		Joins("LEFT JOIN member ON member.id = report.submitted_by").
		Order("content.created_at, report.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]SubmissionRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toSubmissionRow())
	}
	return result, nil
}

// ReportsForContent returns the submissions attached to one content item.
func (r *Repository) ReportsForContent(ctx context.Context, contentID int64) ([]ContentReport, error) {
	var rows []submissionJoinRow
	if err := r.db.WithContext(ctx).
		Table("report").
		Select(`report.id AS report_id,
			report.title AS report_title,
			report.submitted_by AS submitted_by,
			member.member_name AS submitted_by_name,
			report.status AS status,
			report.submission_date AS submission_date,
			report.file_path AS file_path,
			report.action AS action`).
		Joins("LEFT JOIN member ON member.id = report.submitted_by").
		Where("report.content_id = ?", contentID).
		Order("report.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ContentReport, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toContentReport())
	}
	return result, nil
}

func (j submissionJoinRow) toSubmissionRow() SubmissionRow {
	return SubmissionRow{
		ReportID:        j.ReportID,
		ContentID:       j.ContentID,
		ContentTitle:    j.ContentTitle,
		ContentType:     enums.ContentType(j.ContentType),
		SubmittedBy:     j.SubmittedBy,
		SubmittedByName: j.SubmittedByName,
		Status:          enums.ReportStatus(j.Status),
		SubmissionDate:  formatSubmissionDate(j.SubmissionDate),
		FilePath:        j.FilePath,
		Action:          enums.ReportAction(j.Action),
	}
}

func (j submissionJoinRow) toContentReport() ContentReport {
	return ContentReport{
		ReportID:        j.ReportID,
		ReportTitle:     j.ReportTitle,
		SubmittedBy:     j.SubmittedBy,
		SubmittedByName: j.SubmittedByName,
		Status:          enums.ReportStatus(j.Status),
		SubmissionDate:  formatSubmissionDate(j.SubmissionDate),
		FilePath:        j.FilePath,
		Action:          enums.ReportAction(j.Action),
	}
}

func formatSubmissionDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
