package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"gorm.io/gorm"
)

type reportJoinRow struct {
	ID              int64
	ReportTitle     string
	Status          string
	SubmissionDate  *time.Time
	FilePath        *string
	Action          string
	ContentID       int64
	ContentTitle    *string
	SubmittedBy     int64
	SubmittedByName *string
}

// Repository handles report persistence and the parent-title joins.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to report operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const reportRowSelect = `report.id AS id,
	report.title AS report_title,
	report.status AS status,
	report.submission_date AS submission_date,
	report.file_path AS file_path,
	report.action AS action,
	report.content_id AS content_id,
	content.title AS content_title,
	report.submitted_by AS submitted_by,
	member.member_name AS submitted_by_name`

// ListRows returns every report with its parent titles, ordered by id.
func (r *Repository) ListRows(ctx context.Context) ([]ReportRow, error) {
	var rows []reportJoinRow
	if err := r.db.WithContext(ctx).
		Table("report").
		Select(reportRowSelect).
		Joins("LEFT JOIN content ON content.id = report.content_id").
		Joins("LEFT JOIN member ON member.id = report.submitted_by").
		Order("report.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toReportRow())
	}
	return result, nil
}

// FindRowByID returns one report with its parent titles.
func (r *Repository) FindRowByID(ctx context.Context, id int64) (*ReportRow, error) {
	var rows []reportJoinRow
	if err := r.db.WithContext(ctx).
		Table("report").
		Select(reportRowSelect).
		Joins("LEFT JOIN content ON content.id = report.content_id").
		Joins("LEFT JOIN member ON member.id = report.submitted_by").
		Where("report.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	row := rows[0].toReportRow()
	return &row, nil
}

// FindByID loads the bare report row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Create inserts a report row.
func (r *Repository) Create(ctx context.Context, report *models.Report) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	return r.db.WithContext(ctx).Create(report).Error
}

// Update saves the report row.
func (r *Repository) Update(ctx context.Context, report *models.Report) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete removes the report row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ContentExists reports whether the content row is present.
func (r *Repository) ContentExists(ctx context.Context, contentID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Content{}).
		Where("id = ?", contentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MemberExists reports whether the member row is present.
func (r *Repository) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (j reportJoinRow) toReportRow() ReportRow {
	return ReportRow{
		ID:              j.ID,
		ReportTitle:     j.ReportTitle,
		Status:          enums.ReportStatus(j.Status),
		SubmissionDate:  formatSubmissionDate(j.SubmissionDate),
		FilePath:        j.FilePath,
		Action:          enums.ReportAction(j.Action),
		ContentID:       j.ContentID,
		ContentTitle:    j.ContentTitle,
		SubmittedBy:     j.SubmittedBy,
		SubmittedByName: j.SubmittedByName,
	}
}

func formatSubmissionDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
