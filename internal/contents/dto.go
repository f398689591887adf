package contents

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
)

// SubmissionRow is one line of the flattened content×report listing: every
// report appears once, carrying its parent content's identity.
type SubmissionRow struct {
	ReportID        int64              `json:"report_id"`
	ContentID       int64              `json:"content_id"`
	ContentTitle    string             `json:"content_title"`
	ContentType     enums.ContentType  `json:"content_type"`
	SubmittedBy     int64              `json:"submitted_by"`
	SubmittedByName *string            `json:"submitted_by_name"`
	Status          enums.ReportStatus `json:"status"`
	SubmissionDate  *string            `json:"submission_date"`
	FilePath        *string            `json:"file_path"`
	Action          enums.ReportAction `json:"action"`
}

// ContentReport is one submission inside a content detail view.
type ContentReport struct {
	ReportID        int64              `json:"report_id"`
	ReportTitle     string             `json:"report_title"`
	SubmittedBy     int64              `json:"submitted_by"`
	SubmittedByName *string            `json:"submitted_by_name"`
	Status          enums.ReportStatus `json:"status"`
	SubmissionDate  *string            `json:"submission_date"`
	FilePath        *string            `json:"file_path"`
	Action          enums.ReportAction `json:"action"`
}

// ContentDetail is one content item plus all its submissions.
type ContentDetail struct {
	ContentID    int64             `json:"content_id"`
	ContentTitle string            `json:"content_title"`
	ContentType  enums.ContentType `json:"content_type"`
	Description  *string           `json:"description"`
	CreatedAt    *string           `json:"created_at"`
	Reports      []ContentReport   `json:"reports"`
	ReportsCount int               `json:"reports_count"`
}

// CreateContentInput captures the creation payload.
type CreateContentInput struct {
	Title       string  `json:"title"`
	ContentType string  `json:"content_type"`
	Description *string `json:"description"`
}

// UpdateContentInput carries a partial update; absent fields are untouched.
type UpdateContentInput struct {
	Title       types.Optional[string] `json:"title"`
	ContentType types.Optional[string] `json:"content_type"`
	Description types.Optional[string] `json:"description"`
}

// DetailFromModel maps a content row plus its submissions.
func DetailFromModel(c *models.Content, reports []ContentReport) *ContentDetail {
	if c == nil {
		return nil
	}
	if reports == nil {
		reports = []ContentReport{}
	}
	detail := &ContentDetail{
		ContentID:    c.ID,
		ContentTitle: c.Title,
		ContentType:  c.ContentType,
		Description:  c.Description,
		Reports:      reports,
		ReportsCount: len(reports),
	}
	if !c.CreatedAt.IsZero() {
		s := c.CreatedAt.UTC().Format(time.RFC3339)
		detail.CreatedAt = &s
	}
	return detail
}
