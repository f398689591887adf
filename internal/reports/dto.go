package reports

import (
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
)

// ReportRow is the report list and detail shape: the row itself plus the
// titles of its parent content and submitting member. The parents are left
// joined, so both can come back null.
type ReportRow struct {
	ID              int64              `json:"id"`
	ReportTitle     string             `json:"report_title"`
	Status          enums.ReportStatus `json:"status"`
	SubmissionDate  *string            `json:"submission_date"`
	FilePath        *string            `json:"file_path"`
	Action          enums.ReportAction `json:"action"`
	ContentID       int64              `json:"content_id"`
	ContentTitle    *string            `json:"content_title"`
	SubmittedBy     int64              `json:"submitted_by"`
	SubmittedByName *string            `json:"submitted_by_name"`
}

// CreateReportInput captures the creation payload.
type CreateReportInput struct {
	ContentID   int64  `json:"content_id"`
	SubmittedBy int64  `json:"submitted_by"`
	Title       string `json:"title"`
}

// UpdateReportInput carries a partial update; absent fields are untouched.
// A null submission_date clears the stored date.
type UpdateReportInput struct {
	Title          types.Optional[string] `json:"title"`
	Status         types.Optional[string] `json:"status"`
	Action         types.Optional[string] `json:"action"`
	FilePath       types.Optional[string] `json:"file_path"`
	SubmissionDate types.Optional[string] `json:"submission_date"`
}

// SubmitReportInput carries the submission payload.
type SubmitReportInput struct {
	FilePath string `json:"file_path"`
}
