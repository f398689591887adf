package models

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/enums"
)

// Report is one member's submission against a content item. Both parents
// cascade their deletes onto this row.
type Report struct {
	ID             int64              `gorm:"column:id;primaryKey;autoIncrement"`
	ContentID      int64              `gorm:"column:content_id;not null"`
	SubmittedBy    int64              `gorm:"column:submitted_by;not null"`
	Title          string             `gorm:"column:title;not null"`
	Status         enums.ReportStatus `gorm:"column:status;not null"`
	SubmissionDate *time.Time         `gorm:"column:submission_date"`
	FilePath       *string            `gorm:"column:file_path"`
	Action         enums.ReportAction `gorm:"column:action;not null"`
}

// TableName keeps the singular legacy table name.
func (Report) TableName() string {
	return "report"
}
