package models

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/enums"
)

// Content is an item members submit reports against. Deleting a content row
// cascades to its reports.
type Content struct {
	ID          int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string            `gorm:"column:title;not null"`
	ContentType enums.ContentType `gorm:"column:content_type;not null"`
	Description *string           `gorm:"column:description"`
	CreatedAt   time.Time         `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName keeps the singular legacy table name.
func (Content) TableName() string {
	return "content"
}
