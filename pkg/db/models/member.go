package models

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/enums"
)

// Member is the canonical identity entity. PasswordHash never leaves the
// persistence layer in serialized form.
type Member struct {
	ID             int64              `gorm:"column:id;primaryKey;autoIncrement"`
	MemberName     string             `gorm:"column:member_name;not null"`
	Email          string             `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash   string             `gorm:"column:password_hash;not null"`
	Role           string             `gorm:"column:role;not null"`
	Level          int                `gorm:"column:level;not null;default:0"`
	Major          *string            `gorm:"column:major"`
	Birthday       *time.Time         `gorm:"column:birthday"`
	LastActive     *time.Time         `gorm:"column:last_active"`
	ProfilePicture *string            `gorm:"column:profile_picture"`
	Status         enums.MemberStatus `gorm:"column:status;not null"`
}

// TableName keeps the singular legacy table name.
func (Member) TableName() string {
	return "member"
}
