package models

import "time"

// Team groups members; membership rows live in member_teams.
type Team struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TeamName    string    `gorm:"column:team_name;not null"`
	Description *string   `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
}

// TableName keeps the singular legacy table name.
func (Team) TableName() string {
	return "team"
}
