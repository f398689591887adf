package models

import "time"

// Event is a scheduled club activity; attendance rows live in members_events.
type Event struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventName   string    `gorm:"column:event_name;not null"`
	EventType   string    `gorm:"column:event_type;not null"`
	EventDate   time.Time `gorm:"column:event_date;not null"`
	Location    *string   `gorm:"column:location"`
	Description *string   `gorm:"column:description"`
}

// TableName keeps the singular legacy table name.
func (Event) TableName() string {
	return "event"
}
