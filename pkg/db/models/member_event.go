package models

// MemberEvent is the Member↔Event attendance row, removed when either
// endpoint is deleted.
type MemberEvent struct {
	MemberID int64 `gorm:"column:member_id;primaryKey"`
	EventID  int64 `gorm:"column:event_id;primaryKey"`
}

func (MemberEvent) TableName() string {
	return "members_events"
}
