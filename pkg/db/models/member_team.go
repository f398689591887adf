package models

// MemberTeam is the Member↔Team association row. Both foreign keys cascade so
// deleting either endpoint removes the row.
type MemberTeam struct {
	MemberID int64 `gorm:"column:member_id;primaryKey"`
	TeamID   int64 `gorm:"column:team_id;primaryKey"`
}

func (MemberTeam) TableName() string {
	return "member_teams"
}
