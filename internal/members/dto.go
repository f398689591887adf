package members

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/enums"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
)

const birthdayFormat = "2006-01-02"

// MemberSummary is the list-view projection. The password hash never appears
// in any serialized shape.
type MemberSummary struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	Level          int                `json:"level"`
	Status         enums.MemberStatus `json:"status"`
	LastActive     *string            `json:"last_active"`
	Major          *string            `json:"major"`
	ProfilePicture *string            `json:"profile_picture"`
}

// MemberDetail is the single-member projection, adding the birthday.
type MemberDetail struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Role           string             `json:"role"`
	Level          int                `json:"level"`
	Status         enums.MemberStatus `json:"status"`
	Major          *string            `json:"major"`
	Birthday       *string            `json:"birthday"`
	ProfilePicture *string            `json:"profile_picture"`
	LastActive     *string            `json:"last_active"`
}

// CreateMemberInput captures the staff-facing member creation payload.
type CreateMemberInput struct {
	MemberName string  `json:"member_name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Major      *string `json:"major"`
	Level      int     `json:"level"`
	Birthday   string  `json:"birthday"`
}

// UpdateMemberInput carries a partial update; absent fields are untouched.
type UpdateMemberInput struct {
	MemberName types.Optional[string] `json:"member_name"`
	Email      types.Optional[string] `json:"email"`
	Password   types.Optional[string] `json:"password"`
	Role       types.Optional[string] `json:"role"`
	Major      types.Optional[string] `json:"major"`
	Level      types.Optional[int]    `json:"level"`
	Status     types.Optional[string] `json:"status"`
	Birthday   types.Optional[string] `json:"birthday"`
}

// SummaryFromModel maps the persisted member into the list projection.
func SummaryFromModel(m *models.Member) MemberSummary {
	return MemberSummary{
		ID:             m.ID,
		Name:           m.MemberName,
		Email:          m.Email,
		Role:           m.Role,
		Level:          m.Level,
		Status:         m.Status,
		LastActive:     formatTimestamp(m.LastActive),
		Major:          m.Major,
		ProfilePicture: m.ProfilePicture,
	}
}

// DetailFromModel maps the persisted member into the detail projection.
func DetailFromModel(m *models.Member) *MemberDetail {
	if m == nil {
		return nil
	}
	return &MemberDetail{
		ID:             m.ID,
		Name:           m.MemberName,
		Email:          m.Email,
		Role:           m.Role,
		Level:          m.Level,
		Status:         m.Status,
		Major:          m.Major,
		Birthday:       formatDate(m.Birthday),
		ProfilePicture: m.ProfilePicture,
		LastActive:     formatTimestamp(m.LastActive),
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(birthdayFormat)
	return &s
}
