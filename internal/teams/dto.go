package teams

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
)

// TeamView is the wire shape for both list and detail; the full member list
// is never exposed, only the count.
type TeamView struct {
	ID           int64   `json:"id"`
	TeamName     string  `json:"team_name"`
	Description  *string `json:"description"`
	CreatedAt    *string `json:"created_at"`
	IsActive     bool    `json:"is_active"`
	MembersCount int     `json:"members_count"`
}

// CreateTeamInput captures the creation payload.
type CreateTeamInput struct {
	TeamName    string  `json:"team_name"`
	Description *string `json:"description"`
}

// UpdateTeamInput carries a partial update; absent fields are untouched.
type UpdateTeamInput struct {
	TeamName    types.Optional[string] `json:"team_name"`
	Description types.Optional[string] `json:"description"`
	IsActive    types.Optional[bool]   `json:"is_active"`
}

// ViewFromModel maps a team row plus its membership count to the wire shape.
func ViewFromModel(t *models.Team, membersCount int) TeamView {
	view := TeamView{
		ID:           t.ID,
		TeamName:     t.TeamName,
		Description:  t.Description,
		IsActive:     t.IsActive,
		MembersCount: membersCount,
	}
	if !t.CreatedAt.IsZero() {
		s := t.CreatedAt.UTC().Format(time.RFC3339)
		view.CreatedAt = &s
	}
	return view
}
