package teams

import (
	"context"
	"fmt"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles team persistence and the member_teams association.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to team operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every team ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.WithContext(ctx).Order("id").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// FindByID loads a team row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Create inserts a team row.
func (r *Repository) Create(ctx context.Context, team *models.Team) error {
	if team == nil {
		return fmt.Errorf("team is required")
	}
	return r.db.WithContext(ctx).Create(team).Error
}

// Update saves the team row.
func (r *Repository) Update(ctx context.Context, team *models.Team) error {
	if team == nil {
		return fmt.Errorf("team is required")
	}
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete removes the team row; association rows follow via cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MemberCounts returns membership counts keyed by team id.
func (r *Repository) MemberCounts(ctx context.Context) (map[int64]int, error) {
	type row struct {
		TeamID int64
		Total  int
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Table("member_teams").
		Select("team_id, count(*) as total").
		Group("team_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(rows))
	for _, item := range rows {
		counts[item.TeamID] = item.Total
	}
	return counts, nil
}

// CountMembers returns the membership count for a single team.
func (r *Repository) CountMembers(ctx context.Context, teamID int64) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberTeam{}).
		Where("team_id = ?", teamID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// AddMember inserts an association row; re-adding is a no-op.
func (r *Repository) AddMember(ctx context.Context, teamID, memberID int64) error {
	var existing int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberTeam{}).
		Where("team_id = ? AND member_id = ?", teamID, memberID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.MemberTeam{MemberID: memberID, TeamID: teamID}).Error
}

// RemoveMember deletes the association row.
func (r *Repository) RemoveMember(ctx context.Context, teamID, memberID int64) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND member_id = ?", teamID, memberID).
		Delete(&models.MemberTeam{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MemberExists reports whether the member row is present.
func (r *Repository) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
