package members

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db"
	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ErrDuplicateEmail signals that the requested email already belongs to
// another member row.
var ErrDuplicateEmail = errors.New("duplicate email")

// Repository handles member persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to member operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every member ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID loads a member row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail loads a member by exact email match.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Create inserts the member inside a transaction so a concurrent duplicate
// registration resolves through the unique index rather than the pre-check.
func (r *Repository) Create(ctx context.Context, member *models.Member) error {
	if member == nil {
		return fmt.Errorf("member is required")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).Where("email = ?", member.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		return tx.Create(member).Error
	})
	if err != nil && db.IsUniqueViolation(err, "") {
		return ErrDuplicateEmail
	}
	return err
}

// Update saves the member, re-checking email uniqueness against other rows.
func (r *Repository) Update(ctx context.Context, member *models.Member) error {
	if member == nil {
		return fmt.Errorf("member is required")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).
			Where("email = ? AND id <> ?", member.Email, member.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		return tx.Save(member).Error
	})
	if err != nil && db.IsUniqueViolation(err, "") {
		return ErrDuplicateEmail
	}
	return err
}

// Delete removes the member row; association and report rows go with it via
// the schema's cascade rules.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateLastActive stamps the login time and reactivates the member.
func (r *Repository) UpdateLastActive(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_active": at, "status": "active"}).Error
}
