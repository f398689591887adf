package events

import (
	"context"
	"fmt"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles event persistence and the members_events association.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to event operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every event ordered by date.
func (r *Repository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("event_date").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID loads an event row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event row.
func (r *Repository) Create(ctx context.Context, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// Update saves the event row.
func (r *Repository) Update(ctx context.Context, event *models.Event) error {
	if event == nil {
		return fmt.Errorf("event is required")
	}
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete removes the event row; attendance rows follow via cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AttendeeCounts returns attendance counts keyed by event id.
func (r *Repository) AttendeeCounts(ctx context.Context) (map[int64]int, error) {
	type row struct {
		EventID int64
		Total   int
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Table("members_events").
		Select("event_id, count(*) as total").
		Group("event_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(rows))
	for _, item := range rows {
		counts[item.EventID] = item.Total
	}
	return counts, nil
}

// AttendeeIDs returns the member ids attending the event.
func (r *Repository) AttendeeIDs(ctx context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberEvent{}).
		Where("event_id = ?", eventID).
		Order("member_id").
		Pluck("member_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// AddAttendee inserts an attendance row; re-adding is a no-op.
func (r *Repository) AddAttendee(ctx context.Context, eventID, memberID int64) error {
	var existing int64
	if err := r.db.WithContext(ctx).
		Model(&models.MemberEvent{}).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.MemberEvent{MemberID: memberID, EventID: eventID}).Error
}

// RemoveAttendee deletes the attendance row.
func (r *Repository) RemoveAttendee(ctx context.Context, eventID, memberID int64) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND member_id = ?", eventID, memberID).
		Delete(&models.MemberEvent{})
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
