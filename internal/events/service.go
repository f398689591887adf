package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	pkgerrors "github.com/memberhubhq/memberhub-backend/pkg/errors"
	"gorm.io/gorm"
)

type eventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	AttendeeCounts(ctx context.Context) (map[int64]int, error)
	AttendeeIDs(ctx context.Context, eventID int64) ([]int64, error)
	AddAttendee(ctx context.Context, eventID, memberID int64) error
	RemoveAttendee(ctx context.Context, eventID, memberID int64) error
	MemberExists(ctx context.Context, memberID int64) (bool, error)
}

// Service exposes the event resource operations.
type Service interface {
	List(ctx context.Context) ([]EventSummary, error)
	GetByID(ctx context.Context, id int64) (*EventDetail, error)
	Create(ctx context.Context, input CreateEventInput) (*CreatedEvent, error)
	Update(ctx context.Context, id int64, input UpdateEventInput) (int64, error)
	Delete(ctx context.Context, id int64) error
	AddAttendee(ctx context.Context, eventID, memberID int64) error
	RemoveAttendee(ctx context.Context, eventID, memberID int64) error
}

type service struct {
	repo eventRepository
}

// NewService builds an event service with the provided repository.
func NewService(repo eventRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("event repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]EventSummary, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	counts, err := s.repo.AttendeeCounts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count attendees")
	}
	summaries := make([]EventSummary, 0, len(events))
	for i := range events {
		summaries = append(summaries, SummaryFromModel(&events[i], counts[events[i].ID]))
	}
	return summaries, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*EventDetail, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load event")
	}
	ids, err := s.repo.AttendeeIDs(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list attendees")
	}
	return DetailFromModel(event, ids), nil
}

func (s *service) Create(ctx context.Context, input CreateEventInput) (*CreatedEvent, error) {
	name := strings.TrimSpace(input.EventName)
	eventType := strings.TrimSpace(input.EventType)
	if name == "" || eventType == "" || input.EventDate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event_name, event_type and event_date are required")
	}

	date, err := time.Parse(EventDateFormat, input.EventDate)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event_date must be in format 'YYYY-MM-DD HH:MM'")
	}

	event := &models.Event{
		EventName:   name,
		EventType:   eventType,
		EventDate:   date,
		Location:    input.Location,
		Description: input.Description,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create event")
	}

	return &CreatedEvent{
		ID:          event.ID,
		Name:        event.EventName,
		Type:        event.EventType,
		Date:        event.EventDate.UTC().Format(time.RFC3339),
		Location:    event.Location,
		Description: event.Description,
	}, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateEventInput) (int64, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load event")
	}

	if input.EventName.Set {
		event.EventName = input.EventName.Value
	}
	if input.EventType.Set {
		event.EventType = input.EventType.Value
	}
	if input.EventDate.Set {
		date, err := time.Parse(EventDateFormat, input.EventDate.Value)
		if err != nil {
			return 0, pkgerrors.New(pkgerrors.CodeValidation, "event_date must be in format 'YYYY-MM-DD HH:MM'")
		}
		event.EventDate = date
	}
	if input.Location.Set {
		event.Location = input.Location.Ptr()
	}
	if input.Description.Set {
		event.Description = input.Description.Ptr()
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update event")
	}
	return event.ID, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete event")
	}
	return nil
}

func (s *service) AddAttendee(ctx context.Context, eventID, memberID int64) error {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Event not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load event")
	}
	ok, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup member")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Member not found")
	}
	if err := s.repo.AddAttendee(ctx, eventID, memberID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add attendee")
	}
	return nil
}

func (s *service) RemoveAttendee(ctx context.Context, eventID, memberID int64) error {
	if err := s.repo.RemoveAttendee(ctx, eventID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Attendance not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove attendee")
	}
	return nil
}
