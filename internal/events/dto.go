package events

import (
	"time"

	"github.com/memberhubhq/memberhub-backend/pkg/db/models"
	"github.com/memberhubhq/memberhub-backend/pkg/types"
)

// EventDateFormat is the fixed textual pattern clients send event dates in.
const EventDateFormat = "2006-01-02 15:04"

// EventSummary is the list-view shape. "attendes" keeps the legacy key the
// frontend already consumes.
type EventSummary struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Attendees   int     `json:"attendes"`
}

// EventDetail swaps the attendee count for the attendee id list.
type EventDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Attendees   []int64 `json:"attendes"`
}

// CreatedEvent echoes the stored row back from create.
type CreatedEvent struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// CreateEventInput captures the creation payload; the date stays textual
// until the service parses it.
type CreateEventInput struct {
	EventName   string  `json:"event_name"`
	EventType   string  `json:"event_type"`
	EventDate   string  `json:"event_date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// UpdateEventInput carries a partial update; absent fields are untouched.
type UpdateEventInput struct {
	EventName   types.Optional[string] `json:"event_name"`
	EventType   types.Optional[string] `json:"event_type"`
	EventDate   types.Optional[string] `json:"event_date"`
	Location    types.Optional[string] `json:"location"`
	Description types.Optional[string] `json:"description"`
}

// SummaryFromModel maps an event row plus its attendance count.
func SummaryFromModel(e *models.Event, attendees int) EventSummary {
	return EventSummary{
		ID:          e.ID,
		Name:        e.EventName,
		Type:        e.EventType,
		Date:        formatEventDate(e.EventDate),
		Location:    e.Location,
		Description: e.Description,
		Attendees:   attendees,
	}
}

// DetailFromModel maps an event row plus its attendee ids.
func DetailFromModel(e *models.Event, attendeeIDs []int64) *EventDetail {
	if e == nil {
		return nil
	}
	if attendeeIDs == nil {
		attendeeIDs = []int64{}
	}
	return &EventDetail{
		ID:          e.ID,
		Name:        e.EventName,
		Type:        e.EventType,
		Date:        formatEventDate(e.EventDate),
		Location:    e.Location,
		Description: e.Description,
		Attendees:   attendeeIDs,
	}
}

func formatEventDate(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
