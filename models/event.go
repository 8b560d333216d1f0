// File: /models/event.go
package models

import (
	"time"
)

// Event types
const (
	EventTypeConference = "Conference"
	EventTypeMeetup     = "Meetup"
	EventTypeWorkshop   = "Workshop"
	EventTypeHackathon  = "Hackathon"
)

// Event formats
const (
	EventFormatOnline   = "online"
	EventFormatInPerson = "in-person"
	EventFormatHybrid   = "hybrid"
)

type Event struct {
	ID               string      `json:"id" gorm:"primaryKey;size:191"`
	Title            string      `json:"title" gorm:"not null;size:255"`
	Location         string      `json:"location" gorm:"not null;size:255"`
	Region           string      `json:"region" gorm:"size:100"`
	StartDate        time.Time   `json:"start_date" gorm:"not null;index"`
	EndDate          time.Time   `json:"end_date" gorm:"not null;index"`
	ShortDescription string      `json:"short_description" gorm:"size:500"`
	LongDescription  string      `json:"long_description" gorm:"type:text"`
	Type             string      `json:"type" gorm:"not null;size:20;index"`
	Format           string      `json:"format" gorm:"not null;size:20;index"`
	Tags             StringSlice `json:"tags" gorm:"type:json"`
	OrganizerID      string      `json:"organizer_id" gorm:"not null;size:191;index"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	Organizer User `json:"organizer,omitempty" gorm:"foreignKey:OrganizerID"`

	// Computed on read, not persisted
	AttendeeCount int64 `json:"attendee_count" gorm:"-"`
	SavedCount    int64 `json:"saved_count" gorm:"-"`
}

// SavedEvent marks an event a user bookmarked. One row per (user, event);
// toggling deletes or recreates the row.
type SavedEvent struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_saved_events_user_event"`
	EventID       string    `json:"event_id" gorm:"not null;size:191;uniqueIndex:uk_saved_events_user_event"`
	EmailReminder bool      `json:"email_reminder" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

// EventAttendee marks attendance. Presence of the row means attending;
// there is nothing to update, only create and delete.
type EventAttendee struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:uk_event_attendees_user_event"`
	EventID   string    `json:"event_id" gorm:"not null;size:191;uniqueIndex:uk_event_attendees_user_event"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Event Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
}

// IsValidEventType reports whether the value is a known event type.
func IsValidEventType(t string) bool {
	switch t {
	case EventTypeConference, EventTypeMeetup, EventTypeWorkshop, EventTypeHackathon:
		return true
	}
	return false
}

// IsValidEventFormat reports whether the value is a known event format.
func IsValidEventFormat(f string) bool {
	switch f {
	case EventFormatOnline, EventFormatInPerson, EventFormatHybrid:
		return true
	}
	return false
}
