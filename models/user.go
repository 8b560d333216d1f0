// File: /models/user.go
package models

import (
	"time"
)

// User roles
const (
	RoleAttendee  = "attendee"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	Name          string      `json:"name" gorm:"not null;size:255"`
	Username      string      `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email         string      `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password      string      `json:"-" gorm:"not null;size:255"`
	Role          string      `json:"role" gorm:"not null;default:'attendee';size:20"`
	PreferredTags StringSlice `json:"preferred_tags" gorm:"type:json"` // attendee topical preferences
	IsActive      bool        `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relationships
	OrganizedEvents []Event              `json:"organized_events,omitempty" gorm:"foreignKey:OrganizerID"`
	SavedEvents     []SavedEvent         `json:"saved_events,omitempty" gorm:"foreignKey:UserID"`
	Applications    []SpeakerApplication `json:"applications,omitempty" gorm:"foreignKey:UserID"`
}

// IsValidRole reports whether the value is a known user role.
func IsValidRole(role string) bool {
	switch role {
	case RoleAttendee, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}
