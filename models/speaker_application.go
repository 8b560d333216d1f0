// File: /models/speaker_application.go
package models

import (
	"time"
)

// Speaker application statuses. Pending applications can be updated by the
// applicant; approved and rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// Proficiency levels, ordinal
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

type SpeakerApplication struct {
	ID               string      `json:"id" gorm:"primaryKey;size:191"`
	UserID           string      `json:"user_id" gorm:"not null;size:191;index"`
	Topic            string      `json:"topic" gorm:"not null;size:255"`
	Description      string      `json:"description" gorm:"type:text"`
	ProficiencyLevel string      `json:"proficiency_level" gorm:"not null;size:20"`
	ExpertiseTags    StringSlice `json:"expertise_tags" gorm:"type:json"`
	Status           string      `json:"status" gorm:"not null;default:'pending';size:20;index"`
	ReviewedByID     *string     `json:"reviewed_by_id" gorm:"size:191"`
	ReviewedAt       *time.Time  `json:"reviewed_at"`
	ReviewNotes      string      `json:"review_notes" gorm:"type:text"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`

	User       User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ReviewedBy *User `json:"reviewed_by,omitempty" gorm:"foreignKey:ReviewedByID"`
}

// IsPending reports whether the application can still be updated or reviewed.
func (a *SpeakerApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}

// IsValidApplicationStatus reports whether the value is a known status.
func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsValidProficiencyLevel reports whether the value is a known level.
func IsValidProficiencyLevel(p string) bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}
