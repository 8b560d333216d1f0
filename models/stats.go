// File: /models/stats.go
package models

// DailyCount is one calendar day's worth of new rows. Days with no rows are
// not emitted.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// EventSaveCount ranks an event by how many users saved it.
type EventSaveCount struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
	Count   int64  `json:"count"`
}

// OrganizerCount ranks an organizer by owned events.
type OrganizerCount struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
}
