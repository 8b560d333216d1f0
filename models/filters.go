// File: /models/filters.go
package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sort orders for event listings
const (
	SortSoonest   = "soonest"
	SortRelevance = "relevance"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

// Pagination defaults
const (
	DefaultPerPage = 12
	MaxPerPage     = 50
)

const dateLayout = "2006-01-02"

// FieldError is a validation failure tied to a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TriState models an optional boolean query flag: absent, true or false.
type TriState int

const (
	TriUnset TriState = iota
	TriTrue
	TriFalse
)

// ParseTriState maps "true"/"1" and "false"/"0" to their states; anything
// else, including the empty string, is unset.
func ParseTriState(s string) TriState {
	switch strings.ToLower(s) {
	case "true", "1":
		return TriTrue
	case "false", "0":
		return TriFalse
	}
	return TriUnset
}

// EventFilter is the filter context for one event listing request. It is
// built from query parameters, validated once, and passed around explicitly;
// nothing request-scoped is held in shared state.
type EventFilter struct {
	Search       string
	Tag          string // legacy singular filter, folded into TagSet
	Tags         []string
	Type         string
	Format       string
	Region       string
	StartDate    *time.Time
	EndDate      *time.Time
	UpcomingOnly bool
	SortBy       string
	Page         int
	PerPage      int
}

// ParseEventFilter reads the filter context from the query string.
// upcoming_only defaults to true, sort_by to soonest. "All" and the empty
// string disable the type/format/region facets. Invalid enum values are
// rejected with a FieldError; no part of the filter is applied.
func ParseEventFilter(values url.Values) (EventFilter, error) {
	f := EventFilter{
		Search:       strings.TrimSpace(values.Get("search")),
		Tag:          strings.TrimSpace(values.Get("tag")),
		Type:         normalizeFacet(values.Get("type")),
		Format:       normalizeFacet(values.Get("format")),
		Region:       normalizeFacet(values.Get("region")),
		UpcomingOnly: true,
		SortBy:       SortSoonest,
		Page:         1,
		PerPage:      DefaultPerPage,
	}

	for _, raw := range append(values["tags"], values["tags[]"]...) {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}

	if s := values.Get("start_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return EventFilter{}, &FieldError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"}
		}
		f.StartDate = &t
	}
	if s := values.Get("end_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return EventFilter{}, &FieldError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"}
		}
		f.EndDate = &t
	}

	if s := values.Get("upcoming_only"); s != "" {
		f.UpcomingOnly = ParseTriState(s) != TriFalse
	}
	if s := values.Get("sort_by"); s != "" {
		f.SortBy = s
	}
	if v, err := strconv.Atoi(values.Get("page")); err == nil && v >= 1 {
		f.Page = v
	}
	if v, err := strconv.Atoi(values.Get("per_page")); err == nil && v >= 1 {
		f.PerPage = v
		if f.PerPage > MaxPerPage {
			f.PerPage = MaxPerPage
		}
	}

	if err := f.Validate(); err != nil {
		return EventFilter{}, err
	}
	return f, nil
}

// Validate checks the enum-valued facets. The error names the bad field.
func (f EventFilter) Validate() error {
	if f.Type != "" && !IsValidEventType(f.Type) {
		return &FieldError{Field: "type", Message: "must be one of Conference, Meetup, Workshop, Hackathon"}
	}
	if f.Format != "" && !IsValidEventFormat(f.Format) {
		return &FieldError{Field: "format", Message: "must be one of online, in-person, hybrid"}
	}
	switch f.SortBy {
	case SortSoonest, SortRelevance, SortNewest, SortOldest:
	default:
		return &FieldError{Field: "sort_by", Message: "must be one of soonest, relevance, newest, oldest"}
	}
	return nil
}

// TagSet is the union of the legacy singular tag and the tags list; an event
// matches the tag facet when its tag set contains any member of the union.
func (f EventFilter) TagSet() []string {
	var set StringSlice
	add := func(t string) {
		if t != "" && !set.Contains(t) {
			set = append(set, t)
		}
	}
	add(f.Tag)
	for _, t := range f.Tags {
		add(t)
	}
	return []string(set)
}

// WithoutTags returns a copy of the filter with the tag facets cleared,
// used by the tag aggregator to avoid filtering tags by themselves.
func (f EventFilter) WithoutTags() EventFilter {
	f.Tag = ""
	f.Tags = nil
	return f
}

// Offset is the row offset for the 1-indexed page.
func (f EventFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

func normalizeFacet(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "All") {
		return ""
	}
	return s
}

// UserFilter is the admin user-listing filter context.
type UserFilter struct {
	Search  string
	Role    string
	Active  TriState
	Page    int
	PerPage int
}

// ParseUserFilter reads the admin user listing filters from the query string.
func ParseUserFilter(values url.Values) (UserFilter, error) {
	f := UserFilter{
		Search:  strings.TrimSpace(values.Get("search")),
		Role:    normalizeFacet(values.Get("role")),
		Active:  ParseTriState(values.Get("active")),
		Page:    1,
		PerPage: DefaultPerPage,
	}
	if v, err := strconv.Atoi(values.Get("page")); err == nil && v >= 1 {
		f.Page = v
	}
	if v, err := strconv.Atoi(values.Get("per_page")); err == nil && v >= 1 {
		f.PerPage = v
		if f.PerPage > MaxPerPage {
			f.PerPage = MaxPerPage
		}
	}
	if f.Role != "" && !IsValidRole(f.Role) {
		return UserFilter{}, &FieldError{Field: "role", Message: "must be one of attendee, organizer, admin"}
	}
	return f, nil
}

// Offset is the row offset for the 1-indexed page.
func (f UserFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// ApplicationFilter is the admin speaker-application listing filter context.
type ApplicationFilter struct {
	Status  string
	Page    int
	PerPage int
}

// ParseApplicationFilter reads the application listing filters from the query string.
func ParseApplicationFilter(values url.Values) (ApplicationFilter, error) {
	f := ApplicationFilter{
		Status:  normalizeFacet(values.Get("status")),
		Page:    1,
		PerPage: DefaultPerPage,
	}
	if v, err := strconv.Atoi(values.Get("page")); err == nil && v >= 1 {
		f.Page = v
	}
	if v, err := strconv.Atoi(values.Get("per_page")); err == nil && v >= 1 {
		f.PerPage = v
		if f.PerPage > MaxPerPage {
			f.PerPage = MaxPerPage
		}
	}
	if f.Status != "" && !IsValidApplicationStatus(f.Status) {
		return ApplicationFilter{}, &FieldError{Field: "status", Message: "must be one of pending, approved, rejected"}
	}
	return f, nil
}

// Offset is the row offset for the 1-indexed page.
func (f ApplicationFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}
