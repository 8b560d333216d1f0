// File: /repositories/event_repository.go
package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eventloop-api/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List executes the filter context against the events table and returns one
// page plus the total match count. Pages past the end come back empty.
func (r *EventRepository) List(filter models.EventFilter, now time.Time) ([]models.Event, int64, error) {
	query := r.applyFilter(r.db.Model(&models.Event{}), filter, now)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := r.applySort(query, filter).
		Preload("Organizer").
		Offset(filter.Offset()).
		Limit(filter.PerPage).
		Find(&events).Error
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachCounts(events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// TagSets returns the tag column of every event matching the filter context.
// The caller strips the tag facets first so tags are not filtered by themselves.
func (r *EventRepository) TagSets(filter models.EventFilter, now time.Time) ([]models.StringSlice, error) {
	var rows []models.Event
	err := r.applyFilter(r.db.Model(&models.Event{}), filter, now).
		Select("tags").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	sets := make([]models.StringSlice, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, row.Tags)
	}
	return sets, nil
}

// GetByID loads one event with its organizer and engagement counts.
func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("Organizer").First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}

	events := []models.Event{event}
	if err := r.attachCounts(events); err != nil {
		return nil, err
	}
	return &events[0], nil
}

func (r *EventRepository) applyFilter(query *gorm.DB, filter models.EventFilter, now time.Time) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(long_description) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	// Tag facet: event matches when its tag set contains any member of
	// the union of the legacy singular tag and the tags list.
	if set := filter.TagSet(); len(set) > 0 {
		cond := r.db.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", set[0])
		for _, tag := range set[1:] {
			cond = cond.Or("JSON_CONTAINS(tags, JSON_QUOTE(?))", tag)
		}
		query = query.Where(cond)
	}

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Format != "" {
		query = query.Where("format = ?", filter.Format)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}

	// Date range bounds the event's start_date; the end bound is inclusive
	// of the whole day.
	if filter.StartDate != nil {
		query = query.Where("start_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("start_date < ?", filter.EndDate.Add(24*time.Hour))
	}

	if filter.UpcomingOnly {
		query = query.Where("end_date >= ?", now)
	}

	return query
}

func (r *EventRepository) applySort(query *gorm.DB, filter models.EventFilter) *gorm.DB {
	switch filter.SortBy {
	case models.SortNewest:
		return query.Order("created_at DESC")
	case models.SortOldest:
		return query.Order("created_at ASC")
	case models.SortRelevance:
		if filter.Search != "" {
			pattern := "%" + strings.ToLower(filter.Search) + "%"
			return query.Clauses(clause.OrderBy{
				Expression: clause.Expr{
					SQL:                "CASE WHEN LOWER(title) LIKE ? THEN 0 ELSE 1 END, start_date ASC",
					Vars:               []interface{}{pattern},
					WithoutParentheses: true,
				},
			})
		}
		// Without a search term relevance degrades to soonest.
		return query.Order("start_date ASC")
	default: // soonest
		return query.Order("start_date ASC")
	}
}

type eventCountRow struct {
	EventID string
	Count   int64
}

// attachCounts fills the computed attendee and saved counts for a page of events.
func (r *EventRepository) attachCounts(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, len(events))
	index := make(map[string]int, len(events))
	for i, event := range events {
		ids[i] = event.ID
		index[event.ID] = i
	}

	var attendees []eventCountRow
	err := r.db.Model(&models.EventAttendee{}).
		Select("event_id, COUNT(*) as count").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&attendees).Error
	if err != nil {
		return err
	}
	for _, row := range attendees {
		events[index[row.EventID]].AttendeeCount = row.Count
	}

	var saves []eventCountRow
	err = r.db.Model(&models.SavedEvent{}).
		Select("event_id, COUNT(*) as count").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&saves).Error
	if err != nil {
		return err
	}
	for _, row := range saves {
		events[index[row.EventID]].SavedCount = row.Count
	}

	return nil
}
