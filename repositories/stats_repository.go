// File: /repositories/stats_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"eventloop-api/models"
)

// StatsRepository runs the dashboard aggregation queries. Every method is a
// single read; no state is kept between calls.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type groupCountRow struct {
	Key   string
	Count int64
}

func (r *StatsRepository) groupCount(model interface{}, column string) (map[string]int64, error) {
	var rows []groupCountRow
	err := r.db.Model(model).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

func (r *StatsRepository) CountUsersByRole() (map[string]int64, error) {
	return r.groupCount(&models.User{}, "role")
}

func (r *StatsRepository) CountUsersSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountEvents() (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountUpcomingEvents(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("start_date > ?", now).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountPastEvents(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("end_date < ?", now).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountCurrentEvents(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).
		Where("start_date <= ? AND end_date >= ?", now, now).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountEventsByType() (map[string]int64, error) {
	return r.groupCount(&models.Event{}, "type")
}

func (r *StatsRepository) CountEventsByFormat() (map[string]int64, error) {
	return r.groupCount(&models.Event{}, "format")
}

func (r *StatsRepository) CountApplicationsByStatus() (map[string]int64, error) {
	return r.groupCount(&models.SpeakerApplication{}, "status")
}

func (r *StatsRepository) CountApplicationsSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.SpeakerApplication{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountSavedEvents() (int64, error) {
	var count int64
	err := r.db.Model(&models.SavedEvent{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountDistinctSavers() (int64, error) {
	var count int64
	err := r.db.Model(&models.SavedEvent{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) TopSavedEvents(limit int) ([]models.EventSaveCount, error) {
	var rows []models.EventSaveCount
	err := r.db.Model(&models.SavedEvent{}).
		Select("saved_events.event_id AS event_id, events.title AS title, COUNT(*) AS count").
		Joins("JOIN events ON events.id = saved_events.event_id").
		Group("saved_events.event_id, events.title").
		Order("count DESC, event_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) dailyCounts(model interface{}, since time.Time) ([]models.DailyCount, error) {
	var rows []models.DailyCount
	err := r.db.Model(model).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

// DailyNewUsers returns per-day signup counts since the window start. Days
// with no signups are omitted, not zero-filled.
func (r *StatsRepository) DailyNewUsers(since time.Time) ([]models.DailyCount, error) {
	return r.dailyCounts(&models.User{}, since)
}

// DailyNewEvents returns per-day event creation counts since the window start.
func (r *StatsRepository) DailyNewEvents(since time.Time) ([]models.DailyCount, error) {
	return r.dailyCounts(&models.Event{}, since)
}

func (r *StatsRepository) AllEventTags() ([]models.StringSlice, error) {
	var rows []models.Event
	if err := r.db.Model(&models.Event{}).Select("tags").Find(&rows).Error; err != nil {
		return nil, err
	}

	sets := make([]models.StringSlice, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, row.Tags)
	}
	return sets, nil
}

func (r *StatsRepository) TopOrganizers(limit int) ([]models.OrganizerCount, error) {
	var rows []models.OrganizerCount
	err := r.db.Model(&models.Event{}).
		Select("users.id AS user_id, users.name AS name, COUNT(*) AS count").
		Joins("JOIN users ON users.id = events.organizer_id").
		Group("users.id, users.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
