// File: /services/stats_service.go
package services

import (
	"time"

	"eventloop-api/models"
)

// StatsRepository is the read-only aggregation surface the dashboard needs
// from the store: row counts, group-by counts and small top-N rankings.
type StatsRepository interface {
	CountUsersByRole() (map[string]int64, error)
	CountUsersSince(since time.Time) (int64, error)

	CountEvents() (int64, error)
	CountUpcomingEvents(now time.Time) (int64, error)
	CountPastEvents(now time.Time) (int64, error)
	CountCurrentEvents(now time.Time) (int64, error)
	CountEventsByType() (map[string]int64, error)
	CountEventsByFormat() (map[string]int64, error)

	CountApplicationsByStatus() (map[string]int64, error)
	CountApplicationsSince(since time.Time) (int64, error)

	CountSavedEvents() (int64, error)
	CountDistinctSavers() (int64, error)
	TopSavedEvents(limit int) ([]models.EventSaveCount, error)

	DailyNewUsers(since time.Time) ([]models.DailyCount, error)
	DailyNewEvents(since time.Time) ([]models.DailyCount, error)

	AllEventTags() ([]models.StringSlice, error)
	TopOrganizers(limit int) ([]models.OrganizerCount, error)
}

type UserStats struct {
	ByRole       map[string]int64 `json:"by_role"`
	NewLast7Days int64            `json:"new_last_7_days"`
}

type EventStats struct {
	Total    int64            `json:"total"`
	Upcoming int64            `json:"upcoming"`
	Past     int64            `json:"past"`
	Current  int64            `json:"current"`
	ByType   map[string]int64 `json:"by_type"`
	ByFormat map[string]int64 `json:"by_format"`
}

type ApplicationStats struct {
	ByStatus     map[string]int64 `json:"by_status"`
	NewLast7Days int64            `json:"new_last_7_days"`
}

type EngagementStats struct {
	TotalSaves     int64                   `json:"total_saves"`
	UsersWithSaves int64                   `json:"users_with_saves"`
	TopSavedEvents []models.EventSaveCount `json:"top_saved_events"`
}

type TrendStats struct {
	NewUsersDaily  []models.DailyCount `json:"new_users_daily"`
	NewEventsDaily []models.DailyCount `json:"new_events_daily"`
}

// DashboardStats is the admin dashboard payload. It is a snapshot computed
// from current persisted state on every call; nothing is cached.
type DashboardStats struct {
	Users         UserStats               `json:"users"`
	Events        EventStats              `json:"events"`
	Applications  ApplicationStats        `json:"speaker_applications"`
	Engagement    EngagementStats         `json:"engagement"`
	Trends        TrendStats              `json:"trends"`
	PopularTags   []TagCount              `json:"popular_tags"`
	TopOrganizers []models.OrganizerCount `json:"top_organizers"`
}

const (
	topSavedEventsLimit = 5
	popularTagsLimit    = 10
	topOrganizersLimit  = 10
	trendWindowDays     = 30
	recentWindowDays    = 7
)

type StatsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Dashboard assembles all admin dashboard aggregates as of now.
func (s *StatsService) Dashboard(now time.Time) (*DashboardStats, error) {
	weekAgo := now.AddDate(0, 0, -recentWindowDays)
	monthAgo := now.AddDate(0, 0, -trendWindowDays)

	stats := &DashboardStats{}
	var err error

	if stats.Users.ByRole, err = s.repo.CountUsersByRole(); err != nil {
		return nil, err
	}
	if stats.Users.NewLast7Days, err = s.repo.CountUsersSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.Events.Total, err = s.repo.CountEvents(); err != nil {
		return nil, err
	}
	if stats.Events.Upcoming, err = s.repo.CountUpcomingEvents(now); err != nil {
		return nil, err
	}
	if stats.Events.Past, err = s.repo.CountPastEvents(now); err != nil {
		return nil, err
	}
	if stats.Events.Current, err = s.repo.CountCurrentEvents(now); err != nil {
		return nil, err
	}
	if stats.Events.ByType, err = s.repo.CountEventsByType(); err != nil {
		return nil, err
	}
	if stats.Events.ByFormat, err = s.repo.CountEventsByFormat(); err != nil {
		return nil, err
	}

	if stats.Applications.ByStatus, err = s.repo.CountApplicationsByStatus(); err != nil {
		return nil, err
	}
	if stats.Applications.NewLast7Days, err = s.repo.CountApplicationsSince(weekAgo); err != nil {
		return nil, err
	}

	if stats.Engagement.TotalSaves, err = s.repo.CountSavedEvents(); err != nil {
		return nil, err
	}
	if stats.Engagement.UsersWithSaves, err = s.repo.CountDistinctSavers(); err != nil {
		return nil, err
	}
	if stats.Engagement.TopSavedEvents, err = s.repo.TopSavedEvents(topSavedEventsLimit); err != nil {
		return nil, err
	}

	if stats.Trends.NewUsersDaily, err = s.repo.DailyNewUsers(monthAgo); err != nil {
		return nil, err
	}
	if stats.Trends.NewEventsDaily, err = s.repo.DailyNewEvents(monthAgo); err != nil {
		return nil, err
	}

	tagSets, err := s.repo.AllEventTags()
	if err != nil {
		return nil, err
	}
	stats.PopularTags = TopTags(AggregateTags(tagSets), popularTagsLimit)

	if stats.TopOrganizers, err = s.repo.TopOrganizers(topOrganizersLimit); err != nil {
		return nil, err
	}

	return stats, nil
}
