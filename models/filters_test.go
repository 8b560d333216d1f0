// File: /models/filters_test.go
package models

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventFilter_Defaults(t *testing.T) {
	f, err := ParseEventFilter(url.Values{})
	require.NoError(t, err)

	assert.True(t, f.UpcomingOnly)
	assert.Equal(t, SortSoonest, f.SortBy)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPerPage, f.PerPage)
	assert.Empty(t, f.TagSet())
}

func TestParseEventFilter_Facets(t *testing.T) {
	values := url.Values{}
	values.Set("search", "  gophercon ")
	values.Set("type", "Conference")
	values.Set("format", "hybrid")
	values.Set("region", "Europe")
	values.Set("upcoming_only", "false")
	values.Set("sort_by", "newest")
	values.Set("page", "3")
	values.Set("per_page", "6")

	f, err := ParseEventFilter(values)
	require.NoError(t, err)

	assert.Equal(t, "gophercon", f.Search)
	assert.Equal(t, "Conference", f.Type)
	assert.Equal(t, "hybrid", f.Format)
	assert.Equal(t, "Europe", f.Region)
	assert.False(t, f.UpcomingOnly)
	assert.Equal(t, SortNewest, f.SortBy)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 6, f.PerPage)
	assert.Equal(t, 12, f.Offset())
}

func TestParseEventFilter_AllDisablesFacet(t *testing.T) {
	values := url.Values{}
	values.Set("type", "All")
	values.Set("format", "all")
	values.Set("region", "All")

	f, err := ParseEventFilter(values)
	require.NoError(t, err)

	assert.Empty(t, f.Type)
	assert.Empty(t, f.Format)
	assert.Empty(t, f.Region)
}

func TestParseEventFilter_TagSetUnion(t *testing.T) {
	values := url.Values{}
	values.Set("tag", "go")
	values.Add("tags", "rust")
	values.Add("tags", "go,wasm")
	values.Add("tags[]", "devops")

	f, err := ParseEventFilter(values)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "rust", "wasm", "devops"}, f.TagSet())

	stripped := f.WithoutTags()
	assert.Empty(t, stripped.TagSet())
	assert.Equal(t, f.Search, stripped.Search)
}

func TestParseEventFilter_Dates(t *testing.T) {
	values := url.Values{}
	values.Set("start_date", "2025-09-01")
	values.Set("end_date", "2025-09-30")

	f, err := ParseEventFilter(values)
	require.NoError(t, err)
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), *f.StartDate)
	assert.Equal(t, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), *f.EndDate)
}

func TestParseEventFilter_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantField string
	}{
		{"bad type", "type", "Festival", "type"},
		{"bad format", "format", "virtual", "format"},
		{"bad sort", "sort_by", "alphabetical", "sort_by"},
		{"bad start date", "start_date", "September 1st", "start_date"},
		{"bad end date", "end_date", "2025/09/30", "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(tt.key, tt.value)

			_, err := ParseEventFilter(values)
			require.Error(t, err)

			fieldErr, ok := err.(*FieldError)
			require.True(t, ok, "expected a FieldError, got %T", err)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestParseEventFilter_PerPageClamped(t *testing.T) {
	values := url.Values{}
	values.Set("per_page", "500")

	f, err := ParseEventFilter(values)
	require.NoError(t, err)
	assert.Equal(t, MaxPerPage, f.PerPage)
}

func TestParseTriState(t *testing.T) {
	assert.Equal(t, TriTrue, ParseTriState("true"))
	assert.Equal(t, TriTrue, ParseTriState("1"))
	assert.Equal(t, TriFalse, ParseTriState("false"))
	assert.Equal(t, TriFalse, ParseTriState("0"))
	assert.Equal(t, TriUnset, ParseTriState(""))
	assert.Equal(t, TriUnset, ParseTriState("maybe"))
}

func TestParseUserFilter(t *testing.T) {
	values := url.Values{}
	values.Set("search", "ada")
	values.Set("role", "organizer")
	values.Set("active", "false")

	f, err := ParseUserFilter(values)
	require.NoError(t, err)
	assert.Equal(t, "ada", f.Search)
	assert.Equal(t, RoleOrganizer, f.Role)
	assert.Equal(t, TriFalse, f.Active)

	values.Set("role", "superuser")
	_, err = ParseUserFilter(values)
	require.Error(t, err)
	fieldErr, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "role", fieldErr.Field)
}

func TestParseApplicationFilter(t *testing.T) {
	values := url.Values{}
	values.Set("status", "pending")

	f, err := ParseApplicationFilter(values)
	require.NoError(t, err)
	assert.Equal(t, ApplicationStatusPending, f.Status)

	values.Set("status", "withdrawn")
	_, err = ParseApplicationFilter(values)
	require.Error(t, err)
	fieldErr, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "status", fieldErr.Field)
}
