// File: /controllers/event_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventloop-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Validation failures are rejected before any query runs, so the controller
// can be exercised without a database.
func TestGetEvents_InvalidFilterRejected(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantField string
	}{
		{"invalid type", "type=Festival", "type"},
		{"invalid format", "format=virtual", "format"},
		{"invalid sort", "sort_by=alphabetical", "sort_by"},
		{"invalid start date", "start_date=not-a-date", "start_date"},
	}

	ec := NewEventController(nil)
	router := gin.New()
	router.GET("/events", ec.GetEvents)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/events?"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantField, body["field"])
		})
	}
}

func TestGetEventTags_InvalidFilterRejected(t *testing.T) {
	ec := NewEventController(nil)
	router := gin.New()
	router.GET("/events/tags", ec.GetEventTags)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/tags?format=broadcast", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "format", body["field"])
}

func TestEventRequest_Validate(t *testing.T) {
	valid := EventRequest{
		Title:     "GopherCon",
		Location:  "Berlin",
		StartDate: time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 9, 2, 18, 0, 0, 0, time.UTC),
		Type:      models.EventTypeConference,
		Format:    models.EventFormatHybrid,
	}
	assert.Nil(t, valid.validate())

	// end before start names end_date
	flipped := valid
	flipped.StartDate = time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	flipped.EndDate = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	fieldErr := flipped.validate()
	require.NotNil(t, fieldErr)
	assert.Equal(t, "end_date", fieldErr.Field)

	badType := valid
	badType.Type = "Symposium"
	fieldErr = badType.validate()
	require.NotNil(t, fieldErr)
	assert.Equal(t, "type", fieldErr.Field)

	badFormat := valid
	badFormat.Format = "broadcast"
	fieldErr = badFormat.validate()
	require.NotNil(t, fieldErr)
	assert.Equal(t, "format", fieldErr.Field)

	// single-day event is allowed
	sameDay := valid
	sameDay.EndDate = sameDay.StartDate
	assert.Nil(t, sameDay.validate())
}
