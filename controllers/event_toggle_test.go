// File: /controllers/event_toggle_test.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventloop-api/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func authAs(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func eventRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "organizer_id"}).
		AddRow("ev-1", "GopherCon", "org-1")
}

// Toggling twice must return the save to its absent state: the first call
// inserts a row, the second finds and deletes it.
func TestToggleSave_TwiceReturnsToAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	ec := NewEventController(db)

	router := gin.New()
	router.POST("/events/:id/save", authAs("u-1", models.RoleAttendee), ec.ToggleSave)

	// First toggle: no existing save, a row is created.
	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectQuery(`SELECT \* FROM .saved_events. WHERE user_id = \? AND event_id = \?`).
		WithArgs("u-1", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO .saved_events.`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/ev-1/save", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["saved"])

	// Second toggle: the save exists and is removed again.
	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectQuery(`SELECT \* FROM .saved_events. WHERE user_id = \? AND event_id = \?`).
		WithArgs("u-1", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id"}).
			AddRow(1, "u-1", "ev-1"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .saved_events.`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/ev-1/save", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["saved"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Attendance is the presence of the row; two toggles restore the original
// attendee count.
func TestToggleAttend_TwiceRestoresCount(t *testing.T) {
	db, mock := newMockDB(t)
	ec := NewEventController(db)

	router := gin.New()
	router.POST("/events/:id/attend", authAs("u-1", models.RoleAttendee), ec.ToggleAttend)

	// First toggle: attendance row created, count goes to 1.
	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectQuery(`SELECT \* FROM .event_attendees. WHERE user_id = \? AND event_id = \?`).
		WithArgs("u-1", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO .event_attendees.`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM .event_attendees. WHERE event_id = \?`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/ev-1/attend", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["attending"])
	assert.Equal(t, float64(1), body["attendee_count"])

	// Second toggle: the row is deleted and the count is back where it was.
	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectQuery(`SELECT \* FROM .event_attendees. WHERE user_id = \? AND event_id = \?`).
		WithArgs("u-1", "ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "event_id"}).
			AddRow(1, "u-1", "ev-1"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .event_attendees.`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT count\(\*\) FROM .event_attendees. WHERE event_id = \?`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/events/ev-1/attend", nil))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["attending"])
	assert.Equal(t, float64(0), body["attendee_count"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEvent_CascadesSavesAndAttendance(t *testing.T) {
	db, mock := newMockDB(t)
	ec := NewEventController(db)

	router := gin.New()
	router.DELETE("/events/:id", authAs("admin-1", models.RoleAdmin), ec.DeleteEvent)

	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .saved_events. WHERE event_id = \?`).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .event_attendees. WHERE event_id = \?`).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .events.`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed child-row delete aborts the event delete with a 500 instead of
// leaving orphaned rows behind a half-deleted event.
func TestDeleteEvent_ChildDeleteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	ec := NewEventController(db)

	router := gin.New()
	router.DELETE("/events/:id", authAs("admin-1", models.RoleAdmin), ec.DeleteEvent)

	mock.ExpectQuery(`SELECT \* FROM .events. WHERE id = \?`).
		WillReturnRows(eventRow())
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM .saved_events. WHERE event_id = \?`).
		WithArgs("ev-1").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/events/ev-1", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to delete event", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
