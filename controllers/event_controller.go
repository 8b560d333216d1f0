// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventloop-api/models"
	"eventloop-api/repositories"
	"eventloop-api/services"
	"eventloop-api/utils"
)

type EventController struct {
	db     *gorm.DB
	events *repositories.EventRepository
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		db:     db,
		events: repositories.NewEventRepository(db),
	}
}

type EventRequest struct {
	Title            string    `json:"title" binding:"required"`
	Location         string    `json:"location" binding:"required"`
	Region           string    `json:"region"`
	StartDate        time.Time `json:"start_date" binding:"required"`
	EndDate          time.Time `json:"end_date" binding:"required"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Type             string    `json:"type" binding:"required"`
	Format           string    `json:"format" binding:"required"`
	Tags             []string  `json:"tags"`
}

// validate checks the enum and date-range rules shared by create and update.
func (req *EventRequest) validate() *models.FieldError {
	if !models.IsValidEventType(req.Type) {
		return &models.FieldError{Field: "type", Message: "must be one of Conference, Meetup, Workshop, Hackathon"}
	}
	if !models.IsValidEventFormat(req.Format) {
		return &models.FieldError{Field: "format", Message: "must be one of online, in-person, hybrid"}
	}
	if req.EndDate.Before(req.StartDate) {
		return &models.FieldError{Field: "end_date", Message: "must not be before start_date"}
	}
	return nil
}

// GetEvents lists events for a filter context: search, tag facets, exact
// facets, date bounds, upcoming_only and sort order, paginated 1-indexed.
func (ec *EventController) GetEvents(c *gin.Context) {
	filter, err := models.ParseEventFilter(c.Request.URL.Query())
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			utils.SendFieldError(c, fieldErr)
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	events, total, err := ec.events.List(filter, time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	for i := range events {
		events[i].Organizer.Password = ""
	}

	utils.SendPaginated(c, events, filter.Page, filter.PerPage, len(events), total)
}

// GetEventTags returns distinct tags with counts across the events matching
// the current filter context, ignoring the tag facets themselves.
func (ec *EventController) GetEventTags(c *gin.Context) {
	filter, err := models.ParseEventFilter(c.Request.URL.Query())
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			utils.SendFieldError(c, fieldErr)
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	sets, err := ec.events.TagSets(filter.WithoutTags(), time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, services.AggregateTags(sets))
}

func (ec *EventController) GetEvent(c *gin.Context) {
	event, err := ec.events.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	event.Organizer.Password = ""
	c.JSON(http.StatusOK, event)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	userID := c.GetString("user_id")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fieldErr := req.validate(); fieldErr != nil {
		utils.SendFieldError(c, fieldErr)
		return
	}

	event := models.Event{
		ID:               uuid.New().String(),
		Title:            req.Title,
		Location:         req.Location,
		Region:           req.Region,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Type:             req.Type,
		Format:           req.Format,
		Tags:             models.StringSlice(req.Tags),
		OrganizerID:      userID,
	}

	if err := ec.db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	eventID := c.Param("id")

	var event models.Event
	query := ec.db.Where("id = ?", eventID)
	if role != models.RoleAdmin {
		query = query.Where("organizer_id = ?", userID)
	}
	if err := query.First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or access denied"})
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fieldErr := req.validate(); fieldErr != nil {
		utils.SendFieldError(c, fieldErr)
		return
	}

	updates := map[string]interface{}{
		"title":             req.Title,
		"location":          req.Location,
		"region":            req.Region,
		"start_date":        req.StartDate,
		"end_date":          req.EndDate,
		"short_description": req.ShortDescription,
		"long_description":  req.LongDescription,
		"type":              req.Type,
		"format":            req.Format,
		"tags":              models.StringSlice(req.Tags),
	}

	if err := ec.db.Model(&event).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully"})
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")
	eventID := c.Param("id")

	var event models.Event
	query := ec.db.Where("id = ?", eventID)
	if role != models.RoleAdmin {
		query = query.Where("organizer_id = ?", userID)
	}
	if err := query.First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or access denied"})
		return
	}

	// Saved and attendee rows go with their event
	if err := ec.db.Where("event_id = ?", eventID).Delete(&models.SavedEvent{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	if err := ec.db.Where("event_id = ?", eventID).Delete(&models.EventAttendee{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	if err := ec.db.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// ToggleSave saves the event for the user, or removes the save if one
// exists. Both directions are idempotent pairs; toggling twice is a no-op.
func (ec *EventController) ToggleSave(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var saved models.SavedEvent
	err := ec.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&saved).Error
	if err == nil {
		if err := ec.db.Delete(&saved).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event unsaved", "saved": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle saved event"})
		return
	}

	saved = models.SavedEvent{
		UserID:  userID,
		EventID: eventID,
	}
	if err := ec.db.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event saved", "saved": true})
}

type ReminderRequest struct {
	EmailReminder *bool `json:"email_reminder" binding:"required"`
}

// SetReminder flips the email reminder flag on an existing save.
func (ec *EventController) SetReminder(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var saved models.SavedEvent
	if err := ec.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&saved).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event is not saved"})
		return
	}

	if err := ec.db.Model(&saved).Update("email_reminder", *req.EmailReminder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder updated", "email_reminder": *req.EmailReminder})
}

// ToggleAttend marks the user as attending, or removes the attendance row
// if present. Presence of the row is the whole state.
func (ec *EventController) ToggleAttend(c *gin.Context) {
	userID := c.GetString("user_id")
	eventID := c.Param("id")

	var event models.Event
	if err := ec.db.First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var attendee models.EventAttendee
	err := ec.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&attendee).Error

	attending := false
	if err == nil {
		if err := ec.db.Delete(&attendee).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
			return
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		attendee = models.EventAttendee{
			UserID:  userID,
			EventID: eventID,
		}
		if err := ec.db.Create(&attendee).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
			return
		}
		attending = true
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
		return
	}

	var count int64
	ec.db.Model(&models.EventAttendee{}).Where("event_id = ?", eventID).Count(&count)

	c.JSON(http.StatusOK, gin.H{
		"attending":      attending,
		"attendee_count": count,
	})
}

// GetSavedEvents lists the user's saved events, newest save first.
func (ec *EventController) GetSavedEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	var saves []models.SavedEvent
	err := ec.db.Preload("Event").Preload("Event.Organizer").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saves).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved events"})
		return
	}

	for i := range saves {
		saves[i].Event.Organizer.Password = ""
	}

	c.JSON(http.StatusOK, saves)
}

// GetAttendingEvents lists events the user is attending.
func (ec *EventController) GetAttendingEvents(c *gin.Context) {
	userID := c.GetString("user_id")

	var rows []models.EventAttendee
	err := ec.db.Preload("Event").Preload("Event.Organizer").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attending events"})
		return
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		row.Event.Organizer.Password = ""
		events = append(events, row.Event)
	}

	c.JSON(http.StatusOK, events)
}
