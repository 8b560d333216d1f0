// File: /controllers/speaker_application_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventloop-api/models"
	"eventloop-api/utils"
)

type SpeakerApplicationController struct {
	db *gorm.DB
}

func NewSpeakerApplicationController(db *gorm.DB) *SpeakerApplicationController {
	return &SpeakerApplicationController{db: db}
}

type ApplicationRequest struct {
	Topic            string   `json:"topic" binding:"required"`
	Description      string   `json:"description"`
	ProficiencyLevel string   `json:"proficiency_level" binding:"required"`
	ExpertiseTags    []string `json:"expertise_tags"`
}

type ReviewRequest struct {
	ReviewNotes string `json:"review_notes"`
}

func (sc *SpeakerApplicationController) CreateApplication(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidProficiencyLevel(req.ProficiencyLevel) {
		utils.SendFieldError(c, &models.FieldError{Field: "proficiency_level", Message: "must be one of beginner, intermediate, advanced, expert"})
		return
	}

	// One open application at a time
	var pending models.SpeakerApplication
	err := sc.db.Where("user_id = ? AND status = ?", userID, models.ApplicationStatusPending).First(&pending).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a pending application"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	application := models.SpeakerApplication{
		ID:               uuid.New().String(),
		UserID:           userID,
		Topic:            req.Topic,
		Description:      req.Description,
		ProficiencyLevel: req.ProficiencyLevel,
		ExpertiseTags:    models.StringSlice(req.ExpertiseTags),
		Status:           models.ApplicationStatusPending,
	}

	if err := sc.db.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (sc *SpeakerApplicationController) GetMyApplications(c *gin.Context) {
	userID := c.GetString("user_id")

	var applications []models.SpeakerApplication
	err := sc.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateApplication lets the applicant revise topic and details while the
// application is still pending. Reviewed applications are immutable.
func (sc *SpeakerApplicationController) UpdateApplication(c *gin.Context) {
	userID := c.GetString("user_id")
	applicationID := c.Param("id")

	var application models.SpeakerApplication
	if err := sc.db.First(&application, "id = ? AND user_id = ?", applicationID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if !application.IsPending() {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending applications can be updated"})
		return
	}

	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidProficiencyLevel(req.ProficiencyLevel) {
		utils.SendFieldError(c, &models.FieldError{Field: "proficiency_level", Message: "must be one of beginner, intermediate, advanced, expert"})
		return
	}

	updates := map[string]interface{}{
		"topic":             req.Topic,
		"description":       req.Description,
		"proficiency_level": req.ProficiencyLevel,
		"expertise_tags":    models.StringSlice(req.ExpertiseTags),
	}

	if err := sc.db.Model(&application).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application updated successfully"})
}

// GetApplications is the admin listing, filterable by status and paginated.
func (sc *SpeakerApplicationController) GetApplications(c *gin.Context) {
	filter, err := models.ParseApplicationFilter(c.Request.URL.Query())
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			utils.SendFieldError(c, fieldErr)
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := sc.db.Model(&models.SpeakerApplication{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	var applications []models.SpeakerApplication
	err = query.Preload("User").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PerPage).
		Find(&applications).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	for i := range applications {
		applications[i].User.Password = ""
	}

	utils.SendPaginated(c, applications, filter.Page, filter.PerPage, len(applications), total)
}

func (sc *SpeakerApplicationController) ApproveApplication(c *gin.Context) {
	sc.review(c, models.ApplicationStatusApproved)
}

func (sc *SpeakerApplicationController) RejectApplication(c *gin.Context) {
	sc.review(c, models.ApplicationStatusRejected)
}

// review moves a pending application to a terminal status and records the
// reviewer. pending is the only state a review can start from.
func (sc *SpeakerApplicationController) review(c *gin.Context, status string) {
	reviewerID := c.GetString("user_id")
	applicationID := c.Param("id")

	var application models.SpeakerApplication
	if err := sc.db.First(&application, "id = ?", applicationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if !application.IsPending() {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has already been reviewed"})
		return
	}

	var req ReviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":         status,
		"reviewed_by_id": reviewerID,
		"reviewed_at":    now,
		"review_notes":   req.ReviewNotes,
	}

	if err := sc.db.Model(&application).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application " + status,
		"status":  status,
	})
}
