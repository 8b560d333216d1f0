// File: /controllers/admin_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventloop-api/models"
	"eventloop-api/repositories"
	"eventloop-api/services"
	"eventloop-api/utils"
)

type AdminController struct {
	db     *gorm.DB
	events *repositories.EventRepository
	stats  *services.StatsService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		db:     db,
		events: repositories.NewEventRepository(db),
		stats:  services.NewStatsService(repositories.NewStatsRepository(db)),
	}
}

// GetDashboard recomputes the full dashboard snapshot from current state.
func (ad *AdminController) GetDashboard(c *gin.Context) {
	stats, err := ad.stats.Dashboard(time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to compute dashboard statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUsers lists users with search, role and tri-state active filters.
func (ad *AdminController) GetUsers(c *gin.Context) {
	filter, err := models.ParseUserFilter(c.Request.URL.Query())
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			utils.SendFieldError(c, fieldErr)
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := ad.db.Model(&models.User{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR username LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	switch filter.Active {
	case models.TriTrue:
		query = query.Where("is_active = ?", true)
	case models.TriFalse:
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	var users []models.User
	err = query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PerPage).
		Find(&users).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	utils.SendPaginated(c, users, filter.Page, filter.PerPage, len(users), total)
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (ad *AdminController) SetUserActive(c *gin.Context) {
	adminID := c.GetString("user_id")
	userID := c.Param("id")

	if userID == adminID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own active status"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ad.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := ad.db.Model(&user).Update("is_active", *req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated", "is_active": *req.IsActive})
}

// GetEvents is the admin event listing. Same filter context as the public
// listing, but upcoming_only defaults off so past events show up.
func (ad *AdminController) GetEvents(c *gin.Context) {
	values := c.Request.URL.Query()
	filter, err := models.ParseEventFilter(values)
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			utils.SendFieldError(c, fieldErr)
			return
		}
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}
	if values.Get("upcoming_only") == "" {
		filter.UpcomingOnly = false
	}

	events, total, err := ad.events.List(filter, time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	for i := range events {
		events[i].Organizer.Password = ""
	}

	utils.SendPaginated(c, events, filter.Page, filter.PerPage, len(events), total)
}
