// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventloop-api/controllers"
	"eventloop-api/middleware"
	"eventloop-api/models"
)

// SetupCORS allows the SPA frontend to talk to the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, jwtSecret string) {
	// Controllers
	authController := controllers.NewAuthController(db, jwtSecret)
	userController := controllers.NewUserController(db)
	eventController := controllers.NewEventController(db)
	applicationController := controllers.NewSpeakerApplicationController(db)
	adminController := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Public event discovery
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/tags", eventController.GetEventTags)
		events.GET("/:id", eventController.GetEvent)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		// Profile routes
		me := protected.Group("/me")
		{
			me.GET("", userController.GetProfile)
			me.PUT("", userController.UpdateProfile)
			me.GET("/saved-events", eventController.GetSavedEvents)
			me.GET("/attending", eventController.GetAttendingEvents)
		}

		// Event management and engagement
		protectedEvents := protected.Group("/events")
		{
			protectedEvents.POST("", middleware.RequireRoles(models.RoleOrganizer, models.RoleAdmin), eventController.CreateEvent)
			protectedEvents.PUT("/:id", middleware.RequireRoles(models.RoleOrganizer, models.RoleAdmin), eventController.UpdateEvent)
			protectedEvents.DELETE("/:id", middleware.RequireRoles(models.RoleOrganizer, models.RoleAdmin), eventController.DeleteEvent)
			protectedEvents.POST("/:id/save", eventController.ToggleSave)
			protectedEvents.PUT("/:id/reminder", eventController.SetReminder)
			protectedEvents.POST("/:id/attend", eventController.ToggleAttend)
		}

		// Speaker application workflow
		applications := protected.Group("/speaker-applications")
		{
			applications.POST("", applicationController.CreateApplication)
			applications.GET("/mine", applicationController.GetMyApplications)
			applications.PUT("/:id", applicationController.UpdateApplication)
		}

		// Admin routes
		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminController.GetDashboard)
			admin.GET("/users", adminController.GetUsers)
			admin.PUT("/users/:id/active", adminController.SetUserActive)
			admin.GET("/events", adminController.GetEvents)
			admin.GET("/speaker-applications", applicationController.GetApplications)
			admin.POST("/speaker-applications/:id/approve", applicationController.ApproveApplication)
			admin.POST("/speaker-applications/:id/reject", applicationController.RejectApplication)
		}
	}
}
