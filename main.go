package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventloop-api/config"
	"eventloop-api/database"
	"eventloop-api/middleware"
	"eventloop-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ValidateJSON())
	router.Use(middleware.RateLimit(120, 20))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg.JWTSecret)

	// Start server
	log.Printf("Starting eventLoop API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
