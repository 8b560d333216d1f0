// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventloop-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.SavedEvent{},
		&models.EventAttendee{},
		&models.SpeakerApplication{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Listing queries sort on start_date or created_at after facet filters
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_type_start ON events(type, start_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events type/start: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_region ON events(region)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events region: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for events created_at: %v\n", err)
	}

	// Engagement lookups by event
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_saved_events_event ON saved_events(event_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for saved_events: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_attendees_event ON event_attendees(event_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_attendees: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Toggle semantics rely on one row per (user, event) pair

	if err := db.Exec("ALTER TABLE saved_events ADD CONSTRAINT uk_saved_events_user_event UNIQUE (user_id, event_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for saved_events: %v\n", err)
	}

	if err := db.Exec("ALTER TABLE event_attendees ADD CONSTRAINT uk_event_attendees_user_event UNIQUE (user_id, event_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique constraint for event_attendees: %v\n", err)
	}

	return nil
}
