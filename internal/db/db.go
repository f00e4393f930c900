package db

import (
	"fmt"

	"askbox/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the database and runs migrations. Callers hold the returned
// handle and pass it into the stores; there is no package-level instance.
func New(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=askbox port=5432 sslmode=disable TimeZone=Asia/Tokyo"
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.AutoMigrate(
		&models.Question{},
		&models.PendingReview{},
		&models.ModerationLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return conn, nil
}
