package db

import (
	"log"

	"emberlink/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the PostgreSQL connection and migrates the schema.
func Init(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	return conn, nil
}

// Migrate creates/updates all tables. Shared with the test setup, which runs
// the same schema on SQLite.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.KarmaEvent{},
		&models.Notification{},
	)
}
