package storage

import (
	"golf-tracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens (or creates) the sqlite database at filepath and migrates the
// schema. Pass ":memory:" for an in-memory database.
func Open(filepath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(filepath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Round{}); err != nil {
		return nil, err
	}
	return db, nil
}
