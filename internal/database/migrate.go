package database

import (
	"github.com/platewise/backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations brings the store schema up to date.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.HistoryEntry{},
	)
}
