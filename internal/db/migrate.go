package db

import (
	"fmt"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of GORM models for migration. Projects are
// the only stored entity; departments, attorneys and statuses are derived
// views over its columns, not tables of their own.
func AllModels() []interface{} {
	return []interface{}{
		&models.Project{},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// Reset drops the schema and recreates it empty.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(AllModels()...); err != nil {
		return fmt.Errorf("db: drop tables: %w", err)
	}
	return AutoMigrate(db)
}
