package report

import (
	"testing"
	"time"

	"github.com/harlowe/docket/internal/models"
	"github.com/harlowe/docket/internal/project"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func day(n int) time.Time {
	return project.Today().AddDate(0, 0, n)
}

func dayPtr(n int) *time.Time {
	d := day(n)
	return &d
}

func baseOpts(name string) project.CreateOpts {
	return project.CreateOpts{
		ProjectName:      name,
		Department:       "Public Works",
		DateToClient:     day(-10),
		DateAssignedToUs: day(-9),
		AssignedAttorney: "Smith, J.",
		QCPAttorney:      "Miller, A.",
	}
}

func mustCreate(t *testing.T, db *gorm.DB, opts project.CreateOpts) *models.Project {
	t.Helper()
	p, err := project.Create(db, opts)
	if err != nil {
		t.Fatalf("Create(%q): %v", opts.ProjectName, err)
	}
	return p
}

// backdate rewrites timestamp columns directly, bypassing GORM's automatic
// stamping, so tests can place projects in specific months.
func backdate(t *testing.T, db *gorm.DB, id uint, cols map[string]interface{}) {
	t.Helper()
	err := db.Model(&models.Project{}).Where("id = ?", id).UpdateColumns(cols).Error
	if err != nil {
		t.Fatalf("backdate project %d: %v", id, err)
	}
}
