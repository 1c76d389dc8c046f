package project

import (
	"testing"
	"time"

	"github.com/harlowe/docket/internal/models"
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

// day returns today (UTC midnight) shifted by n days.
func day(n int) time.Time {
	return Today().AddDate(0, 0, n)
}

func dayPtr(n int) *time.Time {
	d := day(n)
	return &d
}

// baseOpts returns a valid CreateOpts with all required fields set.
func baseOpts(name string) CreateOpts {
	return CreateOpts{
		ProjectName:      name,
		Department:       "Public Works",
		DateToClient:     day(-10),
		DateAssignedToUs: day(-9),
		AssignedAttorney: "Smith, J.",
		QCPAttorney:      "Miller, A.",
	}
}

func mustCreate(t *testing.T, db *gorm.DB, opts CreateOpts) *models.Project {
	t.Helper()
	p, err := Create(db, opts)
	if err != nil {
		t.Fatalf("Create(%q): %v", opts.ProjectName, err)
	}
	return p
}

func projectNames(projects []models.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.ProjectName
	}
	return names
}
