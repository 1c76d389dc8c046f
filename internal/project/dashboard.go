package project

import (
	"fmt"
	"time"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// Deadline buckets partition the active, non-deleted projects that carry a
// delivery deadline. Completed projects never appear in any bucket, and
// projects with no delivery deadline appear in none of the three. The
// latter matches the source system's behavior; whether no-deadline projects
// deserve a bucket of their own is pending product review.

// Today returns the current UTC date at midnight, the reference point for
// all bucket boundaries.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// Overdue returns active projects whose delivery deadline has passed, most
// overdue first.
func Overdue(db *gorm.DB) ([]models.Project, error) {
	return bucket(db, "delivery_deadline < ?", Today())
}

// DueThisWeek returns active projects due within the next 7 days, soonest
// first.
func DueThisWeek(db *gorm.DB) ([]models.Project, error) {
	today := Today()
	return bucket(db, "delivery_deadline >= ? AND delivery_deadline <= ?", today, today.AddDate(0, 0, 7))
}

// LongerDeadline returns active projects due beyond 7 days out.
func LongerDeadline(db *gorm.DB) ([]models.Project, error) {
	return bucket(db, "delivery_deadline > ?", Today().AddDate(0, 0, 7))
}

func bucket(db *gorm.DB, cond string, args ...interface{}) ([]models.Project, error) {
	var projects []models.Project
	err := db.
		Where("delivery_deadline IS NOT NULL").
		Where(cond, args...).
		Where("status != ?", models.StatusCompleted).
		Order("delivery_deadline ASC, id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("project: deadline bucket: %w", err)
	}
	return projects, nil
}

// RecentlyCompleted returns the most recently completed projects, newest
// first. A limit of 0 or less falls back to 10.
func RecentlyCompleted(db *gorm.DB, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 10
	}
	var projects []models.Project
	err := db.
		Where("status = ?", models.StatusCompleted).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("project: recently completed: %w", err)
	}
	return projects, nil
}
