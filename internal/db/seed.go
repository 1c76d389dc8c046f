package db

import (
	"fmt"
	"time"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// Seed inserts a sample project portfolio for demos and development. It is
// idempotent: if any projects exist, seeding is skipped. The dates are
// relative to the current day so every dashboard bucket has entries.
func Seed(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("db: count projects: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	days := func(n int) *time.Time {
		d := today.AddDate(0, 0, n)
		return &d
	}

	projects := []models.Project{
		{
			ProjectName:      "Employment Investigation - HR-2026-04",
			Department:       "Human Resources",
			DateToClient:     today.AddDate(0, 0, -30),
			DateAssignedToUs: today.AddDate(0, 0, -28),
			AssignedAttorney: "Smith, J.",
			QCPAttorney:      "Miller, A.",
			InternalDeadline: days(-7),
			DeliveryDeadline: days(-3),
			Status:           models.StatusInProgress,
			Notes:            "[2026-07-28 09:15]: Initial intake call with department head.",
		},
		{
			ProjectName:      "Easement Agreement - Public Works",
			Department:       "Public Works",
			ProjectGroup:     "Riverside Corridor",
			DateToClient:     today.AddDate(0, 0, -21),
			DateAssignedToUs: today.AddDate(0, 0, -20),
			AssignedAttorney: "Johnson, M.",
			QCPAttorney:      "Smith, J.",
			DeliveryDeadline: days(-1),
			Status:           models.StatusUnderReview,
		},
		{
			ProjectName:      "Public Records Request #2026-041",
			Department:       "Sheriff's Office",
			DateToClient:     today.AddDate(0, 0, -10),
			DateAssignedToUs: today.AddDate(0, 0, -9),
			AssignedAttorney: "Williams, R.",
			QCPAttorney:      "Miller, A.",
			DeliveryDeadline: days(2),
			Status:           models.StatusInProgress,
		},
		{
			ProjectName:      "Service Contract Review - Information Technology",
			Department:       "Information Technology",
			DateToClient:     today.AddDate(0, 0, -14),
			DateAssignedToUs: today.AddDate(0, 0, -12),
			AssignedAttorney: "Brown, S.",
			QCPAttorney:      "Johnson, M.",
			InternalDeadline: days(3),
			DeliveryDeadline: days(6),
			Status:           models.StatusWaitingOnClient,
		},
		{
			ProjectName:      "Review of Procurement Policy",
			Department:       "Finance",
			DateToClient:     today.AddDate(0, 0, -5),
			DateAssignedToUs: today.AddDate(0, 0, -4),
			AssignedAttorney: "Davis, K.",
			QCPAttorney:      "Smith, J.",
			DeliveryDeadline: days(21),
			Status:           models.StatusInProgress,
		},
		{
			ProjectName:      "Ordinance Review - Short-Term Rentals",
			Department:       "Planning",
			DateToClient:     today.AddDate(0, 0, -3),
			DateAssignedToUs: today.AddDate(0, 0, -2),
			AssignedAttorney: "Garcia, L.",
			QCPAttorney:      "Wilson, T.",
			DeliveryDeadline: days(45),
			Status:           models.StatusOnHold,
		},
		{
			ProjectName:      "Litigation Hold - Parks & Recreation",
			Department:       "Parks & Recreation",
			DateToClient:     today.AddDate(0, 0, -8),
			DateAssignedToUs: today.AddDate(0, 0, -8),
			AssignedAttorney: "Wilson, T.",
			QCPAttorney:      "Davis, K.",
			Status:           models.StatusInProgress,
		},
		{
			ProjectName:      "Interagency Agreement - Health Services",
			Department:       "Health Services",
			DateToClient:     today.AddDate(0, 0, -60),
			DateAssignedToUs: today.AddDate(0, 0, -58),
			AssignedAttorney: "Smith, J.",
			QCPAttorney:      "Brown, S.",
			DeliveryDeadline: days(-20),
			Status:           models.StatusCompleted,
			Notes:            "[2026-08-01 14:30]: Final version delivered to client.",
		},
		{
			ProjectName:      "Claim Review - PW-2026-02",
			Department:       "Public Works",
			ProjectGroup:     "Riverside Corridor",
			DateToClient:     today.AddDate(0, 0, -40),
			DateAssignedToUs: today.AddDate(0, 0, -38),
			AssignedAttorney: "Miller, A.",
			QCPAttorney:      "Williams, R.",
			DeliveryDeadline: days(-15),
			Status:           models.StatusCompleted,
		},
	}

	if err := db.Create(&projects).Error; err != nil {
		return 0, fmt.Errorf("db: seed projects: %w", err)
	}
	return len(projects), nil
}
