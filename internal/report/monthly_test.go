package report

import (
	"errors"
	"testing"
	"time"

	"github.com/harlowe/docket/internal/models"
	"github.com/harlowe/docket/internal/project"
)

func may(day int) time.Time {
	return time.Date(2026, time.May, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthly_OpenedAndCompletedCounts(t *testing.T) {
	db := openTestDB(t)

	inMay := mustCreate(t, db, baseOpts("opened in may"))
	backdate(t, db, inMay.ID, map[string]interface{}{"created_at": may(3)})

	inApril := mustCreate(t, db, baseOpts("opened in april"))
	backdate(t, db, inApril.ID, map[string]interface{}{"created_at": time.Date(2026, time.April, 28, 0, 0, 0, 0, time.UTC)})

	doneInMay := mustCreate(t, db, baseOpts("closed in may"))
	backdate(t, db, doneInMay.ID, map[string]interface{}{
		"created_at": time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		"status":     models.StatusCompleted,
		"updated_at": may(20),
	})

	stats, err := Monthly(db, 2026, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if stats.ProjectsOpened != 1 {
		t.Errorf("ProjectsOpened = %d, want 1", stats.ProjectsOpened)
	}
	if stats.ProjectsCompleted != 1 {
		t.Errorf("ProjectsCompleted = %d, want 1", stats.ProjectsCompleted)
	}
	if stats.Year != 2026 || stats.Month != 5 {
		t.Errorf("stats period = %d-%d", stats.Year, stats.Month)
	}
}

func TestMonthly_BreakdownsCoverOpenedProjects(t *testing.T) {
	db := openTestDB(t)

	a := baseOpts("pw matter")
	b := baseOpts("hr matter")
	b.Department = "Human Resources"
	b.AssignedAttorney = "Reyes, L."
	c := baseOpts("second pw matter")

	for _, opts := range []project.CreateOpts{a, b, c} {
		p := mustCreate(t, db, opts)
		backdate(t, db, p.ID, map[string]interface{}{"created_at": may(10)})
	}

	stats, err := Monthly(db, 2026, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if stats.ByDepartment["Public Works"] != 2 || stats.ByDepartment["Human Resources"] != 1 {
		t.Errorf("ByDepartment = %v", stats.ByDepartment)
	}
	if stats.ByAttorney["Smith, J."] != 2 || stats.ByAttorney["Reyes, L."] != 1 {
		t.Errorf("ByAttorney = %v", stats.ByAttorney)
	}
}

func TestMonthly_AvgDaysToCompletion(t *testing.T) {
	db := openTestDB(t)

	ten := baseOpts("ten days")
	ten.DateAssignedToUs = may(1)
	p1 := mustCreate(t, db, ten)
	backdate(t, db, p1.ID, map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": may(11),
	})

	fifteen := baseOpts("fifteen days")
	fifteen.DateAssignedToUs = may(1)
	p2 := mustCreate(t, db, fifteen)
	backdate(t, db, p2.ID, map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": may(16),
	})

	stats, err := Monthly(db, 2026, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if stats.AvgDaysToCompletion != 12.5 {
		t.Errorf("AvgDaysToCompletion = %v, want 12.5", stats.AvgDaysToCompletion)
	}
}

func TestMonthly_ZeroAverageWhenNothingCompleted(t *testing.T) {
	db := openTestDB(t)
	p := mustCreate(t, db, baseOpts("still open"))
	backdate(t, db, p.ID, map[string]interface{}{"created_at": may(2)})

	stats, err := Monthly(db, 2026, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if stats.ProjectsCompleted != 0 || stats.AvgDaysToCompletion != 0 {
		t.Errorf("completed = %d, avg = %v, want zeroes", stats.ProjectsCompleted, stats.AvgDaysToCompletion)
	}
}

func TestMonthly_ExcludesSoftDeleted(t *testing.T) {
	db := openTestDB(t)
	p := mustCreate(t, db, baseOpts("withdrawn"))
	backdate(t, db, p.ID, map[string]interface{}{"created_at": may(5)})
	if err := project.SoftDelete(db, p.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	stats, err := Monthly(db, 2026, 5)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if stats.ProjectsOpened != 0 {
		t.Errorf("ProjectsOpened = %d, want 0 after soft delete", stats.ProjectsOpened)
	}
}

func TestMonthly_RejectsBadPeriod(t *testing.T) {
	db := openTestDB(t)
	for _, tc := range []struct{ year, month int }{
		{2026, 0},
		{2026, 13},
		{1800, 6},
		{3000, 6},
	} {
		_, err := Monthly(db, tc.year, tc.month)
		var vErr *project.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Monthly(%d, %d) err = %v, want *ValidationError", tc.year, tc.month, err)
		}
	}
}
