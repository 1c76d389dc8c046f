package report

import (
	"fmt"
	"math"
	"time"

	"github.com/harlowe/docket/internal/models"
	"github.com/harlowe/docket/internal/project"
	"gorm.io/gorm"
)

// MonthlyStats aggregates activity for one calendar month. Completion is
// inferred from the last update landing in Completed status within the
// month; there is no dedicated completion-date column.
type MonthlyStats struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	ProjectsOpened    int `json:"projects_opened"`
	ProjectsCompleted int `json:"projects_completed"`

	ByDepartment map[string]int `json:"by_department"`
	ByAttorney   map[string]int `json:"by_attorney"`

	// AvgDaysToCompletion is 0 when no projects completed in the month.
	AvgDaysToCompletion float64 `json:"avg_days_to_completion"`
}

// Monthly computes statistics over non-deleted projects for the given
// month.
func Monthly(db *gorm.DB, year, month int) (*MonthlyStats, error) {
	if month < 1 || month > 12 {
		return nil, &project.ValidationError{Fields: []string{"month"}, Reason: fmt.Sprintf("invalid month %d", month)}
	}
	if year < 1900 || year > 2100 {
		return nil, &project.ValidationError{Fields: []string{"year"}, Reason: fmt.Sprintf("invalid year %d", year)}
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var opened []models.Project
	if err := db.Where("created_at >= ? AND created_at < ?", start, end).
		Find(&opened).Error; err != nil {
		return nil, fmt.Errorf("report: monthly opened: %w", err)
	}

	var completed []models.Project
	if err := db.Where("status = ?", models.StatusCompleted).
		Where("updated_at >= ? AND updated_at < ?", start, end).
		Find(&completed).Error; err != nil {
		return nil, fmt.Errorf("report: monthly completed: %w", err)
	}

	stats := &MonthlyStats{
		Year:              year,
		Month:             month,
		ProjectsOpened:    len(opened),
		ProjectsCompleted: len(completed),
		ByDepartment:      make(map[string]int),
		ByAttorney:        make(map[string]int),
	}
	for _, p := range opened {
		stats.ByDepartment[p.Department]++
		stats.ByAttorney[p.AssignedAttorney]++
	}

	if len(completed) > 0 {
		var total int
		for _, p := range completed {
			assigned := p.DateAssignedToUs.Truncate(24 * time.Hour)
			total += int(p.UpdatedAt.Sub(assigned).Hours() / 24)
		}
		avg := float64(total) / float64(len(completed))
		stats.AvgDaysToCompletion = math.Round(avg*10) / 10
	}
	return stats, nil
}
