package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// Filters holds the query vocabulary for listing projects. All provided
// filters AND together. Zero values impose no constraint, except the two
// Include flags whose false defaults exclude Completed and soft-deleted
// projects.
type Filters struct {
	Status           []string
	Department       string
	AssignedAttorney string
	QCPAttorney      string

	// Search is a whitespace-delimited list of terms. A project matches
	// when every term appears, case-insensitively, in at least one of
	// project_name, department, notes, project_group.
	Search string

	DeliveryDeadlineFrom *time.Time
	DeliveryDeadlineTo   *time.Time
	DateAssignedFrom     *time.Time
	DateAssignedTo       *time.Time
	DateToClientFrom     *time.Time
	DateToClientTo       *time.Time
	InternalDeadlineFrom *time.Time
	InternalDeadlineTo   *time.Time

	// IncludeCompleted lifts the implicit exclusion of Completed projects.
	// An explicit Status filter always wins over the implicit exclusion.
	IncludeCompleted bool
	// IncludeDeleted lifts the implicit exclusion of soft-deleted projects.
	IncludeDeleted bool

	SortBy  string // column name; defaults to delivery_deadline
	SortDir string // asc (default) or desc
}

// List returns projects matching the filters. Ordering is fully determined:
// sort column (NULLs last regardless of direction), then ID ascending.
func List(db *gorm.DB, f Filters) ([]models.Project, error) {
	order, err := sortClause(f.SortBy, f.SortDir)
	if err != nil {
		return nil, err
	}

	q := db.Model(&models.Project{})
	if f.IncludeDeleted {
		q = q.Unscoped()
	}

	if len(f.Status) > 0 {
		q = q.Where("status IN ?", f.Status)
	} else if !f.IncludeCompleted {
		q = q.Where("status != ?", models.StatusCompleted)
	}

	if f.Department != "" {
		q = q.Where("LOWER(department) = LOWER(?)", f.Department)
	}
	if f.AssignedAttorney != "" {
		q = q.Where("LOWER(assigned_attorney) = LOWER(?)", f.AssignedAttorney)
	}
	if f.QCPAttorney != "" {
		q = q.Where("LOWER(qcp_attorney) = LOWER(?)", f.QCPAttorney)
	}

	q = dateRange(q, "delivery_deadline", f.DeliveryDeadlineFrom, f.DeliveryDeadlineTo)
	q = dateRange(q, "date_assigned_to_us", f.DateAssignedFrom, f.DateAssignedTo)
	q = dateRange(q, "date_to_client", f.DateToClientFrom, f.DateToClientTo)
	q = dateRange(q, "internal_deadline", f.InternalDeadlineFrom, f.InternalDeadlineTo)

	for _, term := range strings.Fields(f.Search) {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(project_name) LIKE ? OR LOWER(department) LIKE ? OR LOWER(notes) LIKE ? OR LOWER(project_group) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var projects []models.Project
	if err := q.Order(order).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("project: list: %w", err)
	}
	return projects, nil
}

func dateRange(q *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" <= ?", *to)
	}
	return q
}

// sortClause validates the sort vocabulary and builds the ORDER BY clause.
// "col IS NULL" sorts ascending on a boolean, which pushes NULLs last on
// both SQLite and MySQL whatever the direction of the main sort.
func sortClause(sortBy, sortDir string) (string, error) {
	if sortBy == "" {
		sortBy = "delivery_deadline"
	}
	col, ok := columns[sortBy]
	if !ok {
		return "", &InvalidFieldError{Field: sortBy}
	}

	dir := "ASC"
	switch strings.ToLower(sortDir) {
	case "", "asc":
	case "desc":
		dir = "DESC"
	default:
		return "", &ValidationError{Reason: fmt.Sprintf("sort_dir %q must be asc or desc", sortDir)}
	}

	return fmt.Sprintf("%s IS NULL, %s %s, id ASC", col, col, dir), nil
}
