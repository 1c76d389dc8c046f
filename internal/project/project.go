// Package project is the service layer over the projects table: CRUD with
// soft delete, free-text normalization, filtered queries, deadline buckets
// and append-only notes. Routes call into it; it owns no state beyond the
// table.
package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// CreateOpts holds parameters for creating a new project.
type CreateOpts struct {
	ProjectName      string
	ProjectGroup     string
	Department       string
	DateToClient     time.Time
	DateAssignedToUs time.Time
	AssignedAttorney string
	QCPAttorney      string
	InternalDeadline *time.Time
	DeliveryDeadline *time.Time
	Status           string // defaults to In Progress
	Notes            string // initial note blob, optional
}

// Create validates and inserts a new project. Department and both attorney
// fields are canonicalized against stored values before the write.
func Create(db *gorm.DB, opts CreateOpts) (*models.Project, error) {
	var missing []string
	if opts.ProjectName == "" {
		missing = append(missing, "project_name")
	}
	if opts.Department == "" {
		missing = append(missing, "department")
	}
	if opts.DateToClient.IsZero() {
		missing = append(missing, "date_to_client")
	}
	if opts.DateAssignedToUs.IsZero() {
		missing = append(missing, "date_assigned_to_us")
	}
	if opts.AssignedAttorney == "" {
		missing = append(missing, "assigned_attorney")
	}
	if opts.QCPAttorney == "" {
		missing = append(missing, "qcp_attorney")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing, Reason: "missing required fields"}
	}

	if opts.Status == "" {
		opts.Status = models.StatusInProgress
	}
	if !models.ValidStatus(opts.Status) {
		return nil, &ValidationError{Fields: []string{"status"}, Reason: fmt.Sprintf("invalid status %q", opts.Status)}
	}

	department, err := Normalize(db, "department", opts.Department)
	if err != nil {
		return nil, err
	}
	assigned, err := Normalize(db, "assigned_attorney", opts.AssignedAttorney)
	if err != nil {
		return nil, err
	}
	qcp, err := Normalize(db, "qcp_attorney", opts.QCPAttorney)
	if err != nil {
		return nil, err
	}

	p := models.Project{
		ProjectName:      opts.ProjectName,
		ProjectGroup:     opts.ProjectGroup,
		Department:       department,
		DateToClient:     opts.DateToClient,
		DateAssignedToUs: opts.DateAssignedToUs,
		AssignedAttorney: assigned,
		QCPAttorney:      qcp,
		InternalDeadline: opts.InternalDeadline,
		DeliveryDeadline: opts.DeliveryDeadline,
		Status:           opts.Status,
		Notes:            opts.Notes,
	}
	if err := db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("project: create: %w", err)
	}
	return &p, nil
}

// Get retrieves a project by ID, excluding soft-deleted projects.
func Get(db *gorm.DB, id uint) (*models.Project, error) {
	var p models.Project
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("project: get %d: %w", id, err)
	}
	return &p, nil
}

// Update applies a partial update. Keys are the external field names of the
// query vocabulary; date values may be time.Time, *time.Time or nil (nil
// clears an optional date). ID and timestamps are immutable, and notes are
// rejected here: they only change through AppendNote. Normalizable fields
// are canonicalized before the write.
func Update(db *gorm.DB, id uint, updates map[string]interface{}) (*models.Project, error) {
	p, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	assignments := make(map[string]interface{}, len(updates))
	for field, value := range updates {
		col, ok := columns[field]
		if !ok || immutableFields[field] {
			return nil, &InvalidFieldError{Field: field}
		}

		// Notes only grow through AppendNote.
		if field == "notes" {
			return nil, &ValidationError{Fields: []string{"notes"}, Reason: "notes are append-only; use AppendNote"}
		}

		if field == "status" {
			s, _ := value.(string)
			if !models.ValidStatus(s) {
				return nil, &ValidationError{Fields: []string{"status"}, Reason: fmt.Sprintf("invalid status %q", s)}
			}
		}

		if isNormalized(field) {
			s, _ := value.(string)
			if s == "" {
				return nil, &ValidationError{Fields: []string{field}, Reason: "required field cannot be emptied"}
			}
			normalized, err := Normalize(db, field, s)
			if err != nil {
				return nil, err
			}
			value = normalized
		}

		assignments[col] = value
	}

	if len(assignments) == 0 {
		return p, nil
	}
	if err := db.Model(p).Updates(assignments).Error; err != nil {
		return nil, fmt.Errorf("project: update %d: %w", id, err)
	}
	return Get(db, id)
}

// SoftDelete marks a project deleted by stamping deleted_at. The row is
// never physically removed; a firm may need to prove a project existed.
// Returns ErrNotFound when the project is absent or already deleted.
func SoftDelete(db *gorm.DB, id uint) error {
	res := db.Delete(&models.Project{}, id)
	if res.Error != nil {
		return fmt.Errorf("project: delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
