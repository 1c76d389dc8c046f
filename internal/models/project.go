package models

import (
	"time"

	"gorm.io/gorm"
)

// Project status values. Stored as plain strings so the table stays
// inspectable via SQL. There is no enforced transition graph: any status
// may be set from any other.
const (
	StatusInProgress      = "In Progress"
	StatusUnderReview     = "Under Review"
	StatusWaitingOnClient = "Waiting on Client"
	StatusOnHold          = "On-Hold"
	StatusCompleted       = "Completed"
)

// AllStatuses lists every valid status, in display order.
var AllStatuses = []string{
	StatusInProgress,
	StatusUnderReview,
	StatusWaitingOnClient,
	StatusOnHold,
	StatusCompleted,
}

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Project is the single tracked entity: one legal project handled for a
// client department. Departments, attorneys and statuses are not separate
// tables; they are derived views over these columns.
type Project struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ProjectName  string `gorm:"size:500;not null" json:"project_name"`
	ProjectGroup string `gorm:"size:200" json:"project_group"`
	Department   string `gorm:"size:200;not null" json:"department"`

	DateToClient     time.Time  `gorm:"not null" json:"date_to_client"`
	DateAssignedToUs time.Time  `gorm:"not null" json:"date_assigned_to_us"`
	InternalDeadline *time.Time `json:"internal_deadline"`
	DeliveryDeadline *time.Time `gorm:"index" json:"delivery_deadline"`

	AssignedAttorney string `gorm:"size:200;not null" json:"assigned_attorney"`
	QCPAttorney      string `gorm:"column:qcp_attorney;size:200;not null" json:"qcp_attorney"`

	Status string `gorm:"size:50;not null;default:In Progress;index" json:"status"`

	// Notes is an append-only blob of newline-separated entries, each
	// formatted as "[YYYY-MM-DD HH:MM]: body". Entries are never rewritten.
	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the project has been soft-deleted.
func (p *Project) IsDeleted() bool {
	return p.DeletedAt.Valid
}
