// Package report derives human-facing report projections from the project
// query layer: the weekly status list, monthly statistics and CSV export.
package report

import (
	"strconv"
	"time"

	"github.com/harlowe/docket/internal/models"
	"github.com/harlowe/docket/internal/project"
	"gorm.io/gorm"
)

// DefaultWeeklyFields is the field selection used when the caller picks
// none.
var DefaultWeeklyFields = []string{
	"project_name",
	"department",
	"assigned_attorney",
	"status",
	"anticipated_completion",
}

// weeklyFieldLabels maps selectable field names to their display labels.
// delivery_deadline is exposed to clients as "anticipated_completion";
// softer language for the same column.
var weeklyFieldLabels = map[string]string{
	"id":                     "ID",
	"project_name":           "Project Name",
	"project_group":          "Project Group",
	"department":             "Department",
	"date_to_client":         "Date to Client",
	"date_assigned_to_us":    "Date Assigned",
	"assigned_attorney":      "Assigned Attorney",
	"qcp_attorney":           "QCP Attorney",
	"internal_deadline":      "Internal Deadline",
	"anticipated_completion": "Anticipated Completion",
	"status":                 "Status",
}

// FieldOptions returns the selectable weekly-report fields and their
// display labels, for the report builder UI.
func FieldOptions() map[string]string {
	out := make(map[string]string, len(weeklyFieldLabels))
	for k, v := range weeklyFieldLabels {
		out[k] = v
	}
	return out
}

// WeeklyReport holds the weekly status rows plus the ordered field list
// they were built from.
type WeeklyReport struct {
	Fields []string
	Labels []string
	Rows   []map[string]string
}

// WeeklyStatus returns active (non-completed, non-deleted) projects sorted
// by delivery deadline, each row restricted to the selected fields.
// project_name is always included even when omitted from the selection.
func WeeklyStatus(db *gorm.DB, fields []string) (*WeeklyReport, error) {
	if len(fields) == 0 {
		fields = append([]string(nil), DefaultWeeklyFields...)
	}
	for _, f := range fields {
		if _, ok := weeklyFieldLabels[f]; !ok {
			return nil, &project.InvalidFieldError{Field: f}
		}
	}
	if !contains(fields, "project_name") {
		fields = append([]string{"project_name"}, fields...)
	}

	projects, err := project.List(db, project.Filters{})
	if err != nil {
		return nil, err
	}

	rep := &WeeklyReport{Fields: fields}
	for _, f := range fields {
		rep.Labels = append(rep.Labels, weeklyFieldLabels[f])
	}
	for i := range projects {
		rep.Rows = append(rep.Rows, weeklyRow(&projects[i], fields))
	}
	return rep, nil
}

func weeklyRow(p *models.Project, fields []string) map[string]string {
	row := make(map[string]string, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			row[f] = strconv.FormatUint(uint64(p.ID), 10)
		case "project_name":
			row[f] = p.ProjectName
		case "project_group":
			row[f] = p.ProjectGroup
		case "department":
			row[f] = p.Department
		case "date_to_client":
			row[f] = formatDate(&p.DateToClient)
		case "date_assigned_to_us":
			row[f] = formatDate(&p.DateAssignedToUs)
		case "assigned_attorney":
			row[f] = p.AssignedAttorney
		case "qcp_attorney":
			row[f] = p.QCPAttorney
		case "internal_deadline":
			row[f] = formatDate(p.InternalDeadline)
		case "anticipated_completion":
			row[f] = formatDate(p.DeliveryDeadline)
		case "status":
			row[f] = p.Status
		}
	}
	return row
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// formatDate renders a date as ISO YYYY-MM-DD, empty when absent.
func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
