package web

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harlowe/docket/internal/project"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &project.ValidationError{Fields: []string{field}, Reason: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s)}
	}
	return t, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// filtersFromQuery builds the service filter vocabulary from query-string
// parameters.
func filtersFromQuery(c *gin.Context) (project.Filters, error) {
	f := project.Filters{
		Department:       c.Query("department"),
		AssignedAttorney: c.Query("assigned_attorney"),
		QCPAttorney:      c.Query("qcp_attorney"),
		Search:           c.Query("search"),
		IncludeCompleted: parseBool(c.Query("include_completed")),
		IncludeDeleted:   parseBool(c.Query("include_deleted")),
		SortBy:           c.Query("sort_by"),
		SortDir:          c.Query("sort_dir"),
	}

	if status := c.Query("status"); status != "" {
		for _, s := range strings.Split(status, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Status = append(f.Status, s)
			}
		}
	}

	ranges := []struct {
		param string
		dst   **time.Time
	}{
		{"delivery_deadline_from", &f.DeliveryDeadlineFrom},
		{"delivery_deadline_to", &f.DeliveryDeadlineTo},
		{"date_assigned_from", &f.DateAssignedFrom},
		{"date_assigned_to", &f.DateAssignedTo},
		{"date_to_client_from", &f.DateToClientFrom},
		{"date_to_client_to", &f.DateToClientTo},
		{"internal_deadline_from", &f.InternalDeadlineFrom},
		{"internal_deadline_to", &f.InternalDeadlineTo},
	}
	for _, r := range ranges {
		if v := c.Query(r.param); v != "" {
			t, err := parseDate(r.param, v)
			if err != nil {
				return f, err
			}
			*r.dst = &t
		}
	}
	return f, nil
}

var textFields = map[string]bool{
	"project_name":      true,
	"project_group":     true,
	"department":        true,
	"assigned_attorney": true,
	"qcp_attorney":      true,
	"status":            true,
}

var dateFields = map[string]bool{
	"date_to_client":      true,
	"date_assigned_to_us": true,
	"internal_deadline":   true,
	"delivery_deadline":   true,
}

var optionalDateFields = map[string]bool{
	"internal_deadline": true,
	"delivery_deadline": true,
}

// createOptsFromBody converts a decoded JSON body into CreateOpts. Missing
// required fields are left zero for the service layer to report together.
func createOptsFromBody(body map[string]interface{}) (project.CreateOpts, error) {
	var opts project.CreateOpts
	for key, raw := range body {
		switch {
		case key == "notes":
			s, err := stringValue(key, raw)
			if err != nil {
				return opts, err
			}
			opts.Notes = s
		case textFields[key]:
			s, err := stringValue(key, raw)
			if err != nil {
				return opts, err
			}
			switch key {
			case "project_name":
				opts.ProjectName = s
			case "project_group":
				opts.ProjectGroup = s
			case "department":
				opts.Department = s
			case "assigned_attorney":
				opts.AssignedAttorney = s
			case "qcp_attorney":
				opts.QCPAttorney = s
			case "status":
				opts.Status = s
			}
		case dateFields[key]:
			t, err := dateValue(key, raw)
			if err != nil {
				return opts, err
			}
			switch key {
			case "date_to_client":
				if t != nil {
					opts.DateToClient = *t
				}
			case "date_assigned_to_us":
				if t != nil {
					opts.DateAssignedToUs = *t
				}
			case "internal_deadline":
				opts.InternalDeadline = t
			case "delivery_deadline":
				opts.DeliveryDeadline = t
			}
		default:
			return opts, &project.InvalidFieldError{Field: key}
		}
	}
	return opts, nil
}

// updateMapFromBody converts a decoded JSON body into the partial-update
// map the service layer expects. Notes are excluded: they only change
// through the append-note operation.
func updateMapFromBody(body map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(body))
	for key, raw := range body {
		switch {
		case key == "notes":
			return nil, &project.ValidationError{Fields: []string{"notes"}, Reason: "notes are append-only; use the notes endpoint"}
		case textFields[key]:
			s, err := stringValue(key, raw)
			if err != nil {
				return nil, err
			}
			updates[key] = s
		case dateFields[key]:
			t, err := dateValue(key, raw)
			if err != nil {
				return nil, err
			}
			if t == nil {
				if !optionalDateFields[key] {
					return nil, &project.ValidationError{Fields: []string{key}, Reason: "required date cannot be cleared"}
				}
				updates[key] = nil
			} else {
				updates[key] = *t
			}
		default:
			return nil, &project.InvalidFieldError{Field: key}
		}
	}
	return updates, nil
}

func stringValue(field string, raw interface{}) (string, error) {
	if raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &project.ValidationError{Fields: []string{field}, Reason: "expected a string"}
	}
	return strings.TrimSpace(s), nil
}

func dateValue(field string, raw interface{}) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, &project.ValidationError{Fields: []string{field}, Reason: "expected a YYYY-MM-DD string"}
	}
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, &project.ValidationError{Fields: []string{"id"}, Reason: "id must be a positive integer"}
	}
	return uint(id), nil
}
