package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/harlowe/docket/internal/project"
	"gorm.io/gorm"
)

// csvHeader lists the export columns in order.
var csvHeader = []string{
	"ID",
	"Project Name",
	"Project Group",
	"Department",
	"Date to Client",
	"Date Assigned",
	"Assigned Attorney",
	"QCP Attorney",
	"Internal Deadline",
	"Delivery Deadline",
	"Status",
	"Notes",
}

// maxCSVNoteLen caps the exported notes column; longer blobs are truncated
// with a trailing ellipsis marker.
const maxCSVNoteLen = 200

// ExportCSV serializes every project matching the filters as CSV text with
// a header row. Filter semantics are identical to project.List, so
// Completed and soft-deleted projects are excluded unless the filters say
// otherwise. Quoting follows encoding/csv, so values containing commas,
// quotes or newlines round-trip through any compliant reader.
func ExportCSV(db *gorm.DB, f project.Filters) (string, error) {
	projects, err := project.List(db, f)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}

	for i := range projects {
		p := &projects[i]
		record := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.ProjectName,
			p.ProjectGroup,
			p.Department,
			formatDate(&p.DateToClient),
			formatDate(&p.DateAssignedToUs),
			p.AssignedAttorney,
			p.QCPAttorney,
			formatDate(p.InternalDeadline),
			formatDate(p.DeliveryDeadline),
			p.Status,
			truncateNotes(p.Notes),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("report: write csv row %d: %w", p.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: flush csv: %w", err)
	}
	return buf.String(), nil
}

// truncateNotes caps notes at maxCSVNoteLen characters, marking the cut
// with "...".
func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) <= maxCSVNoteLen {
		return notes
	}
	return string(runes[:maxCSVNoteLen-3]) + "..."
}
