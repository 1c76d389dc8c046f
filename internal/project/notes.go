package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// noteTimeFormat is the minute-precision timestamp prefix of a note entry.
const noteTimeFormat = "2006-01-02 15:04"

// FormatNote renders a single note entry as "[YYYY-MM-DD HH:MM]: body".
func FormatNote(at time.Time, body string) string {
	return fmt.Sprintf("[%s]: %s", at.UTC().Format(noteTimeFormat), strings.TrimSpace(body))
}

// AppendNote appends a timestamped entry to a project's notes blob. Prior
// entries are never rewritten or reordered. Whitespace-only note text is
// rejected.
//
// Two concurrent appends to the same project can race read-modify-write and
// lose one entry (last write wins on the blob). Accepted limitation.
func AppendNote(db *gorm.DB, id uint, text string) (*models.Project, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Fields: []string{"note"}, Reason: "note text is empty"}
	}

	p, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	entry := FormatNote(time.Now(), text)
	blob := entry
	if p.Notes != "" {
		blob = p.Notes + "\n" + entry
	}

	if err := db.Model(p).Update("notes", blob).Error; err != nil {
		return nil, fmt.Errorf("project: append note to %d: %w", id, err)
	}
	return Get(db, id)
}

// SplitNotes splits a notes blob into its entries, newest last. An empty
// blob yields no entries.
func SplitNotes(blob string) []string {
	if blob == "" {
		return nil
	}
	return strings.Split(blob, "\n")
}
