package project

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harlowe/docket/internal/models"
	"gorm.io/gorm"
)

// distinctStored returns the distinct non-empty values of a column over
// non-deleted projects, ordered by first insertion. When the table already
// holds several casings of the same value, the earliest-inserted casing is
// kept; the later ones are dropped. Best effort, not a strict guarantee.
func distinctStored(db *gorm.DB, column string) ([]string, error) {
	type row struct {
		Value   string
		FirstID uint
	}
	var rows []row
	err := db.Model(&models.Project{}).
		Select(fmt.Sprintf("%s AS value, MIN(id) AS first_id", column)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s != ''", column, column)).
		Group(column).
		Order("first_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("project: distinct %s: %w", column, err)
	}

	seen := make(map[string]bool, len(rows))
	values := make([]string, 0, len(rows))
	for _, r := range rows {
		key := strings.ToLower(r.Value)
		if seen[key] {
			continue
		}
		seen[key] = true
		values = append(values, r.Value)
	}
	return values, nil
}

// DistinctValues returns the distinct values of a field across non-deleted
// projects, case-preserved and deduplicated case-insensitively, sorted
// alphabetically. Used for autocomplete and filter dropdowns.
func DistinctValues(db *gorm.DB, field string) ([]string, error) {
	if !distinctFields[field] {
		return nil, &InvalidFieldError{Field: field}
	}
	values, err := distinctStored(db, columns[field])
	if err != nil {
		return nil, err
	}
	sort.Slice(values, func(i, j int) bool {
		return strings.ToLower(values[i]) < strings.ToLower(values[j])
	})
	return values, nil
}

// Normalize canonicalizes a candidate value for one of the NormalizedFields
// against previously stored values. A case-insensitive match returns the
// stored casing verbatim; otherwise the candidate (trimmed) becomes the new
// canonical form. Read-only: the caller persists the result.
func Normalize(db *gorm.DB, field, value string) (string, error) {
	if !isNormalized(field) {
		return "", &InvalidFieldError{Field: field}
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return value, nil
	}

	existing, err := distinctStored(db, columns[field])
	if err != nil {
		return "", err
	}
	for _, canonical := range existing {
		if strings.EqualFold(canonical, value) {
			return canonical, nil
		}
	}
	return value, nil
}
