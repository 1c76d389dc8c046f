package project

import (
	"reflect"
	"testing"
)

func TestNormalize_CaseFold(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, baseOpts("seed")) // stores department "Public Works"

	for _, candidate := range []string{"public works", "PUBLIC WORKS", "Public Works", "  public works  "} {
		got, err := Normalize(db, "department", candidate)
		if err != nil {
			t.Fatalf("Normalize(department, %q): %v", candidate, err)
		}
		if got != "Public Works" {
			t.Errorf("Normalize(department, %q) = %q, want %q", candidate, got, "Public Works")
		}
	}
}

func TestNormalize_NewValuePassesThrough(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, baseOpts("seed"))

	got, err := Normalize(db, "department", "Finance")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "Finance" {
		t.Errorf("Normalize = %q, want candidate returned as typed", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, baseOpts("seed"))

	for _, field := range NormalizedFields {
		for _, x := range []string{"Public Works", "smith, j.", "Brand New Dept"} {
			once, err := Normalize(db, field, x)
			if err != nil {
				t.Fatalf("Normalize(%s, %q): %v", field, x, err)
			}
			twice, err := Normalize(db, field, once)
			if err != nil {
				t.Fatalf("Normalize(%s, %q): %v", field, once, err)
			}
			if once != twice {
				t.Errorf("Normalize(%s) not idempotent: %q then %q", field, once, twice)
			}
		}
	}
}

func TestNormalize_InvalidField(t *testing.T) {
	db := openTestDB(t)
	if _, err := Normalize(db, "status", "Completed"); err == nil {
		t.Fatal("expected InvalidFieldError for non-normalizable field")
	}
}

func TestNormalize_IgnoresDeletedProjects(t *testing.T) {
	db := openTestDB(t)
	opts := baseOpts("doomed")
	opts.Department = "Secret Dept"
	p := mustCreate(t, db, opts)
	if err := SoftDelete(db, p.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	got, err := Normalize(db, "department", "secret dept")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	// The deleted project's casing must not win; the candidate stands.
	if got != "secret dept" {
		t.Errorf("Normalize = %q, want %q", got, "secret dept")
	}
}

func TestNormalize_TieBreakPrefersEarliestInserted(t *testing.T) {
	db := openTestDB(t)
	// Two pre-existing case variants of the same department.
	a := baseOpts("first")
	a.Department = "public works"
	mustCreate(t, db, a)
	b := baseOpts("second")
	b.Department = "PUBLIC WORKS"
	mustCreate(t, db, b)

	got, err := Normalize(db, "department", "Public Works")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "public works" {
		t.Errorf("Normalize = %q, want earliest-inserted casing %q", got, "public works")
	}
}

func TestDistinctValues_SortedAndDeduped(t *testing.T) {
	db := openTestDB(t)
	for _, dept := range []string{"Planning", "Finance", "finance", "Health Services"} {
		opts := baseOpts("p-" + dept)
		opts.Department = dept
		mustCreate(t, db, opts)
	}

	got, err := DistinctValues(db, "department")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	want := []string{"Finance", "Health Services", "Planning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues = %v, want %v", got, want)
	}
}

func TestDistinctValues_InvalidField(t *testing.T) {
	db := openTestDB(t)
	if _, err := DistinctValues(db, "notes"); err == nil {
		t.Fatal("expected InvalidFieldError for notes")
	}
	if _, err := DistinctValues(db, "nope"); err == nil {
		t.Fatal("expected InvalidFieldError for unknown field")
	}
}

func TestDistinctValues_SkipsEmptyAndDeleted(t *testing.T) {
	db := openTestDB(t)
	withGroup := baseOpts("grouped")
	withGroup.ProjectGroup = "Riverside Corridor"
	mustCreate(t, db, withGroup)
	mustCreate(t, db, baseOpts("ungrouped"))

	deleted := baseOpts("gone")
	deleted.ProjectGroup = "Ghost Group"
	p := mustCreate(t, db, deleted)
	if err := SoftDelete(db, p.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	got, err := DistinctValues(db, "project_group")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	if len(got) != 1 || got[0] != "Riverside Corridor" {
		t.Errorf("DistinctValues = %v, want only %q", got, "Riverside Corridor")
	}
}

func TestCreate_NormalizesDepartmentScenario(t *testing.T) {
	db := openTestDB(t)
	mustCreate(t, db, baseOpts("existing")) // department "Public Works"

	opts := baseOpts("new one")
	opts.Department = "public works"
	p := mustCreate(t, db, opts)
	if p.Department != "Public Works" {
		t.Errorf("stored department = %q, want canonical %q", p.Department, "Public Works")
	}
}
