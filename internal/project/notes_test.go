package project

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

var notePrefix = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}\]: `)

func TestAppendNote_OrderAndTimestamps(t *testing.T) {
	db := openTestDB(t)
	p := mustCreate(t, db, baseOpts("noted"))

	if _, err := AppendNote(db, p.ID, "first call with client"); err != nil {
		t.Fatalf("AppendNote: %v", err)
	}
	updated, err := AppendNote(db, p.ID, "second call, sent draft")
	if err != nil {
		t.Fatalf("AppendNote: %v", err)
	}

	entries := SplitNotes(updated.Notes)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if !strings.Contains(entries[0], "first call") || !strings.Contains(entries[1], "second call") {
		t.Errorf("entries out of order: %v", entries)
	}
	for _, e := range entries {
		if !notePrefix.MatchString(e) {
			t.Errorf("entry %q missing timestamp prefix", e)
		}
	}
}

func TestAppendNote_PreservesExistingEntries(t *testing.T) {
	db := openTestDB(t)
	p := mustCreate(t, db, baseOpts("history"))

	before, err := AppendNote(db, p.ID, "original entry")
	if err != nil {
		t.Fatalf("AppendNote: %v", err)
	}
	after, err := AppendNote(db, p.ID, "later entry")
	if err != nil {
		t.Fatalf("AppendNote: %v", err)
	}
	if !strings.HasPrefix(after.Notes, before.Notes) {
		t.Errorf("append rewrote prior entries:\nbefore=%q\nafter=%q", before.Notes, after.Notes)
	}
}

func TestAppendNote_RejectsWhitespaceOnly(t *testing.T) {
	db := openTestDB(t)
	p := mustCreate(t, db, baseOpts("strict"))

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := AppendNote(db, p.ID, text)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("AppendNote(%q) err = %v, want *ValidationError", text, err)
		}
	}

	got, err := Get(db, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Notes != "" {
		t.Errorf("notes = %q, want untouched", got.Notes)
	}
}

func TestAppendNote_NotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := AppendNote(db, 404, "into the void"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	p := mustCreate(t, db, baseOpts("deleted"))
	if err := SoftDelete(db, p.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if _, err := AppendNote(db, p.ID, "too late"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("append to deleted project err = %v, want ErrNotFound", err)
	}
}

func TestSplitNotes_Empty(t *testing.T) {
	if got := SplitNotes(""); got != nil {
		t.Errorf("SplitNotes(\"\") = %v, want nil", got)
	}
	if got := SplitNotes("one line"); len(got) != 1 {
		t.Errorf("SplitNotes single = %v, want one entry", got)
	}
}
