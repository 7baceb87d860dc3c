package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	store := filepath.Join(t.TempDir(), uuid.NewString())
	d, err := Open(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func tableNames(t *testing.T, d *DB) map[string]bool {
	t.Helper()
	rows, err := d.Conn().Query(
		`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rows.Close()

	names := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names[name] = true
	}
	return names
}

func TestOpen_AppendsStoreSuffix(t *testing.T) {
	store := filepath.Join(t.TempDir(), "mystore")
	d, err := Open(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer d.Close()

	if d.DatabaseName != store+".ser" {
		t.Errorf("database name = %q, want %q", d.DatabaseName, store+".ser")
	}
}

func TestOpen_CreatesTables(t *testing.T) {
	d := openTestDB(t)
	names := tableNames(t, d)
	if !names["source"] {
		t.Error("source table missing")
	}
	if !names["people"] {
		t.Error("people table missing")
	}
}

func TestOpen_ExistingTablesAreBenign(t *testing.T) {
	store := filepath.Join(t.TempDir(), "reopened")
	first, err := Open(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Close()

	second, err := Open(store)
	if err != nil {
		t.Fatalf("reopening an existing store must succeed: %v", err)
	}
	second.Close()
}

func TestOpen_ExistingUnrelatedDatabase(t *testing.T) {
	store := filepath.Join(t.TempDir(), "occupied")
	pre, err := sql.Open("sqlite", store+StoreSuffix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := pre.Exec(`CREATE TABLE foo (bar TEXT)`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pre.Close()

	d, err := Open(store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer d.Close()

	names := tableNames(t, d)
	if !names["source"] || !names["people"] {
		t.Error("schema should be added alongside existing tables")
	}
}

func TestInsertPerson_RoundTrip(t *testing.T) {
	d := openTestDB(t)

	first := "Ada"
	last := "Lovelace"
	row := PersonRow{ID: "abc123", FirstName: &first, LastName: &last, Gender: "f"}
	if err := d.InsertPerson(row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := d.GetPerson("abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.FirstName != "Ada" || *got.LastName != "Lovelace" {
		t.Errorf("got %+v", got)
	}
	if got.MiddleName != nil {
		t.Errorf("middle name should be NULL, got %v", *got.MiddleName)
	}
}

func TestInsertPerson_DuplicateIsNoOp(t *testing.T) {
	d := openTestDB(t)

	name := "Ada"
	row := PersonRow{ID: "abc123", FirstName: &name, Gender: "f"}
	if err := d.InsertPerson(row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	changed := "Augusta"
	row.FirstName = &changed
	if err := d.InsertPerson(row); err != nil {
		t.Fatalf("duplicate insert must not error: %v", err)
	}

	got, err := d.GetPerson("abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got.FirstName != "Ada" {
		t.Errorf("first write wins, got %q", *got.FirstName)
	}
}

func TestGetPerson_Missing(t *testing.T) {
	d := openTestDB(t)
	_, err := d.GetPerson("nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("want sql.ErrNoRows, got %v", err)
	}
}

func TestInsertSource_RoundTrip(t *testing.T) {
	d := openTestDB(t)

	row := SourceRow{
		ID:        "feed5eed",
		Type:      "census",
		Authority: "Census Bureau",
		Author:    "enumerator 12",
		Title:     "1901 census, page 4",
		Created:   "2026-08-29",
	}
	if err := d.InsertSource(row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := d.GetSource("feed5eed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != row {
		t.Errorf("got %+v, want %+v", *got, row)
	}
}

func TestAllPeople_Ordering(t *testing.T) {
	d := openTestDB(t)

	for _, p := range []struct{ id, first, last string }{
		{"1", "Charles", "Babbage"},
		{"2", "Ada", "Lovelace"},
		{"3", "Annabella", "Byron"},
	} {
		first, last := p.first, p.last
		err := d.InsertPerson(PersonRow{ID: p.id, FirstName: &first, LastName: &last, Gender: "f"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	people, err := d.AllPeople()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 3 {
		t.Fatalf("got %d people, want 3", len(people))
	}
	if *people[0].LastName != "Babbage" || *people[2].LastName != "Lovelace" {
		t.Errorf("wrong order: %v, %v", *people[0].LastName, *people[2].LastName)
	}
}
