package storage

import (
	"github.com/dave-shawley/massive-octo-dangerzone/internal/db"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/graph"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/identity"
)

// Person holds the already-validated attributes of a person record.
// Empty name parts mean "unknown"; Gender is the canonical word from
// the gender validator ("male" or "female").
type Person struct {
	FirstName  string
	MiddleName string
	LastName   string
	Gender     string
	Born       *identity.Date
}

// AddPerson persists a person in both stores: a Person-labeled node in
// the graph store and a row in the people table sharing the node's
// externalId. Entering the same person twice converges on the same
// identifier in both stores.
func (l *Layer) AddPerson(p Person) (*graph.Node, error) {
	data := map[string]any{"gender": p.Gender}
	if p.FirstName != "" {
		data["first_name"] = p.FirstName
	}
	if p.MiddleName != "" {
		data["middle_name"] = p.MiddleName
	}
	if p.LastName != "" {
		data["last_name"] = p.LastName
	}
	if p.Born != nil {
		data["born"] = *p.Born
	}

	node, err := l.CreateObject("Person", data, "")
	if err != nil {
		return nil, err
	}

	row := db.PersonRow{
		ID:         node.ExternalID(),
		FirstName:  optional(p.FirstName),
		MiddleName: optional(p.MiddleName),
		LastName:   optional(p.LastName),
		Gender:     p.Gender[:1],
	}
	if err := l.db.InsertPerson(row); err != nil {
		return nil, err
	}
	return node, nil
}

// AddSource persists a source in both stores. The source's digest was
// fixed at construction, so it is passed through as the explicit
// identifier instead of being recomputed from the attributes.
func (l *Layer) AddSource(src *Source) (*graph.Node, error) {
	data := map[string]any{
		"title":     src.Title,
		"type":      src.Type,
		"authority": src.Authority,
		"author":    src.Author,
		"created":   src.Created,
	}

	node, err := l.CreateObject("Source", data, src.ID)
	if err != nil {
		return nil, err
	}

	row := db.SourceRow{
		ID:        src.ID,
		Type:      src.Type,
		Authority: src.Authority,
		Author:    src.Author,
		Title:     src.Title,
		Created:   src.Created.String(),
	}
	if err := l.db.InsertSource(row); err != nil {
		return nil, err
	}
	return node, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
