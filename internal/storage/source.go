package storage

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/identity"
)

// Source records why something exists in the information model: the
// census page, parish register, or interview that a fact came from.
// Tracking why we believe something is almost as important as the what.
//
// A Source is immutable after creation and has no delete path. Its
// identifier is computed exactly once, from the title, type, and the
// date the record was entered; it is never recomputed, so re-entering
// the same source on a later day produces a distinct record.
type Source struct {
	ID        string
	Title     string
	Type      string
	Authority string
	Author    string
	Created   identity.Date
}

// NewSource creates a Source and fixes its identifier.
func NewSource(title, sourceType, authority, author string) *Source {
	created := identity.Today()
	sum := sha1.Sum([]byte(strings.Join(
		[]string{"source", title, sourceType, created.String()}, ":")))
	return &Source{
		ID:        hex.EncodeToString(sum[:]),
		Title:     title,
		Type:      sourceType,
		Authority: authority,
		Author:    author,
		Created:   created,
	}
}
