// Package identity generates stable content-derived identifiers for
// records held in the relational and graph stores.
//
// Identifiers are SHA-1 digests of a canonical string rendering of the
// record: "type#{key=value,...}" with the type lowercased, map keys
// byte-sorted, string values lowercased, and timestamps truncated to
// whole seconds. Two attribute maps that differ only in key ordering,
// string case, or sub-second precision produce the same identifier.
// The digest is an opaque lowercase hex string; callers must never
// alter its case.
package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// Hash computes the identifier for an object of the given type with the
// given attributes. It is total over JSON-like values (maps, slices,
// strings, numbers, booleans, timestamps, Dates).
func Hash(objectType string, data any) string {
	canonical := strings.ToLower(objectType) + "#" + linearize(Normalize(data))
	sum := sha1.Sum([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
