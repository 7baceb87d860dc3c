package identity

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Normalize canonicalizes a structured value so that equivalent inputs
// compare (and hash) identically. Kinds are handled in a fixed priority
// order: map, Date, time.Time, string, slice, scalar.
//
//   - maps keep their keys as-is; only the values are normalized
//   - strings are lowercased
//   - timestamps lose sub-second precision
//   - dates keep year/month/day only
//   - everything else is stringified
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Normalize(elem)
		}
		return out
	case Date:
		return val
	case time.Time:
		return val.Truncate(time.Second)
	case string:
		return strings.ToLower(val)
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Normalize(elem)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Normalize(elem)
		}
		return out
	default:
		return fmt.Sprint(val)
	}
}

// linearize renders an already-normalized value in the canonical string
// form that feeds the hash: maps become "{k=v,...}" with byte-sorted
// keys, slices become "[e,e,...]", timestamps render as ISO seconds.
func linearize(v any) string {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + linearize(val[k])
		}
		return "{" + strings.Join(parts, ",") + "}"
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = linearize(elem)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case Date:
		return val.String()
	case time.Time:
		return val.Format("2006-01-02T15:04:05")
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
