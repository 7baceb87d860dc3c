package graph

import (
	"encoding/json"
	"time"
)

// encodeBody marshals a request payload to JSON after rewriting
// timestamp values into the ordered integer lists the graph store
// expects: a time.Time becomes [year, month, day, hour, minute, second]
// with sub-second precision dropped, an identity.Date becomes
// [year, month, day].
func encodeBody(v any) ([]byte, error) {
	return json.Marshal(encodeValue(v))
}

func encodeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		t := val.Truncate(time.Second)
		return []int{t.Year(), int(t.Month()), t.Day(),
			t.Hour(), t.Minute(), t.Second()}
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = encodeValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = encodeValue(elem)
		}
		return out
	default:
		// identity.Date marshals itself as [y, m, d].
		return v
	}
}
