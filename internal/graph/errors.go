package graph

import "fmt"

// RequestError reports a non-2xx response from the graph store. The
// client never retries; the error carries enough of the exchange for the
// caller to decide what to do with it.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s",
		e.Method, e.URL, e.StatusCode, e.Body)
}
