package adapter

import "fmt"

// UpstreamError carries a non-2xx answer of the music catalog API.
// The HTTP layer mirrors StatusCode to the caller and wraps Body into the
// error message, so upstream failures pass through unchanged.
type UpstreamError struct {
	// StatusCode is the HTTP status the catalog API answered with.
	StatusCode int

	// Body is the raw upstream error body.
	Body string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("music catalog answered %d: %s", e.StatusCode, e.Body)
}
