package bart

import (
	"errors"
	"fmt"

	"github.com/travigo/bart/pkg/fields"
)

var (
	// ErrDecode is returned when a response doesn't match the expected shape.
	ErrDecode = fields.ErrDecode

	ErrInvalidOptions = errors.New("invalid request options")
)

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Temporary reports whether the request is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// APIError is returned when the API answers with an error message, for
// example an invalid key or an unknown station.
type APIError struct {
	Endpoint Endpoint
	Text     string
	Details  string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Text)
	}

	return fmt.Sprintf("%s: %s: %s", e.Endpoint, e.Text, e.Details)
}
