package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response normalized into a single message.
// Downstream display logic assumes Detail is one string.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// Unwrap exposes sentinel errors for errors.Is matching.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return nil
	}
}
