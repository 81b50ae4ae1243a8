// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inspire

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates no INSPIRE record matched the query.
var ErrNotFound = errors.New("record not found in INSPIRE")

// APIError represents a non-2xx response from the INSPIRE API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("INSPIRE API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("INSPIRE API error (HTTP %d)", e.StatusCode)
}

// IsNotFound reports whether err indicates a missing record, either the
// sentinel or an HTTP 404.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
