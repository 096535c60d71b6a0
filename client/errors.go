package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is matched by any 401 response. At login it means bad
// credentials; on a protected call it means the token is no longer valid.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the articles API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is a 401 from the API
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
