package gigapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError carries the status and raw body of a non-2xx platform response.
// Interpretation is left to the caller.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform api: status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports whether err is a platform 401.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a platform 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
