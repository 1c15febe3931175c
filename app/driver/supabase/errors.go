package supabase

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from GoTrue.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.StatusCode)
}

// IsInvalidCredentials reports whether the error is a credential rejection
// rather than some other provider failure.
func IsInvalidCredentials(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}
	switch apiErr.Code {
	case "invalid_credentials", "invalid_grant":
		return true
	}
	return false
}

// IsUserExists reports whether a signup failed because the email is taken.
func IsUserExists(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case "user_already_exists", "email_exists":
		return true
	}
	return apiErr.StatusCode == http.StatusUnprocessableEntity
}
