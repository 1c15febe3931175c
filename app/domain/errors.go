package domain

import "errors"

// Storefront errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUnauthorized       = errors.New("unauthorized")

	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")

	// Order errors
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no lines")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidEmail = errors.New("invalid email")

	// General errors
	ErrInternal         = errors.New("internal error")
	ErrResourceNotFound = errors.New("resource not found")
)

// ErrorKind classifies failures surfaced by the client-side stores and the
// API client so callers can render them distinctly.
type ErrorKind string

const (
	// ErrorKindValidation is malformed or missing input, caught before any
	// network call is made.
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindAuthentication is a server rejection of the credentials or
	// token (401 / invalid-credentials responses).
	ErrorKindAuthentication ErrorKind = "authentication"
	// ErrorKindNetwork means the request never reached the server.
	ErrorKindNetwork ErrorKind = "network"
	// ErrorKindUnknown covers every other failure shape, including
	// malformed server responses.
	ErrorKindUnknown ErrorKind = "unknown"
)

// AuthError is the typed error returned by session-store operations and the
// storefront API client. The originating state is always left unchanged
// when one of these is returned.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new classified error.
func NewAuthError(kind ErrorKind, message string, cause error) *AuthError {
	return &AuthError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// KindOf extracts the classification from an error chain. Errors that carry
// no classification report ErrorKindUnknown.
func KindOf(err error) ErrorKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUnauthorized) {
		return ErrorKindAuthentication
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidEmail) {
		return ErrorKindValidation
	}
	return ErrorKindUnknown
}
