package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/domain"
)

// Envelope is the uniform response wrapper. Success responses carry data
// and, for lists, pagination; error responses carry the error message.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// OK writes a success envelope
func OK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

// OKPaginated writes a success envelope with pagination metadata
func OKPaginated(c echo.Context, data interface{}, pagination domain.Pagination) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &pagination})
}

// Fail writes an error envelope
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Error: message})
}

// FailFromError maps a domain error to the right status code and writes
// the error envelope. Internal detail is never leaked to the client.
func FailFromError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrBrandNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrResourceNotFound):
		return Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Fail(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrUnauthorized):
		return Fail(c, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return Fail(c, http.StatusConflict, "a user with this email already exists")
	case errors.Is(err, domain.ErrEmptyOrder):
		return Fail(c, http.StatusBadRequest, "order must contain at least one item")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidEmail):
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	switch domain.KindOf(err) {
	case domain.ErrorKindValidation:
		return Fail(c, http.StatusBadRequest, err.Error())
	case domain.ErrorKindAuthentication:
		return Fail(c, http.StatusUnauthorized, "authentication failed")
	case domain.ErrorKindNetwork:
		return Fail(c, http.StatusBadGateway, "upstream service unavailable")
	default:
		return Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
