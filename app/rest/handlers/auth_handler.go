package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// LoginRequest is the POST /auth/login body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the POST /auth/register body
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// SessionResponse carries the authenticated user and their access token
type SessionResponse struct {
	User        domain.Identity `json:"user"`
	AccessToken string          `json:"access_token"`
}

// Login exchanges credentials for a session token
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind login request", "error", err)
		return Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := requestValidator.Validate(&req); err != nil {
		h.logger.Warn("invalid login request", "error", err)
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	session, err := h.authUsecase.Login(ctx, domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warn("login failed", "email", req.Email, "kind", domain.KindOf(err))
		return FailFromError(c, err)
	}

	h.logger.Info("login successful", "user_id", session.Identity.ID)

	return OK(c, http.StatusOK, SessionResponse{
		User:        session.Identity,
		AccessToken: string(session.AccessToken),
	})
}

// Register creates an account; the provider signs the user in so the
// response carries a usable token immediately
func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("failed to bind register request", "error", err)
		return Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := requestValidator.Validate(&req); err != nil {
		h.logger.Warn("invalid register request", "error", err)
		return Fail(c, http.StatusBadRequest, err.Error())
	}

	session, err := h.authUsecase.Register(ctx, domain.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Warn("registration failed", "email", req.Email, "kind", domain.KindOf(err))
		return FailFromError(c, err)
	}

	h.logger.Info("registration successful", "user_id", session.Identity.ID)

	return OK(c, http.StatusCreated, SessionResponse{
		User:        session.Identity,
		AccessToken: string(session.AccessToken),
	})
}

// Me returns the identity behind the bearer token. The auth middleware
// has already resolved it into the request context.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := c.Get("user").(*domain.Identity)
	if !ok || identity == nil {
		return Fail(c, http.StatusUnauthorized, "authentication required")
	}

	return OK(c, http.StatusOK, identity)
}
