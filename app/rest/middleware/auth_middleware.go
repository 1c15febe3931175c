package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// AuthMiddleware resolves bearer tokens to identities via the identity
// provider. The token itself is opaque to this service.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAuth middleware that requires a valid bearer token
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractBearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := m.authUsecase.UserFromToken(ctx, domain.AccessToken(token))
			if err != nil {
				m.logger.Warn("token validation failed", "kind", domain.KindOf(err))
				if domain.KindOf(err) == domain.ErrorKindNetwork {
					return echo.NewHTTPError(http.StatusBadGateway, "identity provider unavailable")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			// Set user context
			c.Set("user", identity)
			c.Set("user_id", identity.ID)
			c.Set("user_email", identity.Email)

			return next(c)
		}
	}
}

// OptionalAuth resolves the token when present but lets anonymous
// requests through
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := m.extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			identity, err := m.authUsecase.UserFromToken(ctx, domain.AccessToken(token))
			if err != nil {
				m.logger.Debug("optional auth failed", "kind", domain.KindOf(err))
				return next(c)
			}

			c.Set("user", identity)
			c.Set("user_id", identity.ID)
			c.Set("user_email", identity.Email)

			return next(c)
		}
	}
}

// extractBearerToken extracts the access token from the Authorization
// header. Both "Bearer <token>" and a raw token are accepted.
func (m *AuthMiddleware) extractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}
