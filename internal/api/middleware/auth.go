package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/pkg/token"
)

// UserIDKey is the echo context key holding the authenticated user ID.
const UserIDKey = "userId"

// TokenVerifier abstracts the JWT manager.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Auth validates the bearer token and injects the caller's user ID into the
// echo context and the request context. Token errors are returned as-is so
// the error handler can tell an expired token from a bad one.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(UserIDKey, claims.UserID)
			req := c.Request()
			c.SetRequest(req.WithContext(domain.WithActor(req.Context(), claims.UserID)))

			return next(c)
		}
	}
}

// UserID returns the authenticated user ID set by Auth.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(UserIDKey).(int64)
	return id, ok && id > 0
}
