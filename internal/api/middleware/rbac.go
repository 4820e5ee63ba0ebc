package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// RequireSelf lets the request through only when the authenticated user is
// the one named by the path parameter. It must run after Auth.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := UserID(c)
			if !ok {
				return domain.ErrForbidden
			}
			target, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err != nil || target != caller {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
