package api

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/api/validation"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/pkg/token"
)

// errorResponse is the canonical error envelope for all API errors except
// validation failures, which render as {"errors": [...]}.
type errorResponse struct {
	Error string `json:"error"`
}

// knownErrors maps domain sentinels to HTTP codes. Specific not-found errors
// come before the generic one so the message names the missing entity.
var knownErrors = []struct {
	err  error
	code int
}{
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrActivityNotFound, http.StatusNotFound},
	{domain.ErrWorkoutNotFound, http.StatusNotFound},
	{domain.ErrNutritionNotFound, http.StatusNotFound},
	{domain.ErrGoalNotFound, http.StatusNotFound},
	{domain.ErrReferenceNotFound, http.StatusNotFound},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrIncorrectPassword, http.StatusUnauthorized},
	{token.ErrTokenExpired, http.StatusUnauthorized},
	{token.ErrTokenInvalid, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrEmailTaken, http.StatusBadRequest},
	{domain.ErrActivityInUse, http.StatusConflict},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 400 with every violation.
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			_ = c.JSON(http.StatusBadRequest, verr)
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (router 404/405, auth header problems, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Int("status", he.Code).Msg("http error")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.code, capitalize(k.err.Error())
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
