package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/validation"
)

// HeaderIdempotencyKey lets clients retry a create without duplicating it.
const HeaderIdempotencyKey = "Idempotency-Key"

// request returns the request context and the validated input of c.
func request(c echo.Context) (context.Context, *validation.Input) {
	return c.Request().Context(), validation.FromContext(c)
}

func idempotencyKey(c echo.Context) string {
	return c.Request().Header.Get(HeaderIdempotencyKey)
}

// created answers 201 for a new record and 200 for an idempotent replay.
func created(c echo.Context, replayed bool, body any) error {
	if replayed {
		return c.JSON(http.StatusOK, body)
	}
	return c.JSON(http.StatusCreated, body)
}
