package validation

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

const inputKey = "validation.input"

// Middleware parses the request, checks rules and stores the Input for the
// handler. Requests without a body (GET, DELETE) only carry path parameters.
func (val *Validator) Middleware(rules RuleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body io.Reader
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				body = c.Request().Body
			}

			in, err := Parse(body, pathParams(c))
			if errors.Is(err, ErrNotObject) {
				return &Error{Violations: []Violation{{Field: "body", Message: ErrNotObject.Error()}}}
			}
			if err != nil {
				return err
			}

			if err := val.Check(in, rules); err != nil {
				return err
			}

			c.Set(inputKey, in)
			return next(c)
		}
	}
}

// FromContext returns the Input stored by Middleware. Without the middleware
// it falls back to the path parameters alone.
func FromContext(c echo.Context) *Input {
	if in, ok := c.Get(inputKey).(*Input); ok {
		return in
	}
	return NewInput(nil, pathParams(c))
}

func pathParams(c echo.Context) map[string]string {
	names := c.ParamNames()
	values := c.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}
