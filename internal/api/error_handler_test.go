package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kukuhtri1999/BodySync/internal/api/validation"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/pkg/token"
)

func handle(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(zerolog.Nop())(err, e.NewContext(req, rec))
	return rec
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("create workout: %w", domain.ErrUserNotFound), http.StatusNotFound, "User not found"},
		{domain.ErrActivityNotFound, http.StatusNotFound, "Fitness activity not found"},
		{domain.ErrReferenceNotFound, http.StatusNotFound, "Referenced record not found"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{domain.ErrIncorrectPassword, http.StatusUnauthorized, "Incorrect old password"},
		{token.ErrTokenExpired, http.StatusUnauthorized, ""},
		{token.ErrTokenInvalid, http.StatusUnauthorized, ""},
		{domain.ErrForbidden, http.StatusForbidden, "Access forbidden"},
		{fmt.Errorf("register: %w", domain.ErrEmailTaken), http.StatusBadRequest, "Email is already in use"},
		{domain.ErrActivityInUse, http.StatusConflict, ""},
		{echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), http.StatusUnauthorized, "missing authorization header"},
		{errors.New("connection reset"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := handle(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error == "" {
				t.Fatalf("expected error message")
			}
			if tc.msg != "" && body.Error != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestErrorHandler_ValidationEnvelope(t *testing.T) {
	rec := handle(t, &validation.Error{Violations: []validation.Violation{
		{Field: "email", Message: "Invalid email address"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Errors []validation.Violation `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Errors) != 2 || body.Errors[0].Field != "email" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestErrorHandler_InternalErrorDoesNotLeak(t *testing.T) {
	rec := handle(t, errors.New("pq: password authentication failed for user bodysync"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := rec.Body.String(); got == "" || strings.Contains(got, "pq:") {
		t.Fatalf("internal detail leaked: %s", got)
	}
}
