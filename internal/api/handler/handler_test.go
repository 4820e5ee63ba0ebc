package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/validation"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

// --- stubs ---

type stubAuthService struct {
	registered ports.RegisterInput
	loginErr   error
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.registered = in
	return &domain.User{ID: 1, Username: in.Username, Email: in.Email, PasswordHash: "hash", Height: in.Height, Weight: in.Weight}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
		User:      &domain.User{ID: 1, Email: email},
	}, nil
}

type stubUserService struct {
	updated ports.UpdateProfileInput
}

func (s *stubUserService) List(context.Context) ([]domain.UserSummary, error) {
	return []domain.UserSummary{{ID: 1, Email: "ann@x.io", Username: "ann"}}, nil
}

func (s *stubUserService) Get(_ context.Context, id int64) (*domain.User, error) {
	if id != 1 {
		return nil, domain.ErrUserNotFound
	}
	return &domain.User{ID: 1, Username: "ann", Email: "ann@x.io", PasswordHash: "hash"}, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	s.updated = in
	return &domain.User{ID: in.UserID, Username: in.Username, Email: in.Email}, nil
}

func (s *stubUserService) Delete(context.Context, int64) error { return nil }

type stubWorkoutService struct {
	created  ports.WorkoutInput
	replayed bool
	err      error
}

func (s *stubWorkoutService) List(context.Context) ([]domain.Workout, error) { return nil, nil }

func (s *stubWorkoutService) Get(_ context.Context, id int64) (*domain.Workout, error) {
	return &domain.Workout{ID: id}, s.err
}

func (s *stubWorkoutService) ListByUser(_ context.Context, userID int64) ([]domain.Workout, error) {
	return []domain.Workout{{ID: 1, UserID: userID}}, s.err
}

func (s *stubWorkoutService) ListByActivity(_ context.Context, activityID int64) ([]domain.Workout, error) {
	return []domain.Workout{{ID: 1, ActivityID: activityID}}, s.err
}

func (s *stubWorkoutService) Create(_ context.Context, in ports.WorkoutInput) (*domain.Workout, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	s.created = in
	return &domain.Workout{ID: 7, UserID: in.UserID, ActivityID: in.ActivityID, Date: in.Date}, s.replayed, nil
}

func (s *stubWorkoutService) Update(_ context.Context, id int64, in ports.WorkoutInput) (*domain.Workout, error) {
	return &domain.Workout{ID: id, UserID: in.UserID}, s.err
}

func (s *stubWorkoutService) Delete(context.Context, int64) error { return s.err }

// --- helpers ---

var validator = validation.New()

// serve runs h behind the validation middleware for rules, the same way the
// router mounts it.
func serve(t *testing.T, method, body string, rules validation.RuleSet, h echo.HandlerFunc, params ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return rec, validator.Middleware(rules)(h)(c)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body
}

// --- auth ---

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	rec, err := serve(t, http.MethodPost, `{"username":"ann","email":"ann@x.io","password":"secret1","height":"165.5","weight":60}`,
		validation.Register, h.Register)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered.Height != 165.5 || svc.registered.Password != "secret1" {
		t.Errorf("unexpected register input: %+v", svc.registered)
	}

	body := decodeBody(t, rec)
	if body["message"] != "User successfully registered" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Errorf("response leaked the password hash: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationFails(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	_, err := serve(t, http.MethodPost, `{"username":"an","email":"ann@x.io","password":"secret1","height":165,"weight":60}`,
		validation.Register, h.Register)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Field != "username" {
		t.Errorf("unexpected violations: %+v", verr.Violations)
	}
	if svc.registered.Email != "" {
		t.Error("service must not be called when validation fails")
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := serve(t, http.MethodPost, `{"email":"ann@x.io","password":"secret1"}`, validation.Login, h.Login)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["token"] != "signed.jwt.token" {
		t.Errorf("unexpected token: %v", body["token"])
	}
	if body["expiresAt"] != "2024-01-01T13:00:00Z" {
		t.Errorf("unexpected expiresAt: %v", body["expiresAt"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	_, err := serve(t, http.MethodPost, `{"email":"ann@x.io","password":"wrongpass"}`, validation.Login, h.Login)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec, err := serve(t, http.MethodPost, "", nil, h.Logout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || decodeBody(t, rec)["message"] != "Logout successful" {
		t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

// --- users ---

func TestUserHandler_GetHidesPassword(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	rec, err := serve(t, http.MethodGet, "", validation.ID("userId"), h.Get, "userId", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := decodeBody(t, rec)
	if _, ok := body["password"]; ok {
		t.Error("password must not be serialised")
	}
	if body["username"] != "ann" {
		t.Errorf("unexpected username: %v", body["username"])
	}
}

func TestUserHandler_GetUnknown(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	_, err := serve(t, http.MethodGet, "", validation.ID("userId"), h.Get, "userId", "2")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	rec, err := serve(t, http.MethodGet, "", nil, h.List)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || len(list[0]) != 3 {
		t.Errorf("expected one summary with three fields, got %v", list)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	body := `{"username":"annie","email":"ann@x.io","password":"secret1","newPassword":"brandnew","height":166,"weight":58}`
	rec, err := serve(t, http.MethodPut, body, validation.UpdateProfile, h.Update, "userId", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updated.UserID != 1 || svc.updated.CurrentPassword != "secret1" || svc.updated.NewPassword != "brandnew" {
		t.Errorf("unexpected update input: %+v", svc.updated)
	}
}

// --- workouts ---

const workoutJSON = `{"userId":1,"activityId":"2","date":"2024-01-15T07:30:00Z","duration":30,"caloriesBurned":300,"notes":"easy"}`

func TestWorkoutHandler_Create(t *testing.T) {
	svc := &stubWorkoutService{}
	h := NewWorkoutHandler(svc)

	rec, err := serve(t, http.MethodPost, workoutJSON, validation.CreateWorkout, h.Create)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	in := svc.created
	if in.UserID != 1 || in.ActivityID != 2 || in.Duration != 30 || in.CaloriesBurned != 300 {
		t.Errorf("unexpected workout input: %+v", in)
	}
	if in.Notes == nil || *in.Notes != "easy" {
		t.Errorf("expected notes to be set, got %v", in.Notes)
	}
	if !in.Date.Equal(time.Date(2024, 1, 15, 7, 30, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", in.Date)
	}
}

func TestWorkoutHandler_Create_ReplayAnswers200(t *testing.T) {
	svc := &stubWorkoutService{replayed: true}
	h := NewWorkoutHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(workoutJSON))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(HeaderIdempotencyKey, "req-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := validator.Middleware(validation.CreateWorkout)(h.Create)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", rec.Code)
	}
	if svc.created.IdempotencyKey != "req-1" {
		t.Errorf("expected idempotency key to reach the service, got %q", svc.created.IdempotencyKey)
	}
}

func TestWorkoutHandler_Create_MissingReference(t *testing.T) {
	h := NewWorkoutHandler(&stubWorkoutService{err: domain.ErrActivityNotFound})

	_, err := serve(t, http.MethodPost, workoutJSON, validation.CreateWorkout, h.Create)
	if !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestWorkoutHandler_Create_BadDate(t *testing.T) {
	h := NewWorkoutHandler(&stubWorkoutService{})

	body := strings.Replace(workoutJSON, "2024-01-15T07:30:00Z", "15/01/2024", 1)
	_, err := serve(t, http.MethodPost, body, validation.CreateWorkout, h.Create)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	if verr.Violations[0].Message != "Invalid date format" {
		t.Errorf("unexpected violation: %+v", verr.Violations[0])
	}
}

func TestWorkoutHandler_ListByUser(t *testing.T) {
	h := NewWorkoutHandler(&stubWorkoutService{})

	rec, err := serve(t, http.MethodGet, "", validation.ID("userId"), h.ListByUser, "userId", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var list []domain.Workout
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].UserID != 3 {
		t.Errorf("unexpected workouts: %+v", list)
	}
}

func TestWorkoutHandler_Update(t *testing.T) {
	h := NewWorkoutHandler(&stubWorkoutService{})

	rec, err := serve(t, http.MethodPut, workoutJSON, validation.UpdateWorkout, h.Update, "workoutId", "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var w domain.Workout
	if err := json.Unmarshal(rec.Body.Bytes(), &w); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.ID != 9 {
		t.Errorf("expected path id 9, got %d", w.ID)
	}
}

func TestWorkoutHandler_Delete(t *testing.T) {
	h := NewWorkoutHandler(&stubWorkoutService{})

	rec, err := serve(t, http.MethodDelete, "", validation.ID("workoutId"), h.Delete, "workoutId", "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("expected empty 204, got %d %q", rec.Code, rec.Body.String())
	}
}

// --- health ---

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(nil)

	rec, err := serve(t, http.MethodGet, "", nil, h.Liveness)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantCode   int
		wantStatus string
	}{
		{"all healthy", map[string]Pinger{"postgres": ok, "redis": ok}, http.StatusOK, "ok"},
		{"one down", map[string]Pinger{"postgres": ok, "mongo": down}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(t, http.MethodGet, "", nil, NewHealthHandler(tt.deps).Readiness)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			var body readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.wantStatus || len(body.Dependencies) != len(tt.deps) {
				t.Errorf("unexpected body: %+v", body)
			}
		})
	}
}
