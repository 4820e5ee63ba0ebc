package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kukuhtri1999/BodySync/internal/api/handler"
	"github.com/kukuhtri1999/BodySync/internal/core/service"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/db/postgres"
	redisstore "github.com/kukuhtri1999/BodySync/internal/infrastructure/db/redis"
	"github.com/kukuhtri1999/BodySync/internal/infrastructure/queue"
	"github.com/kukuhtri1999/BodySync/internal/pkg/token"
)

type testServer struct {
	t *testing.T
	e *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()

	db, err := postgres.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), log)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	idem := redisstore.NewIdempotencyStore(rdb, time.Hour)

	tokens := token.NewManager("test-secret", time.Hour)
	audit := queue.NopRecorder{}
	users := postgres.NewUserRepository(db)
	reg := prometheus.NewRegistry()

	e := NewRouter(Deps{
		Auth:       service.NewAuthService(users, tokens, audit, log),
		Users:      service.NewUserService(users, audit, log),
		Activities: service.NewActivityService(postgres.NewActivityRepository(db), idem, audit, log),
		Workouts:   service.NewWorkoutService(postgres.NewWorkoutRepository(db), idem, audit, log),
		Nutrition:  service.NewNutritionService(postgres.NewNutritionRepository(db), idem, audit, log),
		Goals:      service.NewGoalService(postgres.NewGoalRepository(db), idem, audit, log),
		Tokens:     tokens,
		Health:     map[string]handler.Pinger{"postgres": sqlDB.PingContext},
		Log:        log,
		Registerer: reg,
		Gatherer:   reg,
	})
	return &testServer{t: t, e: e}
}

func (s *testServer) do(method, path, body, bearer string, headers ...string) *httptest.ResponseRecorder {
	s.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// register creates a user and returns its id and a fresh token.
func (s *testServer) register(username, email string) (int64, string) {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/register",
		fmt.Sprintf(`{"username":%q,"email":%q,"password":"secret1","height":165,"weight":60}`, username, email), "")
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[struct {
		User struct {
			ID int64 `json:"userId"`
		} `json:"user"`
	}](s.t, rec).User.ID

	rec = s.do(http.MethodPost, "/api/auth/login", fmt.Sprintf(`{"email":%q,"password":"secret1"}`, email), "")
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())
	return id, decode[map[string]string](s.t, rec)["token"]
}

func (s *testServer) createActivity(bearer string) int64 {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/fitness-activities", `{"activityName":"Running","activityType":"Cardio"}`, bearer)
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())
	return int64(decode[map[string]any](s.t, rec)["activityId"].(float64))
}

func workoutBody(userID, activityID int64) string {
	return fmt.Sprintf(`{"userId":%d,"activityId":%d,"date":"2024-01-15","duration":30,"caloriesBurned":300}`, userID, activityID)
}

func TestRouter_RegisterLoginProfileScenario(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"username":"ann","email":"ann@x.io","password":"secret1","height":165,"weight":60}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reg := decode[map[string]any](t, rec)
	assert.Equal(t, "User successfully registered", reg["message"])
	user := reg["user"].(map[string]any)
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
	id := int64(user["userId"].(float64))

	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ann@x.io","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decode[map[string]string](t, rec)
	require.NotEmpty(t, login["token"])
	require.NotEmpty(t, login["expiresAt"])

	claims, err := token.NewManager("test-secret", time.Hour).Verify(login["token"])
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d", id), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[map[string]any](t, rec)
	assert.Equal(t, "ann", profile["username"])
	assert.Equal(t, "ann@x.io", profile["email"])
	assert.NotContains(t, profile, "password")

	rec = s.do(http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]map[string]any](t, rec)
	require.Len(t, list, 1)
	keys := make([]string, 0, len(list[0]))
	for k := range list[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"userId", "email", "username"}, keys)

	rec = s.do(http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout successful", decode[map[string]string](t, rec)["message"])
}

func TestRouter_AuthErrors(t *testing.T) {
	s := newTestServer(t)
	s.register("ann", "ann@x.io")

	rec := s.do(http.MethodPost, "/api/auth/login", `{"email":"ann@x.io","password":"wrongpw"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decode[map[string]string](t, rec)["error"])

	rec = s.do(http.MethodPost, "/api/auth/register", `{"username":"ann","email":"ann@x.io","password":"secret1","height":165,"weight":60}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email is already in use", decode[map[string]string](t, rec)["error"])
}

func TestRouter_ValidationEnvelope(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/register", `{"username":"an","email":"bad","password":"123","height":"tall","weight":60}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[map[string][]map[string]string](t, rec)
	require.Len(t, body["errors"], 4)
	assert.Equal(t, "username", body["errors"][0]["field"])
	assert.Equal(t, "Invalid height", body["errors"][3]["message"])

	rec = s.do(http.MethodGet, "/api/workouts/abc", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid workoutId parameter", decode[map[string][]map[string]string](t, rec)["errors"][0]["message"])
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	s := newTestServer(t)
	annID, _ := s.register("ann", "ann@x.io")

	// validation runs before the bearer check
	rec := s.do(http.MethodPost, "/api/workouts", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, 1), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, 1), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, _, err := token.NewManager("test-secret", time.Hour, token.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	})).Issue(annID)
	require.NoError(t, err)
	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, 1), expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token expired", decode[map[string]string](t, rec)["error"])
}

func TestRouter_ProfileOwnership(t *testing.T) {
	s := newTestServer(t)
	annID, annToken := s.register("ann", "ann@x.io")
	bobID, _ := s.register("bob", "bob@x.io")

	update := `{"username":"annie","email":"ann@x.io","height":166,"weight":58}`
	rec := s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", bobID), update, annToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", annID), update, annToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "annie", decode[map[string]any](t, rec)["username"])

	wrongPw := `{"username":"annie","email":"ann@x.io","password":"wrongpw","newPassword":"brandnew","height":166,"weight":58}`
	rec = s.do(http.MethodPut, fmt.Sprintf("/api/users/%d", annID), wrongPw, annToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect old password", decode[map[string]string](t, rec)["error"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/users/%d", annID), "", annToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/users/%d", annID), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode[map[string]string](t, rec)["error"])
}

func TestRouter_WorkoutLifecycle(t *testing.T) {
	s := newTestServer(t)
	annID, tok := s.register("ann", "ann@x.io")
	activityID := s.createActivity(tok)

	rec := s.do(http.MethodPost, "/api/workouts", workoutBody(999, activityID), tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, 999), tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodGet, "/api/workouts", "", "")
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, activityID), tok, handler.HeaderIdempotencyKey, "req-1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[map[string]any](t, rec)

	rec = s.do(http.MethodPost, "/api/workouts", workoutBody(annID, activityID), tok, handler.HeaderIdempotencyKey, "req-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, first["workoutId"], decode[map[string]any](t, rec)["workoutId"])

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/workouts/user/%d", annID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/workouts/activity/%d", activityID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	rec = s.do(http.MethodGet, "/api/workouts/user/999", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/fitness-activities/%d", activityID), "", tok)
	assert.Equal(t, http.StatusConflict, rec.Code)

	workoutID := int64(first["workoutId"].(float64))
	rec = s.do(http.MethodPut, fmt.Sprintf("/api/workouts/%d", workoutID),
		fmt.Sprintf(`{"userId":%d,"activityId":%d,"date":"2024-01-16T07:00:00Z","duration":"45","caloriesBurned":420,"notes":"tempo"}`, annID, activityID), tok)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]any](t, rec)
	assert.Equal(t, float64(45), updated["duration"])
	assert.Equal(t, "tempo", updated["notes"])

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/workouts/%d", workoutID), "", tok)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	rec = s.do(http.MethodGet, fmt.Sprintf("/api/workouts/%d", workoutID), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/fitness-activities/%d", activityID), "", tok)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_NutritionAndGoals(t *testing.T) {
	s := newTestServer(t)
	annID, tok := s.register("ann", "ann@x.io")

	meal := fmt.Sprintf(`{"userId":%d,"date":"2024-01-15","mealType":"Lunch","foodItem":"Salad","caloriesConsumed":350,"protein":10,"carbohydrates":40,"fats":12}`, annID)
	rec := s.do(http.MethodPost, "/api/nutrition", meal, tok)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/nutrition/user/%d", annID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 1)

	goal := fmt.Sprintf(`{"userId":%d,"goalType":"weight","goalDescription":"Lose 2kg","targetValue":58,"progress":0,"achieved":false,"startDate":"2024-01-01","endDate":"2024-03-01"}`, annID)
	rec = s.do(http.MethodPost, "/api/goals", goal, tok)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	goalID := int64(decode[map[string]any](t, rec)["goalId"].(float64))

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/goals/%d", goalID), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]any](t, rec)["achieved"])

	rec = s.do(http.MethodPost, "/api/goals", strings.Replace(goal, fmt.Sprintf(`"userId":%d`, annID), `"userId":999`, 1), tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ServiceEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "BodySync")

	rec = s.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	s.do(http.MethodGet, "/api/users", "", "")
	rec = s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bodysync_http_requests_total")
}

func TestRouter_BodyLimit(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.register("ann", "ann@x.io")

	notes := strings.Repeat("x", 101*1024)
	body := fmt.Sprintf(`{"activityName":"Running","activityType":"Cardio","description":%q}`, notes)
	rec := s.do(http.MethodPost, "/api/fitness-activities", body, tok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = s.do(http.MethodGet, "/api/fitness-activities", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_LongPassword(t *testing.T) {
	s := newTestServer(t)
	pw := strings.Repeat("p", 100)

	rec := s.do(http.MethodPost, "/api/auth/register",
		fmt.Sprintf(`{"username":"ann","email":"ann@x.io","password":%q,"height":165,"weight":60}`, pw), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/login", fmt.Sprintf(`{"email":"ann@x.io","password":%q}`, pw), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decode[map[string]string](t, rec)["token"])
}
