package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/kukuhtri1999/BodySync/docs"
	"github.com/kukuhtri1999/BodySync/internal/api/handler"
	"github.com/kukuhtri1999/BodySync/internal/api/middleware"
	"github.com/kukuhtri1999/BodySync/internal/api/validation"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Activities ports.ActivityService
	Workouts   ports.WorkoutService
	Nutrition  ports.NutritionService
	Goals      ports.GoalService

	Tokens middleware.TokenVerifier
	Health map[string]handler.Pinger
	Log    zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// bodyLimit caps request bodies; larger requests get 413 before any handler
// reads them.
const bodyLimit = "100K"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "bodysync",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	activityHandler := handler.NewActivityHandler(d.Activities)
	workoutHandler := handler.NewWorkoutHandler(d.Workouts)
	nutritionHandler := handler.NewNutritionHandler(d.Nutrition)
	goalHandler := handler.NewGoalHandler(d.Goals)
	healthHandler := handler.NewHealthHandler(d.Health)

	val := validation.New()
	check := val.Middleware
	auth := middleware.Auth(d.Tokens)
	self := middleware.RequireSelf("userId")

	// --- Outside /api ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, BodySync!")
	})
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/register", authHandler.Register, check(validation.Register))
	api.POST("/auth/login", authHandler.Login, check(validation.Login))
	api.POST("/auth/logout", authHandler.Logout)

	// --- Users ---
	api.GET("/users", userHandler.List)
	api.GET("/users/:userId", userHandler.Get, check(validation.ID("userId")))
	api.PUT("/users/:userId", userHandler.Update, check(validation.UpdateProfile), auth, self)
	api.DELETE("/users/:userId", userHandler.Delete, check(validation.ID("userId")), auth, self)

	// --- Fitness activities ---
	api.GET("/fitness-activities", activityHandler.List)
	api.GET("/fitness-activities/:activityId", activityHandler.Get, check(validation.ID("activityId")))
	api.POST("/fitness-activities", activityHandler.Create, check(validation.CreateActivity), auth)
	api.PUT("/fitness-activities/:activityId", activityHandler.Update, check(validation.UpdateActivity), auth)
	api.DELETE("/fitness-activities/:activityId", activityHandler.Delete, check(validation.ID("activityId")), auth)

	// --- Workouts ---
	api.GET("/workouts", workoutHandler.List)
	api.GET("/workouts/:workoutId", workoutHandler.Get, check(validation.ID("workoutId")))
	api.GET("/workouts/user/:userId", workoutHandler.ListByUser, check(validation.ID("userId")))
	api.GET("/workouts/activity/:activityId", workoutHandler.ListByActivity, check(validation.ID("activityId")))
	api.POST("/workouts", workoutHandler.Create, check(validation.CreateWorkout), auth)
	api.PUT("/workouts/:workoutId", workoutHandler.Update, check(validation.UpdateWorkout), auth)
	api.DELETE("/workouts/:workoutId", workoutHandler.Delete, check(validation.ID("workoutId")), auth)

	// --- Nutrition ---
	api.GET("/nutrition", nutritionHandler.List)
	api.GET("/nutrition/:nutritionId", nutritionHandler.Get, check(validation.ID("nutritionId")))
	api.GET("/nutrition/user/:userId", nutritionHandler.ListByUser, check(validation.ID("userId")))
	api.POST("/nutrition", nutritionHandler.Create, check(validation.CreateNutrition), auth)
	api.PUT("/nutrition/:nutritionId", nutritionHandler.Update, check(validation.UpdateNutrition), auth)
	api.DELETE("/nutrition/:nutritionId", nutritionHandler.Delete, check(validation.ID("nutritionId")), auth)

	// --- Goals ---
	api.GET("/goals", goalHandler.List)
	api.GET("/goals/:goalId", goalHandler.Get, check(validation.ID("goalId")))
	api.GET("/goals/user/:userId", goalHandler.ListByUser, check(validation.ID("userId")))
	api.POST("/goals", goalHandler.Create, check(validation.CreateGoal), auth)
	api.PUT("/goals/:goalId", goalHandler.Update, check(validation.UpdateGoal), auth)
	api.DELETE("/goals/:goalId", goalHandler.Delete, check(validation.ID("goalId")), auth)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
