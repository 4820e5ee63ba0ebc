package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/metrics"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type WorkoutHandler struct {
	service ports.WorkoutService
}

func NewWorkoutHandler(service ports.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// List returns all workouts.
//
// @Summary      List workouts
// @Tags         workouts
// @Produce      json
// @Success      200  {array}  domain.Workout
// @Router       /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	workouts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// Get returns one workout.
//
// @Summary      Get workout
// @Tags         workouts
// @Produce      json
// @Param        workoutId  path      int  true  "Workout ID"
// @Success      200        {object}  domain.Workout
// @Failure      404        {object}  errorResponse
// @Router       /workouts/{workoutId} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	ctx, in := request(c)
	workout, err := h.service.Get(ctx, in.ParamInt("workoutId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// ListByUser returns a user's workouts.
//
// @Summary      List workouts of a user
// @Tags         workouts
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.Workout
// @Failure      404     {object}  errorResponse
// @Router       /workouts/user/{userId} [get]
func (h *WorkoutHandler) ListByUser(c echo.Context) error {
	ctx, in := request(c)
	workouts, err := h.service.ListByUser(ctx, in.ParamInt("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// ListByActivity returns the workouts of one fitness activity.
//
// @Summary      List workouts of an activity
// @Tags         workouts
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {array}   domain.Workout
// @Failure      404         {object}  errorResponse
// @Router       /workouts/activity/{activityId} [get]
func (h *WorkoutHandler) ListByActivity(c echo.Context) error {
	ctx, in := request(c)
	workouts, err := h.service.ListByActivity(ctx, in.ParamInt("activityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workouts)
}

// Create logs a workout.
//
// @Summary      Create workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Client-generated key"
// @Param        body             body      workoutRequest  true   "Workout"
// @Success      201              {object}  domain.Workout
// @Success      200              {object}  domain.Workout  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	ctx, in := request(c)
	workout, replayed, err := h.service.Create(ctx, toWorkoutInput(in, idempotencyKey(c)))
	if err != nil {
		return err
	}
	countCreate(domain.EntityWorkout, replayed)
	return created(c, replayed, workout)
}

// Update overwrites a workout.
//
// @Summary      Update workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workoutId  path      int             true  "Workout ID"
// @Param        body       body      workoutRequest  true  "Workout"
// @Success      200        {object}  domain.Workout
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /workouts/{workoutId} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	ctx, in := request(c)
	workout, err := h.service.Update(ctx, in.ParamInt("workoutId"), toWorkoutInput(in, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, workout)
}

// Delete removes a workout.
//
// @Summary      Delete workout
// @Tags         workouts
// @Security     BearerAuth
// @Param        workoutId  path  int  true  "Workout ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /workouts/{workoutId} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	ctx, in := request(c)
	if err := h.service.Delete(ctx, in.ParamInt("workoutId")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(domain.EntityWorkout).Inc()
	return c.NoContent(http.StatusNoContent)
}
