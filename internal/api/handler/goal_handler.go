package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/metrics"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// @Summary      List goals
// @Tags         goals
// @Produce      json
// @Success      200  {array}  domain.Goal
// @Router       /goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

// @Summary      Get goal
// @Tags         goals
// @Produce      json
// @Param        goalId  path      int  true  "Goal ID"
// @Success      200     {object}  domain.Goal
// @Failure      404     {object}  errorResponse
// @Router       /goals/{goalId} [get]
func (h *GoalHandler) Get(c echo.Context) error {
	ctx, in := request(c)
	goal, err := h.service.Get(ctx, in.ParamInt("goalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

// @Summary      List goals of a user
// @Tags         goals
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.Goal
// @Failure      404     {object}  errorResponse
// @Router       /goals/user/{userId} [get]
func (h *GoalHandler) ListByUser(c echo.Context) error {
	ctx, in := request(c)
	goals, err := h.service.ListByUser(ctx, in.ParamInt("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goals)
}

// @Summary      Create goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Client-generated key"
// @Param        body             body      goalRequest  true   "Goal"
// @Success      201              {object}  domain.Goal
// @Success      200              {object}  domain.Goal  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	ctx, in := request(c)
	goal, replayed, err := h.service.Create(ctx, toGoalInput(in, idempotencyKey(c)))
	if err != nil {
		return err
	}
	countCreate(domain.EntityGoal, replayed)
	return created(c, replayed, goal)
}

// @Summary      Update goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        goalId  path      int          true  "Goal ID"
// @Param        body    body      goalRequest  true  "Goal"
// @Success      200     {object}  domain.Goal
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /goals/{goalId} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	ctx, in := request(c)
	goal, err := h.service.Update(ctx, in.ParamInt("goalId"), toGoalInput(in, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

// @Summary      Delete goal
// @Tags         goals
// @Security     BearerAuth
// @Param        goalId  path  int  true  "Goal ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /goals/{goalId} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	ctx, in := request(c)
	if err := h.service.Delete(ctx, in.ParamInt("goalId")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(domain.EntityGoal).Inc()
	return c.NoContent(http.StatusNoContent)
}
