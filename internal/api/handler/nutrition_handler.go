package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/metrics"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type NutritionHandler struct {
	service ports.NutritionService
}

func NewNutritionHandler(service ports.NutritionService) *NutritionHandler {
	return &NutritionHandler{service: service}
}

// List returns all nutrition records.
//
// @Summary      List nutrition records
// @Tags         nutrition
// @Produce      json
// @Success      200  {array}  domain.Nutrition
// @Router       /nutrition [get]
func (h *NutritionHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get returns one nutrition record.
//
// @Summary      Get nutrition record
// @Tags         nutrition
// @Produce      json
// @Param        nutritionId  path      int  true  "Nutrition ID"
// @Success      200          {object}  domain.Nutrition
// @Failure      404          {object}  errorResponse
// @Router       /nutrition/{nutritionId} [get]
func (h *NutritionHandler) Get(c echo.Context) error {
	ctx, in := request(c)
	record, err := h.service.Get(ctx, in.ParamInt("nutritionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// ListByUser returns a user's nutrition records.
//
// @Summary      List nutrition records of a user
// @Tags         nutrition
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {array}   domain.Nutrition
// @Failure      404     {object}  errorResponse
// @Router       /nutrition/user/{userId} [get]
func (h *NutritionHandler) ListByUser(c echo.Context) error {
	ctx, in := request(c)
	records, err := h.service.ListByUser(ctx, in.ParamInt("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create logs a meal.
//
// @Summary      Create nutrition record
// @Tags         nutrition
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string            false  "Client-generated key"
// @Param        body             body      nutritionRequest  true   "Meal"
// @Success      201              {object}  domain.Nutrition
// @Success      200              {object}  domain.Nutrition  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /nutrition [post]
func (h *NutritionHandler) Create(c echo.Context) error {
	ctx, in := request(c)
	record, replayed, err := h.service.Create(ctx, toNutritionInput(in, idempotencyKey(c)))
	if err != nil {
		return err
	}
	countCreate(domain.EntityNutrition, replayed)
	return created(c, replayed, record)
}

// Update overwrites a nutrition record.
//
// @Summary      Update nutrition record
// @Tags         nutrition
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        nutritionId  path      int               true  "Nutrition ID"
// @Param        body         body      nutritionRequest  true  "Meal"
// @Success      200          {object}  domain.Nutrition
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /nutrition/{nutritionId} [put]
func (h *NutritionHandler) Update(c echo.Context) error {
	ctx, in := request(c)
	record, err := h.service.Update(ctx, in.ParamInt("nutritionId"), toNutritionInput(in, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete removes a nutrition record.
//
// @Summary      Delete nutrition record
// @Tags         nutrition
// @Security     BearerAuth
// @Param        nutritionId  path  int  true  "Nutrition ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /nutrition/{nutritionId} [delete]
func (h *NutritionHandler) Delete(c echo.Context) error {
	ctx, in := request(c)
	if err := h.service.Delete(ctx, in.ParamInt("nutritionId")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(domain.EntityNutrition).Inc()
	return c.NoContent(http.StatusNoContent)
}
