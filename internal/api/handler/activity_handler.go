package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/metrics"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List returns the fitness activity catalogue.
//
// @Summary      List fitness activities
// @Tags         fitness-activities
// @Produce      json
// @Success      200  {array}  domain.FitnessActivity
// @Router       /fitness-activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get returns one fitness activity.
//
// @Summary      Get fitness activity
// @Tags         fitness-activities
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  domain.FitnessActivity
// @Failure      404         {object}  errorResponse
// @Router       /fitness-activities/{activityId} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	ctx, in := request(c)
	activity, err := h.service.Get(ctx, in.ParamInt("activityId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Create adds a fitness activity.
//
// @Summary      Create fitness activity
// @Tags         fitness-activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Client-generated key"
// @Param        body             body      activityRequest  true   "Activity"
// @Success      201              {object}  domain.FitnessActivity
// @Success      200              {object}  domain.FitnessActivity  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /fitness-activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	ctx, in := request(c)
	activity, replayed, err := h.service.Create(ctx, toActivityInput(in, idempotencyKey(c)))
	if err != nil {
		return err
	}
	countCreate(domain.EntityActivity, replayed)
	return created(c, replayed, activity)
}

// Update overwrites a fitness activity.
//
// @Summary      Update fitness activity
// @Tags         fitness-activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        activityId  path      int              true  "Activity ID"
// @Param        body        body      activityRequest  true  "Activity"
// @Success      200         {object}  domain.FitnessActivity
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /fitness-activities/{activityId} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	ctx, in := request(c)
	activity, err := h.service.Update(ctx, in.ParamInt("activityId"), toActivityInput(in, ""))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete removes a fitness activity that no workout references.
//
// @Summary      Delete fitness activity
// @Tags         fitness-activities
// @Security     BearerAuth
// @Param        activityId  path  int  true  "Activity ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /fitness-activities/{activityId} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	ctx, in := request(c)
	if err := h.service.Delete(ctx, in.ParamInt("activityId")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(domain.EntityActivity).Inc()
	return c.NoContent(http.StatusNoContent)
}

func countCreate(entity string, replayed bool) {
	if replayed {
		metrics.IdempotentReplaysTotal.WithLabelValues(entity).Inc()
		return
	}
	metrics.RecordsCreatedTotal.WithLabelValues(entity).Inc()
}
