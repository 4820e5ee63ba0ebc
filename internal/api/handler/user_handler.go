package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kukuhtri1999/BodySync/internal/api/metrics"
	"github.com/kukuhtri1999/BodySync/internal/core/domain"
	"github.com/kukuhtri1999/BodySync/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every user's public summary.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.UserSummary
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a user profile.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  domain.User
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	ctx, in := request(c)
	user, err := h.service.Get(ctx, in.ParamInt("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update overwrites the caller's own profile.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int                   true  "User ID"
// @Param        body    body      updateProfileRequest  true  "Profile"
// @Success      200     {object}  domain.User
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	ctx, in := request(c)
	user, err := h.service.UpdateProfile(ctx, toUpdateProfileInput(in))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes the caller's account and everything it owns.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        userId  path  int  true  "User ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, in := request(c)
	if err := h.service.Delete(ctx, in.ParamInt("userId")); err != nil {
		return err
	}
	metrics.RecordsDeletedTotal.WithLabelValues(domain.EntityUser).Inc()
	return c.NoContent(http.StatusNoContent)
}
