package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/api/middleware"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// UserHandler handles account lookup and self-service deletion.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /api/user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/user/:id. Deletion is strictly self-service:
// the principal's email must equal the target account's email, and the admin
// flag grants no override.
//
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if err := middleware.Decide(principal(c), middleware.Owner(user.Email)); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
