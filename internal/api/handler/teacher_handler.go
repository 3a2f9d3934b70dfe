package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// TeacherHandler handles HTTP requests for teachers.
type TeacherHandler struct {
	service ports.TeacherService
}

func NewTeacherHandler(service ports.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

type teacherRequest struct {
	FirstName string `json:"firstName" validate:"required,max=20"`
	LastName  string `json:"lastName" validate:"required,max=20"`
}

// List handles GET /api/teacher.
//
// @Summary      List teachers
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Teacher
// @Failure      401  {object}  messageResponse
// @Router       /api/teacher [get]
func (h *TeacherHandler) List(c echo.Context) error {
	teachers, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// Get handles GET /api/teacher/:id.
//
// @Summary      Get a teacher by id
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Teacher id"
// @Success      200  {object}  domain.Teacher
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/teacher/{id} [get]
func (h *TeacherHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	teacher, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// Create handles POST /api/teacher (admin only).
//
// @Summary      Create a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teacherRequest  true  "Teacher details"
// @Success      200   {object}  domain.Teacher
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/teacher [post]
func (h *TeacherHandler) Create(c echo.Context) error {
	var req teacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), &domain.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PUT /api/teacher/:id (admin only).
//
// @Summary      Update a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Teacher id"
// @Param        body  body      teacherRequest  true  "Teacher details"
// @Success      200   {object}  domain.Teacher
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/teacher/{id} [put]
func (h *TeacherHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req teacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), id, &domain.Teacher{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/teacher/:id (admin only).
//
// @Summary      Delete a teacher
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Teacher id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/teacher/{id} [delete]
func (h *TeacherHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "teacher deleted"})
}
