package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/api/metrics"
	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for sessions and participation.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type sessionRequest struct {
	Name        string    `json:"name" validate:"required,max=50"`
	Date        time.Time `json:"date" validate:"required"`
	TeacherID   int64     `json:"teacher_id" validate:"required"`
	Description string    `json:"description" validate:"required,max=2500"`
}

func (r sessionRequest) toDomain() *domain.Session {
	return &domain.Session{
		Name:        r.Name,
		Date:        r.Date,
		TeacherID:   r.TeacherID,
		Description: r.Description,
	}
}

// List handles GET /api/session.
//
// @Summary      List sessions
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Session
// @Failure      401  {object}  messageResponse
// @Router       /api/session [get]
func (h *SessionHandler) List(c echo.Context) error {
	sessions, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// Get handles GET /api/session/:id.
//
// @Summary      Get a session by id
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session id"
// @Success      200  {object}  domain.Session
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/session/{id} [get]
func (h *SessionHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	session, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

// Create handles POST /api/session (admin only).
//
// @Summary      Create a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sessionRequest  true  "Session details"
// @Success      200   {object}  domain.Session
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/session [post]
func (h *SessionHandler) Create(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Update handles PUT /api/session/:id (admin only).
//
// @Summary      Update a session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Session id"
// @Param        body  body      sessionRequest  true  "Session details"
// @Success      200   {object}  domain.Session
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/session/{id} [put]
func (h *SessionHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/session/:id (admin only).
//
// @Summary      Delete a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Session id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/session/{id} [delete]
func (h *SessionHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "session deleted"})
}

// Participate handles POST /api/session/:id/participate/:userId.
//
// @Summary      Join a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int  true  "Session id"
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  messageResponse
// @Failure      401     {object}  messageResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/session/{id}/participate/{userId} [post]
func (h *SessionHandler) Participate(c echo.Context) error {
	sessionID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.service.Participate(c.Request().Context(), sessionID, userID); err != nil {
		return err
	}

	metrics.ParticipationChangesTotal.WithLabelValues("join").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "participation recorded"})
}

// NoLongerParticipate handles DELETE /api/session/:id/participate/:userId.
//
// @Summary      Leave a session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int  true  "Session id"
// @Param        userId  path      int  true  "User id"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  messageResponse
// @Failure      401     {object}  messageResponse
// @Failure      404     {object}  messageResponse
// @Router       /api/session/{id}/participate/{userId} [delete]
func (h *SessionHandler) NoLongerParticipate(c echo.Context) error {
	sessionID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.service.NoLongerParticipate(c.Request().Context(), sessionID, userID); err != nil {
		return err
	}

	metrics.ParticipationChangesTotal.WithLabelValues("leave").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "participation removed"})
}
