package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/core/ports"
)

const defaultAuditLimit = 50

// AuditHandler exposes the auth audit trail to administrators.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List handles GET /api/admin/audit?limit=N (admin only), newest first.
//
// @Summary      List recent auth audit events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of events (default 50)"
// @Success      200    {array}   domain.AuthEvent
// @Failure      401    {object}  messageResponse
// @Failure      403    {object}  messageResponse
// @Router       /api/admin/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	events, err := h.repo.FindRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
