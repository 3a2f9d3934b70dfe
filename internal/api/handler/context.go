package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenstudio/yoga-api/internal/api/middleware"
	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// principal returns the authenticated principal set by the auth filter, or
// nil when the request is anonymous. Handlers pass the result to the policy;
// nil deliberately stays valid input so the policy owns the deny decision.
func principal(c echo.Context) *domain.User {
	p, ok := middleware.Principal(c)
	if !ok {
		return nil
	}
	return p
}

// pathID parses a numeric path parameter. Malformed identifiers fail with
// ErrBadID before any repository access.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrBadID
	}
	return id, nil
}
