package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zenstudio/yoga-api/internal/api/metrics"
	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

const principalKey = "principal"

const bearerPrefix = "Bearer "

// Authenticate resolves a bearer token into a request-scoped principal.
//
// The filter itself never rejects a request: a missing header, a non-Bearer
// scheme, an invalid or expired token, an unknown subject and any internal
// lookup failure all degrade to an empty principal, and the request proceeds
// to the next stage where the authorization policy decides the outcome.
func Authenticate(tokens ports.TokenService, identities ports.IdentityLoader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := parseBearer(c.Request().Header.Get("Authorization"))
			if !ok {
				return next(c)
			}

			if !tokens.Validate(token) {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			subject, err := tokens.Subject(token)
			if err != nil {
				log.Error().Err(err).Msg("subject extraction failed after validation")
				return next(c)
			}

			principal, err := identities.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				// Subject no longer exists or the store failed; either way the
				// request continues unauthenticated.
				log.Debug().Err(err).Str("subject", subject).Msg("principal lookup failed")
				return next(c)
			}

			SetPrincipal(c, principal)
			return next(c)
		}
	}
}

// parseBearer extracts the token from an Authorization header value. Only
// the exact "Bearer " scheme is accepted.
func parseBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return header[len(bearerPrefix):], true
}

// SetPrincipal attaches the principal to the request-scoped context.
func SetPrincipal(c echo.Context, p *domain.User) {
	c.Set(principalKey, p)
}

// Principal returns the authenticated principal for this request, if any.
func Principal(c echo.Context) (*domain.User, bool) {
	p, ok := c.Get(principalKey).(*domain.User)
	return p, ok && p != nil
}
