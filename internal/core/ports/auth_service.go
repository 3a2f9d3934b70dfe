package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// TokenService issues and checks signed bearer tokens. Tokens are stateless:
// nothing is persisted server-side and there is no revocation.
type TokenService interface {
	// Issue produces a signed token whose subject is the given identity.
	Issue(subject string) (string, error)
	// Validate reports whether the token's signature is authentic and the
	// token has not expired. Malformed input yields false, never an error.
	Validate(token string) bool
	// Subject extracts the subject claim. Callers must Validate first.
	Subject(token string) (string, error)
}

// AuthService implements registration and login orchestration.
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated failed login attempts per identity.
type LoginLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	MarkFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
