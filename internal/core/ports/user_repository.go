package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// IdentityLoader is the read-only lookup the authentication filter uses to
// resolve a token subject into a full principal.
type IdentityLoader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
