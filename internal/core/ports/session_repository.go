package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// SessionRepository defines the persistence interface for sessions.
type SessionRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Session, error)
	FindAll(ctx context.Context) ([]*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id int64) error
}
