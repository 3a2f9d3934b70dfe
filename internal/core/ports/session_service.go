package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// SessionService exposes session CRUD and participation management.
type SessionService interface {
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	FindAll(ctx context.Context) ([]*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Update(ctx context.Context, id int64, session *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, sessionID, userID int64) error
	NoLongerParticipate(ctx context.Context, sessionID, userID int64) error
}
