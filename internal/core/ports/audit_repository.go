package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

// AuditRepository persists and queries auth audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	FindRecent(ctx context.Context, limit int64) ([]*domain.AuthEvent, error)
}

// AuditRecorder accepts audit events for asynchronous persistence.
// Implementations must never block the calling request.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
