package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
