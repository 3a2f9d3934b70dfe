package ports

import (
	"context"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

type TeacherService interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	FindAll(ctx context.Context) ([]*domain.Teacher, error)
	Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
	Update(ctx context.Context, id int64, teacher *domain.Teacher) (*domain.Teacher, error)
	Delete(ctx context.Context, id int64) error
}
