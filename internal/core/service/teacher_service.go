package service

import (
	"context"
	"time"

	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// TeacherService implements teacher CRUD. No access rules live here; the
// transport layer gates mutations behind the admin requirement.
type TeacherService struct {
	teachers ports.TeacherRepository
}

func NewTeacherService(teachers ports.TeacherRepository) *TeacherService {
	return &TeacherService{teachers: teachers}
}

func (s *TeacherService) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	return s.teachers.FindByID(ctx, id)
}

func (s *TeacherService) FindAll(ctx context.Context) ([]*domain.Teacher, error) {
	return s.teachers.FindAll(ctx)
}

func (s *TeacherService) Create(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	now := time.Now().UTC()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	return s.teachers.Create(ctx, teacher)
}

func (s *TeacherService) Update(ctx context.Context, id int64, teacher *domain.Teacher) (*domain.Teacher, error) {
	existing, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	teacher.ID = id
	teacher.CreatedAt = existing.CreatedAt
	teacher.UpdatedAt = time.Now().UTC()
	return s.teachers.Update(ctx, teacher)
}

func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if _, err := s.teachers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.teachers.Delete(ctx, id)
}
