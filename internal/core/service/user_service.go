package service

import (
	"context"
	"time"

	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// UserService implements account lookup and deletion. The ownership rule for
// deletion is enforced at the transport layer, where the principal is known.
type UserService struct {
	users ports.UserRepository
	audit ports.AuditRecorder
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder) *UserService {
	return &UserService{users: users, audit: audit}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if s.audit != nil {
		s.audit.Record(domain.AuthEvent{Subject: user.Email, Action: domain.AuditUserDeleted, At: time.Now().UTC()})
	}
	return nil
}
