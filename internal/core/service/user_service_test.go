package service

import (
	"context"
	"testing"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

func TestUserService_GetByID(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)

	created := seedUser(t, repo, "alice@example.com")

	user, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetByID(context.Background(), 99); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubRecorder{}
	svc := NewUserService(repo, audit)

	created := seedUser(t, repo, "alice@example.com")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("user should be gone, got %v", err)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditUserDeleted {
		t.Fatalf("expected user_deleted audit event, got %+v", audit.events)
	}

	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
