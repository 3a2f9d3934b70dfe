package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/yoga-api/internal/core/domain"
)

type stubSessionRepo struct {
	sessions map[int64]*domain.Session
	nextID   int64
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[int64]*domain.Session)}
}

func cloneSession(s *domain.Session) *domain.Session {
	clone := *s
	clone.Users = append([]int64{}, s.Users...)
	return &clone
}

func (r *stubSessionRepo) Create(_ context.Context, session *domain.Session) (*domain.Session, error) {
	r.nextID++
	copy := cloneSession(session)
	copy.ID = r.nextID
	r.sessions[copy.ID] = cloneSession(copy)
	return copy, nil
}

func (r *stubSessionRepo) FindByID(_ context.Context, id int64) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *stubSessionRepo) FindAll(_ context.Context) ([]*domain.Session, error) {
	all := []*domain.Session{}
	for _, s := range r.sessions {
		all = append(all, cloneSession(s))
	}
	return all, nil
}

func (r *stubSessionRepo) Update(_ context.Context, session *domain.Session) (*domain.Session, error) {
	if _, ok := r.sessions[session.ID]; !ok {
		return nil, domain.ErrSessionNotFound
	}
	r.sessions[session.ID] = cloneSession(session)
	return cloneSession(session), nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func seedSession(t *testing.T, repo *stubSessionRepo) *domain.Session {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Session{
		Name:        "Morning Flow",
		Date:        time.Now().Add(48 * time.Hour),
		TeacherID:   1,
		Description: "Vinyasa basics",
		Users:       []int64{},
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return created
}

func seedUser(t *testing.T, repo *stubUserRepo, email string) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{Email: email, PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestSessionService_Participate_Success(t *testing.T) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	svc := NewSessionService(sessions, users, zerolog.Nop())

	session := seedSession(t, sessions)
	user := seedUser(t, users, "alice@example.com")

	if err := svc.Participate(context.Background(), session.ID, user.ID); err != nil {
		t.Fatalf("Participate returned error: %v", err)
	}

	stored, _ := sessions.FindByID(context.Background(), session.ID)
	if !stored.HasParticipant(user.ID) {
		t.Fatalf("user should be in the participant set")
	}
}

func TestSessionService_Participate_AlreadyParticipating(t *testing.T) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	svc := NewSessionService(sessions, users, zerolog.Nop())

	session := seedSession(t, sessions)
	user := seedUser(t, users, "alice@example.com")

	if err := svc.Participate(context.Background(), session.ID, user.ID); err != nil {
		t.Fatalf("first Participate returned error: %v", err)
	}
	if err := svc.Participate(context.Background(), session.ID, user.ID); err != domain.ErrAlreadyParticipating {
		t.Fatalf("expected ErrAlreadyParticipating, got %v", err)
	}

	stored, _ := sessions.FindByID(context.Background(), session.ID)
	if len(stored.Users) != 1 {
		t.Fatalf("participant set must not contain duplicates: %v", stored.Users)
	}
}

func TestSessionService_Participate_NotFound(t *testing.T) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	svc := NewSessionService(sessions, users, zerolog.Nop())

	if err := svc.Participate(context.Background(), 99, 1); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	session := seedSession(t, sessions)
	if err := svc.Participate(context.Background(), session.ID, 99); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionService_NoLongerParticipate_Success(t *testing.T) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	svc := NewSessionService(sessions, users, zerolog.Nop())

	session := seedSession(t, sessions)
	user := seedUser(t, users, "alice@example.com")

	if err := svc.Participate(context.Background(), session.ID, user.ID); err != nil {
		t.Fatalf("Participate returned error: %v", err)
	}
	if err := svc.NoLongerParticipate(context.Background(), session.ID, user.ID); err != nil {
		t.Fatalf("NoLongerParticipate returned error: %v", err)
	}

	// Join then leave nets an empty set.
	stored, _ := sessions.FindByID(context.Background(), session.ID)
	if len(stored.Users) != 0 {
		t.Fatalf("participant set should be empty, got %v", stored.Users)
	}
}

func TestSessionService_NoLongerParticipate_NotParticipating(t *testing.T) {
	sessions := newStubSessionRepo()
	users := newStubUserRepo()
	svc := NewSessionService(sessions, users, zerolog.Nop())

	session := seedSession(t, sessions)

	if err := svc.NoLongerParticipate(context.Background(), session.ID, 42); err != domain.ErrNotParticipating {
		t.Fatalf("expected ErrNotParticipating, got %v", err)
	}
}

func TestSessionService_NoLongerParticipate_SessionNotFound(t *testing.T) {
	svc := NewSessionService(newStubSessionRepo(), newStubUserRepo(), zerolog.Nop())

	if err := svc.NoLongerParticipate(context.Background(), 99, 1); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionService_Update_OverridesID(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := NewSessionService(sessions, newStubUserRepo(), zerolog.Nop())

	session := seedSession(t, sessions)

	updated, err := svc.Update(context.Background(), session.ID, &domain.Session{
		ID:          999,
		Name:        "Evening Flow",
		Date:        session.Date,
		TeacherID:   session.TeacherID,
		Description: "updated",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ID != session.ID {
		t.Fatalf("update must target the path id, got %d", updated.ID)
	}
	if updated.Name != "Evening Flow" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
}

func TestSessionService_Delete(t *testing.T) {
	sessions := newStubSessionRepo()
	svc := NewSessionService(sessions, newStubUserRepo(), zerolog.Nop())

	session := seedSession(t, sessions)

	if err := svc.Delete(context.Background(), session.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), session.ID); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
