package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// SessionService implements session CRUD and the participation edge.
type SessionService struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, users ports.UserRepository, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, users: users, log: log}
}

func (s *SessionService) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessions.FindByID(ctx, id)
}

func (s *SessionService) FindAll(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.FindAll(ctx)
}

func (s *SessionService) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	if session.Users == nil {
		session.Users = []int64{}
	}
	return s.sessions.Create(ctx, session)
}

func (s *SessionService) Update(ctx context.Context, id int64, session *domain.Session) (*domain.Session, error) {
	existing, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	session.ID = id
	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = time.Now().UTC()
	if session.Users == nil {
		session.Users = existing.Users
	}
	return s.sessions.Update(ctx, session)
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.sessions.FindByID(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// Participate adds the user to the session's participant set. Set semantics:
// a user appears at most once, and joining twice is an error rather than a
// no-op.
func (s *SessionService) Participate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if session.HasParticipant(userID) {
		return domain.ErrAlreadyParticipating
	}

	session.Users = append(session.Users, userID)
	session.UpdatedAt = time.Now().UTC()
	if _, err := s.sessions.Update(ctx, session); err != nil {
		return err
	}

	s.log.Info().Int64("session_id", sessionID).Int64("user_id", userID).Msg("user joined session")
	return nil
}

// NoLongerParticipate removes the user from the participant set. Removing a
// non-member is an error. Only session existence is checked: a membership
// left behind by a deleted account must still be removable.
func (s *SessionService) NoLongerParticipate(ctx context.Context, sessionID, userID int64) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.HasParticipant(userID) {
		return domain.ErrNotParticipating
	}

	remaining := make([]int64, 0, len(session.Users)-1)
	for _, id := range session.Users {
		if id != userID {
			remaining = append(remaining, id)
		}
	}
	session.Users = remaining
	session.UpdatedAt = time.Now().UTC()
	if _, err := s.sessions.Update(ctx, session); err != nil {
		return err
	}

	s.log.Info().Int64("session_id", sessionID).Int64("user_id", userID).Msg("user left session")
	return nil
}
