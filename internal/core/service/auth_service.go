package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zenstudio/yoga-api/internal/core/domain"
	"github.com/zenstudio/yoga-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, limiter ports.LoginLimiter, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, audit: audit, log: log}
}

// Register creates a new non-admin account. The ExistsByEmail check is a
// fast path only; the unique index on email is the actual uniqueness
// guarantee, so a concurrent duplicate insert still surfaces ErrEmailTaken.
// No token is issued at registration.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: string(hash),
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Subject: email, Action: domain.AuditRegister, At: now})
	return created, nil
}

// Login verifies credentials and issues a token bound to the user's email.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			// A broken limiter must not lock everyone out.
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.failed(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failed(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}
	s.record(domain.AuthEvent{Subject: user.Email, Action: domain.AuditLogin, At: time.Now().UTC()})

	return token, user, nil
}

func (s *AuthService) failed(ctx context.Context, email string) {
	if s.limiter != nil {
		if err := s.limiter.MarkFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter mark failed")
		}
	}
	s.record(domain.AuthEvent{Subject: email, Action: domain.AuditLoginFailed, At: time.Now().UTC()})
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
