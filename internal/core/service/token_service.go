package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256-signed JWTs. Signing is symmetric
// over the registered claims with a process-wide secret; compromise of the
// secret invalidates the whole token space, which is the accepted trade-off
// of stateless bearer tokens (no revocation list exists).
type TokenService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Issue produces a signed token bound to the given subject, valid from now
// for the configured window. Pure computation, no side effects.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate reports whether the token is authentic and unexpired. Malformed,
// unsigned, tampered and expired tokens all yield false; the method never
// panics or returns an error.
func (s *TokenService) Validate(token string) bool {
	tkn, err := s.parser.Parse(token, s.keyFunc)
	return err == nil && tkn.Valid
}

// Subject extracts the subject claim. The token is assumed to have passed
// Validate; an invalid token yields an error the caller should not see in
// practice.
func (s *TokenService) Subject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := s.parser.ParseWithClaims(token, claims, s.keyFunc); err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
