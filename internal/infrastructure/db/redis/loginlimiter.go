package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	failureWindow = 15 * time.Minute
	maxFailures   = 10
)

// LoginLimiter throttles repeated failed login attempts per email, backed by
// Redis. Key format: login_failures:<email>. The counter expires with the
// window, so a quiet quarter hour clears the slate on its own.
type LoginLimiter struct {
	client *redis.Client
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{client: client}
}

// TooManyFailures reports whether this email has exceeded the allowed number
// of recent failed attempts.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("limiter check: %w", err)
	}
	return n >= maxFailures, nil
}

// MarkFailure records one failed attempt and refreshes the window.
func (l *LoginLimiter) MarkFailure(ctx context.Context, email string) error {
	key := l.key(email)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter mark: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_failures:" + email
}
