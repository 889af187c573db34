// Package ratelimit tracks failed login attempts per client key.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AttemptStore counts failed login attempts per client key inside a
// sliding window. Counters are ephemeral and lossy on restart; this is
// a brake on brute force, not an audit trail.
type AttemptStore interface {
	// Check reports whether the key is still allowed to attempt a login.
	// It never increments the counter.
	Check(ctx context.Context, key string) (bool, error)
	// RecordFailure increments the counter and refreshes its expiry to
	// the full window.
	RecordFailure(ctx context.Context, key string) error
	// RecordSuccess clears the counter entirely.
	RecordSuccess(ctx context.Context, key string) error
}

const keyPrefix = "login_attempts:"

// redisStore is the Redis-backed AttemptStore used in production so the
// counters survive across instances.
type redisStore struct {
	client    *redis.Client
	threshold int
	window    time.Duration
	log       zerolog.Logger
}

// NewRedisStore creates an AttemptStore backed by Redis.
func NewRedisStore(client *redis.Client, threshold int, window time.Duration, log zerolog.Logger) AttemptStore {
	return &redisStore{
		client:    client,
		threshold: threshold,
		window:    window,
		log:       log.With().Str("component", "ratelimit").Logger(),
	}
}

func (s *redisStore) Check(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Get(ctx, keyPrefix+key).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read attempt counter for %s: %w", key, err)
	}
	return count < s.threshold, nil
}

func (s *redisStore) RecordFailure(ctx context.Context, key string) error {
	k := keyPrefix + key
	count, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempt counter for %s: %w", key, err)
	}
	// Refresh expiry on every failure so the lockout window slides
	if err := s.client.Expire(ctx, k, s.window).Err(); err != nil {
		return fmt.Errorf("failed to set attempt counter expiry for %s: %w", key, err)
	}

	if int(count) >= s.threshold {
		s.log.Warn().Str("client", key).Int64("attempts", count).Msg("Login attempt threshold reached")
	}
	return nil
}

func (s *redisStore) RecordSuccess(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to clear attempt counter for %s: %w", key, err)
	}
	return nil
}
