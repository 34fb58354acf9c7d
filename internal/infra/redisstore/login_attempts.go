// Package redisstore keeps short-lived auth state in Redis.
package redisstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "failedLogin:"

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// LoginAttemptStore counts failed logins per email inside a sliding TTL window.
type LoginAttemptStore struct {
	client redis.Cmdable
	window time.Duration
}

func NewLoginAttemptStore(client redis.Cmdable, window time.Duration) *LoginAttemptStore {
	return &LoginAttemptStore{client: client, window: window}
}

func (s *LoginAttemptStore) Failures(ctx context.Context, email string) (int, error) {
	const op = "redisstore.Failures"

	n, err := s.client.Get(ctx, key(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, op)
	}
	return n, nil
}

// RegisterFailure increments the counter and restarts the window.
func (s *LoginAttemptStore) RegisterFailure(ctx context.Context, email string) (int, error) {
	const op = "redisstore.RegisterFailure"

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key(email))
		pipe.Expire(ctx, key(email), s.window)
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, op)
	}
	return int(incr.Val()), nil
}

func (s *LoginAttemptStore) Reset(ctx context.Context, email string) error {
	const op = "redisstore.Reset"

	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return errs.Wrap(err, op)
	}
	return nil
}

func key(email string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(email))
}
