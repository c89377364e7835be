package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix  = "gearbox:revoked:"
	throttlePrefix = "gearbox:throttle:"
)

type RedisRevocations struct {
	client redis.UniversalClient
}

func NewRedisRevocations(client redis.UniversalClient) *RedisRevocations {
	return &RedisRevocations{client: client}
}

func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

type RedisThrottle struct {
	client redis.UniversalClient
	cfg    ThrottleConfig
}

func NewRedisThrottle(client redis.UniversalClient, cfg ThrottleConfig) *RedisThrottle {
	return &RedisThrottle{client: client, cfg: cfg}
}

func (t *RedisThrottle) Hit(ctx context.Context, key string) error {
	k := throttlePrefix + key

	count, err := t.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// First hit opens the window.
	if count == 1 {
		if err := t.client.Expire(ctx, k, t.cfg.Window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	if count > int64(t.cfg.MaxAttempts) {
		return ErrThrottled
	}
	return nil
}

// Ping is used by the readiness probe.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	return client.Ping(ctx).Err()
}
