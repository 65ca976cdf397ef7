// Package ratelimit implements a fixed-window request limiter on top of Redis.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "linkhop:ratelimit:"

type Limiter interface {
	// Allow counts one hit for key and reports whether it is within the limit,
	// together with the time until the current window resets.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

type RedisLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
}

func NewRedisLimiter(rdb redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: int64(limit), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := keyPrefix + key

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, err
	}
	ttl, err := l.rdb.PTTL(ctx, k).Result()
	if err != nil {
		return false, 0, err
	}
	// First hit of a window, or a key that lost its expiry.
	if n == 1 || ttl < 0 {
		if err := l.rdb.PExpire(ctx, k, l.window).Err(); err != nil {
			return false, 0, err
		}
		ttl = l.window
	}
	return n <= l.limit, ttl, nil
}

// Nop allows everything. Used when Redis is not configured.
type Nop struct{}

func (Nop) Allow(context.Context, string) (bool, time.Duration, error) { return true, 0, nil }
