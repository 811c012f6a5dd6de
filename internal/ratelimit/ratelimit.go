// Package ratelimit bounds mutating requests per user with a redis backed
// fixed window counter.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Result describes the outcome of one limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RedisLimiter counts requests per key in fixed windows.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows limit requests per key per window.
func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, now: time.Now}
}

// Allow increments the counter for key in the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	now := l.now()
	windowStart := now.Truncate(l.window)
	redisKey := fmt.Sprintf("landscape:ratelimit:%s:%d", key, windowStart.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("increment rate counter: %w", err)
	}

	count := int(incr.Val())
	remaining := max(l.limit-count, 0)
	return &Result{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   windowStart.Add(l.window),
	}, nil
}
