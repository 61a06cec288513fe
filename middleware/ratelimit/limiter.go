package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements fixed window rate limiting using Redis. Each
// (key, window) pair maps to one counter that expires with the window;
// INCR keeps the count atomic without scripting.
type Limiter struct {
	client    *redis.Client
	keyPrefix string
}

// NewLimiter creates a new rate limiter with Redis backend.
func NewLimiter(client *redis.Client, keyPrefix string) *Limiter {
	return &Limiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

// Allow checks if a request is allowed under the rate limit. The
// counter lives in the bucket for the current window; a request past
// the limit still increments it, which only lengthens the denial.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	now := time.Now()
	bucket := now.UnixMilli() / window.Milliseconds()
	redisKey := fmt.Sprintf("%s%s:%d", l.keyPrefix, key, bucket)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis pipeline error: %w", err)
	}

	count := int(incr.Val())
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	resetAt := time.UnixMilli((bucket + 1) * window.Milliseconds())

	return &RateLimitResult{
		Allowed:   count <= limit,
		Remaining: remaining,
		ResetAt:   resetAt,
		Limit:     limit,
	}, nil
}

// Reset clears the rate limit counter for a key in the current window.
func (l *Limiter) Reset(ctx context.Context, key string, window time.Duration) error {
	bucket := time.Now().UnixMilli() / window.Milliseconds()
	redisKey := fmt.Sprintf("%s%s:%d", l.keyPrefix, key, bucket)
	return l.client.Del(ctx, redisKey).Err()
}
