// Package rate implements a Redis sliding-window limiter shared by the API
// and the background workers.
package rate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimit struct {
	Window  time.Duration // e.g., 1 minute, 1 hour
	MaxJobs int           // max calls per window
}

type QueueConfig struct {
	Name      string
	RateLimit RateLimit
}

// QueueRateLimiter admits at most MaxJobs calls per identifier within any
// Window-long interval.
type QueueRateLimiter struct {
	redis  *redis.Client
	config QueueConfig
	now    func() time.Time
}

func NewQueueRateLimiter(redis *redis.Client, config QueueConfig) *QueueRateLimiter {
	return &QueueRateLimiter{
		redis:  redis,
		config: config,
		now:    time.Now,
	}
}

func (qrl *QueueRateLimiter) key(identifier string) string {
	return fmt.Sprintf("queue_rate_limit:%s:%s", qrl.config.Name, identifier)
}

// Allow records a call for identifier and reports whether it fits the
// window. Rejected calls are not counted.
func (qrl *QueueRateLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := qrl.key(identifier)

	now := qrl.now().UnixMilli()
	windowStart := now - qrl.config.RateLimit.Window.Milliseconds()
	member := strconv.FormatInt(now, 10) + ":" + uuid.NewString()

	pipe := qrl.redis.Pipeline()

	// Remove old entries
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// Count current window
	count := pipe.ZCard(ctx, key)

	// Add new entry
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: member})

	// Set expiration
	pipe.Expire(ctx, key, qrl.config.RateLimit.Window*2)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis pipeline error: %w", err)
	}

	if count.Val() < int64(qrl.config.RateLimit.MaxJobs) {
		return true, nil
	}

	if err := qrl.redis.ZRem(ctx, key, member).Err(); err != nil {
		return false, fmt.Errorf("redis zrem error: %w", err)
	}
	return false, nil
}

// Reset forgets every call recorded for identifier.
func (qrl *QueueRateLimiter) Reset(ctx context.Context, identifier string) error {
	return qrl.redis.Del(ctx, qrl.key(identifier)).Err()
}
