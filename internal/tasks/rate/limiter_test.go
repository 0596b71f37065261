package rate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, max int, window time.Duration) *QueueRateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewQueueRateLimiter(client, QueueConfig{
		Name:      "test",
		RateLimit: RateLimit{Window: window, MaxJobs: max},
	})
}

func TestQueueRateLimiter_DeniesOverLimit(t *testing.T) {
	limiter := newLimiter(t, 3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok, "call %d", i+1)
	}

	ok, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// identifiers are independent
	ok, err = limiter.Allow(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQueueRateLimiter_WindowSlides(t *testing.T) {
	limiter := newLimiter(t, 1, time.Minute)
	ctx := context.Background()

	start := time.Now()
	limiter.now = func() time.Time { return start }

	ok, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	limiter.now = func() time.Time { return start.Add(2 * time.Minute) }
	ok, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQueueRateLimiter_Reset(t *testing.T) {
	limiter := newLimiter(t, 1, time.Hour)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "user-1"))

	ok, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
