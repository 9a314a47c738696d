package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	ctx := context.Background()

	userID := int64(42)
	limit := 3
	window := 50 * time.Millisecond

	for i := 0; i < limit; i++ {
		allowed, err := limiter.CheckRateLimit(ctx, userID, limit, window)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.CheckRateLimit(ctx, userID, limit, window)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other users are counted separately
	allowed, err = limiter.CheckRateLimit(ctx, 43, limit, window)
	require.NoError(t, err)
	assert.True(t, allowed)

	time.Sleep(window + 10*time.Millisecond)

	allowed, err = limiter.CheckRateLimit(ctx, userID, limit, window)
	require.NoError(t, err)
	assert.True(t, allowed)
}
