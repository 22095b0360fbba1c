package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCheckRateLimitEnforcesLimit(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	rdb := newTestRedis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := CheckRateLimit(ctx, rdb, "signup", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := CheckRateLimit(ctx, rdb, "signup", "ip:1.2.3.4", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different identity has its own budget.
	allowed, err = CheckRateLimit(ctx, rdb, "signup", "ip:5.6.7.8", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckRateLimitDisabledInTestEnv(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	// No Redis needed at all when disabled.
	for i := 0; i < 100; i++ {
		allowed, err := CheckRateLimit(context.Background(), nil, "signup", "ip:1.2.3.4", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestCheckRateLimitNilRedisInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := CheckRateLimit(context.Background(), nil, "signup", "ip:1.2.3.4", 1, time.Minute)
	assert.Error(t, err)
}

func TestCheckRateLimitWindowExpiry(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ctx := context.Background()

	allowed, err := CheckRateLimit(ctx, rdb, "login", "user:1", 1, time.Minute)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = CheckRateLimit(ctx, rdb, "login", "user:1", 1, time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)

	// After the window passes the budget resets.
	mr.FastForward(2 * time.Minute)

	allowed, err = CheckRateLimit(ctx, rdb, "login", "user:1", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
