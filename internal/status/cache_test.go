package status_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robloxstatus/robloxstatus/internal/status"
)

func testResult(percent int) status.Result {
	return status.Result{
		Health: status.HealthSummary{Percent: percent, State: status.StateOperational, Emoji: "🟢"},
		Meta:   status.Meta{Official: true, Source: "test"},
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	cache := status.NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "roblox:status:UTC", testResult(100))

	entry, ok := cache.Get(ctx, "roblox:status:UTC")
	require.True(t, ok)
	assert.Equal(t, 100, entry.Result.Health.Percent)
	assert.GreaterOrEqual(t, entry.Age(time.Now()), time.Duration(0))
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	cache := status.NewMemoryCache(time.Minute)

	_, ok := cache.Get(context.Background(), "roblox:status:UTC")
	assert.False(t, ok)
}

func TestMemoryCache_LazyExpiry(t *testing.T) {
	cache := status.NewMemoryCache(30 * time.Millisecond)
	ctx := context.Background()

	cache.Set(ctx, "k", testResult(100))

	_, ok := cache.Get(ctx, "k")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok, "entry should expire once its age reaches the TTL")
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	cache := status.NewMemoryCache(time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "k", testResult(100))
	cache.Set(ctx, "k", testResult(60))

	entry, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, 60, entry.Result.Health.Percent)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := status.NewMemoryCache(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Set(ctx, "k", testResult(100))
		}()
		go func() {
			defer wg.Done()
			cache.Get(ctx, "k")
		}()
	}
	wg.Wait()
}

func TestMemoryCache_Backend(t *testing.T) {
	assert.Equal(t, "memory", status.NewMemoryCache(time.Minute).Backend())
}

func TestNewCache_FallsBackToMemory(t *testing.T) {
	// Nothing listens on this address; construction must degrade to
	// the in-process store instead of failing.
	cache := status.NewCache(true, "redis://127.0.0.1:1/0", time.Minute, zerolog.Nop())
	assert.Equal(t, "memory", cache.Backend())
}

func TestNewCache_DisabledRedis(t *testing.T) {
	cache := status.NewCache(false, "", time.Minute, zerolog.Nop())
	assert.Equal(t, "memory", cache.Backend())
}
