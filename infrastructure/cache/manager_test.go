package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adsight/bi-ads-api/internal/config"
)

func newMemoryOnlyManager() *Manager {
	return NewManager(config.Redis{Enabled: false})
}

func TestManagerSemRedis(t *testing.T) {
	ctx := context.Background()
	m := newMemoryOnlyManager()

	type payload struct {
		Spend float64 `json:"spend"`
	}

	var out payload
	assert.False(t, m.Get(ctx, "facebook:overview:123", &out))

	m.Set(ctx, "facebook:overview:123", payload{Spend: 42.5}, 10*time.Minute)

	assert.True(t, m.Get(ctx, "facebook:overview:123", &out))
	assert.Equal(t, 42.5, out.Spend)
}

func TestManagerInvalidatePorPadrao(t *testing.T) {
	ctx := context.Background()
	m := newMemoryOnlyManager()

	m.Set(ctx, "facebook:impressions:123", 1, 0)
	m.Set(ctx, "facebook:impressions:456", 2, 0)
	m.Set(ctx, "facebook:overview:123", 3, 0)

	removed := m.Invalidate(ctx, "facebook:impressions*")
	assert.Equal(t, 2, removed)

	var v int
	assert.False(t, m.Get(ctx, "facebook:impressions:123", &v))
	assert.True(t, m.Get(ctx, "facebook:overview:123", &v))
}

func TestManagerInvalidatePrefixes(t *testing.T) {
	ctx := context.Background()
	m := newMemoryOnlyManager()

	m.Set(ctx, "facebook:impressions:1", 1, 0)
	m.Set(ctx, "facebook:purchases:1", 2, 0)
	m.Set(ctx, "google:campaigns:1", 3, 0)

	removed := m.InvalidatePrefixes(ctx, []string{"facebook:impressions*", "facebook:purchases*"})
	assert.Equal(t, 2, removed)

	var v int
	assert.True(t, m.Get(ctx, "google:campaigns:1", &v))
}

func TestManagerFlushAll(t *testing.T) {
	ctx := context.Background()
	m := newMemoryOnlyManager()

	m.Set(ctx, "facebook:overview:1", 1, 0)
	m.Set(ctx, "google:overview:1", 2, 0)

	assert.NoError(t, m.FlushAll(ctx))

	stats := m.Stats(ctx)
	assert.Equal(t, 0, stats.MemoryEntries)
	assert.False(t, stats.RedisEnabled)
}
