package character

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNameCache(t *testing.T) {
	cache := newNameCache(CacheConfig{Size: 2, TTL: time.Minute})
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	cache.Set("alpha", a)
	cache.Set("beta", b)
	got, ok := cache.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, a, got)

	// beta is now least recently used
	cache.Set("gamma", c)
	_, ok = cache.Get("beta")
	assert.False(t, ok)

	cache.Invalidate("alpha")
	_, ok = cache.Get("alpha")
	assert.False(t, ok)

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestNameCache_VersionMismatch(t *testing.T) {
	cache := newNameCache(CacheConfig{})
	cache.lru.Add("old", &cachedNameEntry{Version: "0.9", CharacterID: uuid.New()})

	_, ok := cache.Get("old")
	assert.False(t, ok)
	assert.Zero(t, cache.GetStats().Size)
}

func TestNameCache_Expiry(t *testing.T) {
	cache := newNameCache(CacheConfig{Size: 5, TTL: 20 * time.Millisecond})
	cache.Set("brief", uuid.New())
	time.Sleep(60 * time.Millisecond)

	_, ok := cache.Get("brief")
	assert.False(t, ok)
}
