package character

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheConfig sizes the name lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports name cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedNameEntry wraps a character id with version metadata for cache invalidation
type cachedNameEntry struct {
	Version     string
	CharacterID uuid.UUID
	CachedAt    time.Time
}

// nameCache maps exact character names to ids. Entries expire after the TTL
// and are dropped on version mismatch.
type nameCache struct {
	lru    *expirable.LRU[string, *cachedNameEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newNameCache(cfg CacheConfig) *nameCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &nameCache{
		lru: expirable.NewLRU[string, *cachedNameEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the id cached for name
func (c *nameCache) Get(name string) (uuid.UUID, bool) {
	entry, found := c.lru.Get(name)
	if !found {
		c.misses.Add(1)
		return uuid.Nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(name)
		c.misses.Add(1)
		return uuid.Nil, false
	}

	c.hits.Add(1)
	return entry.CharacterID, true
}

// Set stores the id of name with the current schema version
func (c *nameCache) Set(name string, id uuid.UUID) {
	c.lru.Add(name, &cachedNameEntry{
		Version:     CacheSchemaVersion,
		CharacterID: id,
		CachedAt:    time.Now(),
	})
}

// Invalidate removes name from the cache
func (c *nameCache) Invalidate(name string) {
	c.lru.Remove(name)
}

// GetStats returns hit, miss and size counters
func (c *nameCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
