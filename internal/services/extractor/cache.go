package extractor

import (
	"sync"
	"time"
)

type cacheEntry struct {
	meta      *Metadata
	expiresAt time.Time
}

// metadataCache is a small in-memory TTL cache keyed by video URL. It keeps
// re-submissions of the same URL from hammering the scraper backend.
type metadataCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newMetadataCache(ttl time.Duration) *metadataCache {
	return &metadataCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *metadataCache) get(key string) (*Metadata, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.meta, true
}

func (c *metadataCache) set(key string, meta *Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		meta:      meta,
		expiresAt: time.Now().Add(c.ttl),
	}
}
