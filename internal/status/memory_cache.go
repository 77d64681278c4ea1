package status

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is the in-process cache backend.
type MemoryCache struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]CacheEntry
}

// NewMemoryCache creates an in-process cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]CacheEntry),
	}
}

// Get returns the entry for key if it exists and has not expired.
// Expired entries are deleted on read.
func (c *MemoryCache) Get(_ context.Context, key string) (*CacheEntry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if entry.Age(time.Now()) >= c.ttl {
		c.mu.Lock()
		// Re-check: a concurrent Set may have replaced the entry.
		if e, ok := c.entries[key]; ok && e.Age(time.Now()) >= c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return &entry, true
}

// Set stores result under key, overwriting any previous entry.
func (c *MemoryCache) Set(_ context.Context, key string, result Result) {
	c.mu.Lock()
	c.entries[key] = CacheEntry{Result: result, StoredAt: time.Now().UnixMilli()}
	c.mu.Unlock()
}

// Backend identifies this backend.
func (c *MemoryCache) Backend() string { return "memory" }
