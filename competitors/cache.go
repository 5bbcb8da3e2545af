package competitors

import (
	"sync"
	"time"
)

// Cache is a TTL cache for competitor record sets, owned by the caller.
// Analyze itself stays stateless; handlers decide what to cache and for how
// long. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	records   []Record
	expiresAt time.Time
}

// DefaultTTL matches the hourly refresh cadence of competitor data feeds.
const DefaultTTL = time.Hour

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached records for key, or nil when absent or expired.
// Expired entries are evicted on read.
func (c *Cache) Get(key string) []Record {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil
	}
	return entry.records
}

// Put stores records under key for ttl. A non-positive ttl uses DefaultTTL.
func (c *Cache) Put(key string, records []Record, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	c.entries[key] = cacheEntry{records: records, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}
