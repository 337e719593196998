package quote

import (
	"strconv"
	"sync"
)

// Cache memoizes quote results keyed by (destination slug, weight).
// Rate and destination tables are immutable after startup, so entries
// never go stale and there is no eviction. Unlike the original
// per-browser memo this cache is shared across requests, hence the
// lock.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Result
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Result)}
}

// Key builds the cache key for a normalized slug and a weight in grams.
func Key(slug string, totalWeightGrams int) string {
	return slug + "-" + strconv.Itoa(totalWeightGrams)
}

func (c *Cache) Get(key string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[key]
	return r, ok
}

func (c *Cache) Put(key string, r Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = r
}
