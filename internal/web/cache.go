package web

import (
	"sync"
)

// PageCache memoizes rendered page bodies by logical path. It is the
// production implementation of the mutation layer's invalidation
// signal: a mutation marks a path stale here and the next read for that
// path recomputes it.
type PageCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewPageCache creates an empty cache.
func NewPageCache() *PageCache {
	return &PageCache{entries: make(map[string][]byte)}
}

// Get returns the cached body for a path, if present.
func (c *PageCache) Get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.entries[path]
	return body, ok
}

// Put stores the rendered body for a path, replacing any previous one.
func (c *PageCache) Put(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = body
}

// Invalidate drops the cached body for a path. The navigate flag is a
// hint for transports that steer the client; the cache itself only
// cares about staleness. Invalidating an uncached path is a no-op.
func (c *PageCache) Invalidate(path string, navigate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
