package gitroot

import "sync"

// Cache holds resolved git roots keyed by folder path and coalesces
// concurrent lookups for the same key into a single walk. The first
// caller for a key performs the walk; later callers wait on the same
// in-flight entry. Successful resolutions persist for the lifetime of
// the cache; absent or failed resolutions are evicted on completion so
// a later call can re-attempt (for example after `git init`).
//
// The cache has no hidden global instance: the owning process
// constructs one and injects it into each Resolver.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	done chan struct{}

	// set by the leader before done is closed
	root string
	ok   bool
	err  error
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// acquire returns the entry for key. leader is true when the caller is
// responsible for performing the walk and completing the entry.
func (c *Cache) acquire(key string) (e *cacheEntry, leader bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e, false
	}
	e = &cacheEntry{done: make(chan struct{})}
	c.entries[key] = e
	return e, true
}

// complete publishes the walk result on e and evicts the entry unless
// it represents a successful resolution.
func (c *Cache) complete(key string, e *cacheEntry, root string, ok bool, err error) {
	e.root = root
	e.ok = ok
	e.err = err
	close(e.done)

	if ok && err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Only evict our own entry; a concurrent Clear may have replaced it.
	if c.entries[key] == e {
		delete(c.entries, key)
	}
}

// Clear drops all cached resolutions. In-flight walks complete but
// their results are not retained for future callers.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// Len reports the number of cached entries, including in-flight ones.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
