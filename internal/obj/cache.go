package obj

import "sync"

// Cache is a concurrency-safe cache of parsed meshes keyed by path.
// Cached meshes are shared and must be treated as read-only.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	parse func(string) (*Mesh, error)
}

type cacheEntry struct {
	mesh *Mesh
	err  error
}

// NewCache creates an empty cache backed by Parse.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		parse: Parse,
	}
}

// Load returns the mesh at path, parsing it on first use. Parse errors are
// cached too, so a broken file is only read once.
func (c *Cache) Load(path string) (*Mesh, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.mesh, entry.err
	}
	c.mu.RUnlock()

	// Slow path: parse from disk
	m, err := c.parse(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.mesh, entry.err
	}
	c.items[path] = &cacheEntry{mesh: m, err: err}
	return m, err
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
