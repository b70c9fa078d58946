package orchestrator

import (
	"sync"

	"go.trai.ch/compass/internal/core/domain"
)

// Cache holds successful payloads by fingerprint for the lifetime of a session.
// With a positive bound the oldest insertion is evicted first.
type Cache struct {
	mu         sync.RWMutex
	entries    map[domain.Fingerprint]*domain.Payload
	order      []domain.Fingerprint
	maxEntries int
}

// NewCache creates a Cache. maxEntries <= 0 means unbounded.
func NewCache(maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[domain.Fingerprint]*domain.Payload),
		maxEntries: maxEntries,
	}
}

// Get returns the payload stored under fp.
func (c *Cache) Get(fp domain.Fingerprint) (*domain.Payload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[fp]
	return p, ok
}

// Put stores payload under fp. An existing entry is replaced.
func (c *Cache) Put(fp domain.Fingerprint, payload *domain.Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[fp]; !exists {
		if c.maxEntries > 0 && len(c.order) >= c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, fp)
	}
	c.entries[fp] = payload
}

// Len returns the number of cached payloads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
