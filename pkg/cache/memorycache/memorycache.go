// Package memorycache provides an in-memory LRU cache with TTL support.
// Entries are bounded by count rather than byte cost: authorization results
// are small and uniform, so counting entries keeps eviction predictable
// without size estimation.
package memorycache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/jlap11/gestabiz-authz/pkg/cache"
)

// entry is one cached value with its expiry
type entry struct {
	key       string
	value     interface{}
	expiresAt time.Time
}

// Cache implements cache.Cache with LRU eviction and per-entry TTL.
type Cache struct {
	mu sync.RWMutex

	items      map[string]*list.Element // key -> list element
	evictList  *list.List               // front = most recent, back = least recent
	maxEntries int
	defaultTTL time.Duration

	metrics *cacheMetrics
}

type cacheMetrics struct {
	hits        uint64
	misses      uint64
	keysAdded   uint64
	keysEvicted uint64
}

// Config holds configuration for the memory cache.
type Config struct {
	// MaxEntries is the maximum number of cached entries. When exceeded,
	// least recently used entries are evicted. Zero means unbounded.
	MaxEntries int

	// DefaultTTL is applied when Set is called with a non-positive TTL.
	DefaultTTL time.Duration

	// EnableMetrics enables collection of cache statistics.
	EnableMetrics bool
}

// New creates a new memory cache with the given configuration.
func New(config *Config) *Cache {
	c := &Cache{
		items:      make(map[string]*list.Element),
		evictList:  list.New(),
		maxEntries: config.MaxEntries,
		defaultTTL: config.DefaultTTL,
	}
	if config.EnableMetrics {
		c.metrics = &cacheMetrics{}
	}
	return c
}

// Get retrieves a value from cache. Expired entries are removed on access.
func (c *Cache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		if c.metrics != nil {
			c.metrics.misses++
		}
		return nil, false
	}

	e := elem.Value.(*entry)
	if time.Now().After(e.expiresAt) {
		c.removeElement(elem)
		if c.metrics != nil {
			c.metrics.misses++
		}
		return nil, false
	}

	c.evictList.MoveToFront(elem)
	if c.metrics != nil {
		c.metrics.hits++
	}
	return e.value, true
}

// Set stores a value in cache. A non-positive ttl falls back to the
// configured default TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry)
		e.value = value
		e.expiresAt = time.Now().Add(ttl)
		c.evictList.MoveToFront(elem)
		return nil
	}

	elem := c.evictList.PushFront(&entry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	c.items[key] = elem
	if c.metrics != nil {
		c.metrics.keysAdded++
	}

	for c.maxEntries > 0 && c.evictList.Len() > c.maxEntries {
		oldest := c.evictList.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
		if c.metrics != nil {
			c.metrics.keysEvicted++
		}
	}
	return nil
}

// Delete removes a value from cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	return nil
}

// Clear removes all entries from cache.
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
	return nil
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.evictList.Len()
}

// Metrics returns cache statistics, or nil if metrics are disabled.
func (c *Cache) Metrics() *cache.Metrics {
	if c.metrics == nil {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return &cache.Metrics{
		Hits:        c.metrics.hits,
		Misses:      c.metrics.misses,
		KeysAdded:   c.metrics.keysAdded,
		KeysEvicted: c.metrics.keysEvicted,
	}
}

// removeElement removes an element; callers must hold the write lock.
func (c *Cache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	e := elem.Value.(*entry)
	delete(c.items, e.key)
}
