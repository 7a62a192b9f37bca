// Package cache provides a bounded, TTL-based in-memory result cache.
//
// Entries live for a fixed time-to-live independent of access pattern.
// When the cache is full, inserting a new key evicts the oldest-inserted
// entry (FIFO, not LRU). State is process-lifetime only; nothing persists.
package cache

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/nekomori/animeseek/internal/metrics"
)

const (
	// DefaultTTL is how long an entry stays valid after insertion.
	DefaultTTL = 5 * time.Minute
	// DefaultCapacity bounds the number of live entries.
	DefaultCapacity = 100
)

var keySpaceRegex = regexp.MustCompile(`\s+`)

// CanonicalKey lower-cases a key and collapses whitespace runs to
// underscores, so "Spy x Family" and "spy  x  family" share an entry.
func CanonicalKey(key string) string {
	return keySpaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(key)), "_")
}

type entry[T any] struct {
	data      T
	timestamp time.Time
}

// Cache is a bounded TTL cache. A single mutex guards the entry map, the
// insertion-order list and the shared metrics counters; callers always
// receive values, never references into the cache.
type Cache[T any] struct {
	mu       sync.Mutex
	entries  map[string]entry[T]
	order    []string
	capacity int
	ttl      time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New creates a cache with the given capacity and TTL. Non-positive values
// fall back to the defaults. metrics may be nil.
func New[T any](capacity int, ttl time.Duration, m *metrics.Metrics) *Cache[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{
		entries:  make(map[string]entry[T], capacity),
		capacity: capacity,
		ttl:      ttl,
		metrics:  m,
		now:      time.Now,
	}
}

// Get returns the value stored under key. An entry past its TTL counts as a
// miss and is evicted as a side effect of the lookup.
func (c *Cache[T]) Get(key string) (T, bool) {
	k := CanonicalKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.metrics.RecordCacheMiss()
		var zero T
		return zero, false
	}
	if c.now().Sub(e.timestamp) > c.ttl {
		c.remove(k)
		c.metrics.RecordCacheMiss()
		var zero T
		return zero, false
	}

	c.metrics.RecordCacheHit()
	return e.data, true
}

// Set stores value under key. Updating an existing key keeps its original
// insertion-order slot; inserting a new key at capacity first evicts the
// oldest-inserted entry.
func (c *Cache[T]) Set(key string, value T) {
	k := CanonicalKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[k]; !exists {
		if len(c.entries) >= c.capacity && len(c.order) > 0 {
			c.remove(c.order[0])
		}
		c.order = append(c.order, k)
	}
	c.entries[k] = entry[T]{data: value, timestamp: c.now()}
}

// Len reports the number of live entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge drops all entries. Test isolation helper.
func (c *Cache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T], c.capacity)
	c.order = nil
}

// remove deletes a key from both the map and the insertion-order list.
// Caller must hold the mutex.
func (c *Cache[T]) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
