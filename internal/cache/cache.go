// Package cache provides the in-memory caches the resolver keeps between calls.
package cache

import (
	"sync"

	"github.com/samber/mo"
)

// Key builds the composite key a resolved theme is cached under.
// An absent override contributes an empty segment.
func Key(themeID, overrideID string) string {
	return themeID + ":" + overrideID
}

// Cache is a keyed, mutex-protected cache. Values are stored and returned as
// is; callers must not mutate what they get back.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New returns an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Get returns the value stored under key, if any.
func (c *Cache[K, V]) Get(key K) mo.Option[V] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	if !ok {
		return mo.None[V]()
	}
	return mo.Some(v)
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[K]V)
	}
	c.entries[key] = value
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]V)
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Slot caches a single value, such as an enumeration of documents.
type Slot[V any] struct {
	mu    sync.RWMutex
	value mo.Option[V]
}

// Get returns the cached value, if set.
func (s *Slot[V]) Get() mo.Option[V] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

// Set replaces the cached value.
func (s *Slot[V]) Set(value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = mo.Some(value)
}

// Clear empties the slot.
func (s *Slot[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = mo.None[V]()
}
