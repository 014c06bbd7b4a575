// Package cache provides a small in-process, tag-invalidated cache for
// derived views. Mutating services invalidate a logical resource name and any
// entry tagged with it is dropped, so the next read recomputes from storage.
package cache

import (
	"sync"
	"time"
)

// Logical resource names used as invalidation tags.
const (
	ResourceFunds   = "funds"
	ResourceFinance = "finance"
)

type item[T any] struct {
	value     T
	expiresAt time.Time
	resources []string
}

// TagCache is a TTL cache whose entries are tagged with resource names.
type TagCache[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]item[T]
}

// NewTagCache creates a TagCache with the given entry TTL.
func NewTagCache[T any](ttl time.Duration) *TagCache[T] {
	return &TagCache[T]{
		ttl:   ttl,
		items: make(map[string]item[T]),
	}
}

// Get retrieves a cached value. Expired entries are treated as absent.
func (c *TagCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	it, ok := c.items[key]
	if !ok || time.Now().After(it.expiresAt) {
		return zero, false
	}
	return it.value, true
}

// Set stores a value tagged with the given resource names.
func (c *TagCache[T]) Set(key string, value T, resources ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
		resources: resources,
	}
}

// Invalidate drops every entry tagged with the given resource.
func (c *TagCache[T]) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, it := range c.items {
		for _, r := range it.resources {
			if r == resource {
				delete(c.items, key)
				break
			}
		}
	}
}

// CleanExpired removes expired entries and returns how many were dropped.
func (c *TagCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for key, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, key)
			cleaned++
		}
	}
	return cleaned
}

// Size returns the current number of entries, expired ones included.
func (c *TagCache[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Invalidatable is any cache that supports tag invalidation.
type Invalidatable interface {
	Invalidate(resource string)
}

// Registry fans an invalidation out to every registered cache. It is what
// mutating services hold: invalidation is synchronous and completes before
// the mutation returns success.
type Registry struct {
	mu     sync.RWMutex
	caches []Invalidatable
}

// NewRegistry creates an empty cache registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a cache to the registry.
func (r *Registry) Register(c Invalidatable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = append(r.caches, c)
}

// Invalidate drops entries tagged with resource across all registered caches.
func (r *Registry) Invalidate(resource string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.caches {
		c.Invalidate(resource)
	}
}
