// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"container/list"
	"errors"
	"sync"
)

// ErrCreateFailed is returned to callers that waited on a create call
// which panicked.
var ErrCreateFailed = errors.New("cache: create panicked")

// Cache is a thread-safe least-recently-used cache holding at most limit
// entries. A limit of 0 disables caching: every lookup misses and nothing
// is stored.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	limit   int
	order   *list.List // front is most recently used
	entries map[K]*list.Element
	flight  map[K]*call[V] // creates in progress
	hits    uint64
	misses  uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// call is one create in progress; done is closed when it finishes.
type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit:   max(limit, 0),
		order:   list.New(),
		entries: make(map[K]*list.Element),
		flight:  make(map[K]*call[V]),
	}
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	el, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

func (c *Cache[K, V]) set(key K, value V) {
	if c.limit == 0 {
		return
	}
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	for c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K, V]).key)
	}
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. The lock is not held while create runs, so other keys stay
// readable; concurrent callers for the same key wait for a single create
// and share its result. Errors are returned without caching. The hit
// result reports whether this caller's value was produced by another call.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, bool, error) {
	c.mu.Lock()
	if v, ok := c.get(key); ok {
		c.mu.Unlock()
		return v, true, nil
	}
	if cl, ok := c.flight[key]; ok {
		c.mu.Unlock()
		<-cl.done
		return cl.value, cl.err == nil, cl.err
	}
	cl := &call[V]{done: make(chan struct{})}
	c.flight[key] = cl
	c.mu.Unlock()

	finished := false
	defer func() {
		if !finished {
			cl.err = ErrCreateFailed
		}
		c.mu.Lock()
		delete(c.flight, key)
		if cl.err == nil {
			c.set(key, cl.value)
		}
		c.mu.Unlock()
		close(cl.done)
	}()

	v, err := create()
	if err != nil {
		var zero V
		v = zero
	}
	cl.value, cl.err = v, err
	finished = true
	return v, false, err
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns a snapshot of cache usage.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: c.order.Len(), Limit: c.limit, Hits: c.hits, Misses: c.misses}
}

// Stats contains cache statistics.
type Stats struct {
	Len    int    `json:"len"`
	Limit  int    `json:"limit"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}
