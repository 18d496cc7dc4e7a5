// Package memcache implements the in-process TTL store backing the lookup
// cache. Expensive aggregations are cached per key for a fixed freshness
// window; expiration is checked lazily on read and stale entries linger until
// a later Put overwrites them. There is no eviction beyond that; the store
// grows with the distinct key set, which is bounded in practice by the
// services' rule of never caching failed or empty lookups.
package memcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	storedAt time.Time
	value    V
}

// Store maps lookup keys to cached values with the instant they were stored.
// All access is serialized by one lock for the whole structure; reads and
// writes never perform I/O. The zero value is not usable, construct with New.
type Store[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   func() time.Time
	entries map[K]entry[V]
}

// Option configures a Store.
type Option[K comparable, V any] func(*Store[K, V])

// WithClock overrides the time source. Tests use this to drive the freshness
// window deterministically.
func WithClock[K comparable, V any](clock func() time.Time) Option[K, V] {
	return func(s *Store[K, V]) {
		s.clock = clock
	}
}

// New creates a Store whose entries are considered fresh for ttl after the
// Put that stored them.
func New[K comparable, V any](ttl time.Duration, opts ...Option[K, V]) *Store[K, V] {
	s := &Store[K, V]{
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[K]entry[V]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the cached value for key if an entry exists and is
// still within the freshness window. A stale entry is ignored, not removed;
// it stays in memory until a subsequent Put overwrites it.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.clock().Sub(e.storedAt) > s.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put inserts or unconditionally overwrites the entry for key, stamping it
// with the current instant. The timestamp always comes from the store's
// clock, never from the payload.
func (s *Store[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry[V]{storedAt: s.clock(), value: value}
}

// Len reports how many entries the store holds, fresh or stale.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
