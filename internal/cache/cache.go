// Package cache is a small in-process TTL cache. It is deliberately an
// explicit injected object rather than package-level state so expiry can be
// tested in isolation.
package cache

import (
	"sync"
	"time"
)

type Entry[T any] struct {
	Value    T
	StoredAt time.Time
}

// Expired reports whether the entry is stale at now for the given ttl.
func (e Entry[T]) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) >= ttl
}

type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]Entry[T]
	ttl     time.Duration
	now     func() time.Time
}

func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		entries: map[string]Entry[T]{},
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || e.Expired(s.now(), s.ttl) {
		var zero T
		return zero, false
	}
	return e.Value, true
}

func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	s.entries[key] = Entry[T]{Value: value, StoredAt: s.now()}
	s.mu.Unlock()
}

func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}
