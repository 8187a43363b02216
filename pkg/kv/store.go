// Package kv provides a generic thread-safe in-memory key-value store with
// compute-once lookups, used for caches that are expensive to build.
package kv

import "sync"

// Store is a thread-safe generic key-value store.
type Store[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]V
}

// New creates a new key-value store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: make(map[K]V),
	}
}

// Get retrieves a value by key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	return val, ok
}

// Set stores a value by key.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// GetOrCompute returns the value for key, building and storing it with fn
// on a miss. Errors from fn are returned and nothing is stored. fn runs
// under the write lock, so concurrent misses for a key build it once.
func (s *Store[K, V]) GetOrCompute(key K, fn func() (V, error)) (V, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}
	s.data[key] = v
	return v, nil
}

// Clear removes all entries from the store.
func (s *Store[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[K]V)
}

// Len returns the number of items in the store.
func (s *Store[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
