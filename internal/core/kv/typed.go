package kv

import (
	"context"
	"errors"
	"time"
)

// TypedKV provides type-safe access to a KV store for a specific type T.
type TypedKV[T any] struct {
	store  KV
	prefix string
	ttl    time.Duration
}

// Scoped returns a TypedKV[T] that prefixes all keys with "namespace:".
func Scoped[T any](store KV, namespace string) *TypedKV[T] {
	return &TypedKV[T]{
		store:  store,
		prefix: namespace + ":",
	}
}

// WithTTL makes Set expire values after ttl. Zero disables expiry.
func (t *TypedKV[T]) WithTTL(ttl time.Duration) *TypedKV[T] {
	cp := *t
	cp.ttl = ttl
	return &cp
}

// Get retrieves and deserializes a value by key.
func (t *TypedKV[T]) Get(ctx context.Context, key string) (T, error) {
	var v T
	if err := t.store.Get(ctx, t.prefix+key, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Lookup is Get with a missing key reported as ok=false instead of an error.
func (t *TypedKV[T]) Lookup(ctx context.Context, key string) (T, bool, error) {
	v, err := t.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Set stores a value using the scope's TTL.
func (t *TypedKV[T]) Set(ctx context.Context, key string, value T) error {
	if t.ttl > 0 {
		return t.store.SetTTL(ctx, t.prefix+key, value, t.ttl)
	}
	return t.store.Set(ctx, t.prefix+key, value)
}

// Delete removes a key.
func (t *TypedKV[T]) Delete(ctx context.Context, key string) error {
	return t.store.Delete(ctx, t.prefix+key)
}

// Has returns whether a key exists.
func (t *TypedKV[T]) Has(ctx context.Context, key string) (bool, error) {
	return t.store.Has(ctx, t.prefix+key)
}
