// Package kv defines a small persistent key-value store used for UI state
// that should survive restarts, such as the last viewed gallery position.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is missing or has expired.
var ErrNotFound = errors.New("kv: key not found")

// KV is a persistent key-value store. Values are JSON-serializable.
type KV interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	SetTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
	SweepExpired(ctx context.Context) (int64, error)
}
