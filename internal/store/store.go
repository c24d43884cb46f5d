// Package store holds the persistence seams: a key-value Store for carts and
// a SQLite-backed OrderStore for completed orders.
package store

import (
	"context"
	"errors"
)

// Store is the key-value persistence interface. Values are opaque JSON; the
// medium (memory, redis, browser storage on the client) is interchangeable.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by Load for an absent key.
var ErrNotFound = errors.New("store: key not found")
