// Package storage provides the durable key-value store the wizard snapshots into.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Keys used by the wizard.
const (
	KeyNames   = "names"
	KeyBills   = "bills"
	KeySession = "session"
)

// KV defines the interface for key-value storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory)
// without changing the service layer.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in alphabetical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
