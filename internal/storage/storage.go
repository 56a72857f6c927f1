// Package storage provides the key-value store the rest of stockkeeper
// persists through. Values are opaque strings (the accessors layer keeps
// JSON in them); keys are plain strings. Implementations must make every
// operation individually atomic so a reader never observes a partial write.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound reports an absent key. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// Store describes the persistent key-value operations the app relies on.
//
// Contract:
//   - Get returns ErrNotFound for an absent key, never an empty value.
//   - Set creates or replaces a key atomically.
//   - Remove is a no-op for an absent key.
//   - Clear drops every key.
//
// All methods must honor context cancellation where the backend allows it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open constructs the configured Store implementation. path is the file
// store's document path or the sqlite database path, depending on backend.
func Open(ctx context.Context, backend string, path string) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return OpenSQLite(ctx, path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", backend)
	}
}
