package types

import (
	"context"
	"errors"
)

// Table provides uniform create/read/delete operations for a single record
// type. Each method issues exactly one statement against the store. Every
// failure is returned as *DatabaseError.
type Table[T any] interface {
	// Create inserts the record. It never partially applies a write.
	Create(ctx context.Context, rec T) error

	// Delete removes the record with the given key. Deleting a key that does
	// not exist succeeds.
	Delete(ctx context.Context, key string) error

	// Get retrieves the record with the given key. The returned error wraps
	// ErrNotFound when no row matches and ErrDuplicateKey when more than one
	// row does.
	Get(ctx context.Context, key string) (T, error)

	// GetAll returns every record in store-native order.
	GetAll(ctx context.Context) ([]T, error)
}

// Table operation errors. They reach callers wrapped in *DatabaseError.
var (
	ErrNotFound      = errors.New("no rows returned by a query that expected to return at least one row")
	ErrDuplicateKey  = errors.New("more than one row matched a unique key")
	ErrInvalidRecord = errors.New("invalid record")
)
