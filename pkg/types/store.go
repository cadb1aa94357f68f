package types

import "errors"

// Store is the handle the presentation layer holds on the record store.
// Callers attach to a backend, use the typed tables, and detach when done.
type Store interface {
	Partners() Table[*Partner]
	ProductTypes() Table[*ProductType]
	Products() Table[*Product]
	Sales() Table[*Sale]

	// Attach opens the backend described by config and ensures the schema.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
