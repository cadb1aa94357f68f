// Package sqlite exposes the relational tradebook store to programs outside
// this module while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/tradebook/internal/sqlite"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// NewStore returns a detached store. Call Attach with a Config before use.
func NewStore() types.Store {
	return sqlite.NewBackend()
}

// Open returns a store already attached to the backend described by config.
//
// Example:
//
//	store, err := sqlite.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/tradebook",
//	})
//	if err != nil {
//	    return err
//	}
//	defer store.Detach()
func Open(config types.Config) (types.Store, error) {
	store := NewStore()
	if err := store.Attach(config); err != nil {
		return nil, err
	}
	return store, nil
}
