// Package sqlite implements the relational store backend for tradebook.
// SQLite (modernc.org/sqlite) is the default; MySQL is available through the
// same statements for shared deployments.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tradebook/internal/metrics"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface over a database/sql connection pool.
// The pool is process-wide and shared by every table accessor.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	log     *zap.Logger
	metrics *metrics.StoreMetrics

	partners     *table[*types.Partner]
	productTypes *table[*types.ProductType]
	products     *table[*types.Product]
	sales        *table[*types.Sale]
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for lifecycle and failure logging.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMetrics records every table operation into m.
func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(b *Backend) {
		b.metrics = m
	}
}

// NewBackend creates a new backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.partners = newTable(b, partnerEntity)
	b.productTypes = newTable(b, productTypeEntity)
	b.products = newTable(b, productEntity)
	b.sales = newTable(b, saleEntity)
	return b
}

// Partners returns the partners table.
func (b *Backend) Partners() types.Table[*types.Partner] { return b.partners }

// ProductTypes returns the product types table.
func (b *Backend) ProductTypes() types.Table[*types.ProductType] { return b.productTypes }

// Products returns the products table.
func (b *Backend) Products() types.Table[*types.Product] { return b.products }

// Sales returns the sales table.
func (b *Backend) Sales() types.Table[*types.Sale] { return b.sales }

// Attach opens the connection pool for the configured backend and ensures
// the schema exists. Existing data is kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}
	d := dialects[config.Backend]

	if config.Backend == types.BackendSQLite {
		if err := os.MkdirAll(dataDirOrDefault(config.DataDir), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open(d.driver, d.dsn(config))
	if err != nil {
		return fmt.Errorf("open %s: %w", config.Backend, err)
	}
	d.configure(db)

	for _, ddl := range d.schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.log.Info("store attached",
		zap.String("backend", config.Backend),
		zap.String("data_dir", config.DataDir),
	)
	return nil
}

// Detach closes the connection pool. After Detach, table operations return
// a *DatabaseError wrapping ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.log.Info("store detached", zap.String("backend", b.config.Backend))
	return nil
}

// Config returns the configuration the backend was attached with.
func (b *Backend) Config() types.Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}
