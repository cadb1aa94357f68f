package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Operation names used for error context, logging and metrics.
const (
	opCreate = "create"
	opDelete = "delete"
	opGet    = "get"
	opGetAll = "get_all"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// entity maps one record type onto its table. columns are in declaration
// order; values and scan must agree with that order.
type entity[T any] struct {
	name    string
	key     string
	columns []string
	values  func(rec T) ([]any, error)
	scan    func(row rowScanner) (T, error)
}

// table implements types.Table for a single record type. Statement text is
// built once from the entity; identity values are always bound parameters.
type table[T any] struct {
	backend *Backend
	entity  entity[T]

	insertSQL    string
	deleteSQL    string
	selectOneSQL string
	selectAllSQL string
}

func newTable[T any](b *Backend, e entity[T]) *table[T] {
	cols := strings.Join(e.columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(e.columns)), ", ")
	return &table[T]{
		backend:      b,
		entity:       e,
		insertSQL:    fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", e.name, cols, placeholders),
		deleteSQL:    fmt.Sprintf("DELETE FROM %s WHERE %s = ?", e.name, e.key),
		selectOneSQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", cols, e.name, e.key),
		selectAllSQL: fmt.Sprintf("SELECT %s FROM %s", cols, e.name),
	}
}

// Create inserts rec with one INSERT statement.
func (t *table[T]) Create(ctx context.Context, rec T) error {
	return t.run(ctx, opCreate, func(db *sql.DB) error {
		args, err := t.entity.values(rec)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, t.insertSQL, args...)
		return err
	})
}

// Delete removes the row with the given key. Zero affected rows is success.
func (t *table[T]) Delete(ctx context.Context, key string) error {
	return t.run(ctx, opDelete, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, t.deleteSQL, key)
		return err
	})
}

// Get returns the single row with the given key. No match wraps ErrNotFound;
// more than one match wraps ErrDuplicateKey.
func (t *table[T]) Get(ctx context.Context, key string) (T, error) {
	var out T
	err := t.run(ctx, opGet, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, t.selectOneSQL, key)
		if err != nil {
			return err
		}
		defer rows.Close()

		if !rows.Next() {
			if err := rows.Err(); err != nil {
				return err
			}
			return types.ErrNotFound
		}
		rec, err := t.entity.scan(rows)
		if err != nil {
			return fmt.Errorf("scanning %s row: %w", t.entity.name, err)
		}
		if rows.Next() {
			return fmt.Errorf("%s %s = %q: %w", t.entity.name, t.entity.key, key, types.ErrDuplicateKey)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// GetAll returns every row in store-native order.
func (t *table[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	err := t.run(ctx, opGetAll, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, t.selectAllSQL)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := t.entity.scan(rows)
			if err != nil {
				return fmt.Errorf("scanning %s row: %w", t.entity.name, err)
			}
			out = append(out, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run executes one store round trip under the backend read lock, records
// metrics, and maps any failure into *DatabaseError.
func (t *table[T]) run(ctx context.Context, op string, fn func(db *sql.DB) error) error {
	b := t.backend
	b.mu.RLock()
	defer b.mu.RUnlock()

	start := time.Now()
	var err error
	if !b.attached {
		err = types.ErrStoreDetached
	} else {
		err = fn(b.db)
	}
	b.metrics.Observe(t.entity.name, op, time.Since(start), err)

	if err != nil {
		b.log.Debug("store operation failed",
			zap.String("table", t.entity.name),
			zap.String("op", op),
			zap.Error(err),
		)
		return types.AsDatabaseError(op+" "+t.entity.name, err)
	}
	return nil
}
