// Package export moves the whole record store in and out of files: JSONL
// (one file per table, importable) and XLSX (one sheet per table, for
// reading in a spreadsheet).
package export

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// Formats.
const (
	FormatJSONL = "jsonl"
	FormatXLSX  = "xlsx"
)

// Snapshot is the content of every table at one point in time.
type Snapshot struct {
	Partners     []*types.Partner
	ProductTypes []*types.ProductType
	Products     []*types.Product
	Sales        []*types.Sale

	// Skipped counts input lines dropped while reading the snapshot.
	Skipped int
}

// Len returns the total number of records.
func (s Snapshot) Len() int {
	return len(s.Partners) + len(s.ProductTypes) + len(s.Products) + len(s.Sales)
}

// Load reads every table of store.
func Load(ctx context.Context, store types.Store) (Snapshot, error) {
	var (
		s   Snapshot
		err error
	)
	if s.Partners, err = store.Partners().GetAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.ProductTypes, err = store.ProductTypes().GetAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Products, err = store.Products().GetAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if s.Sales, err = store.Sales().GetAll(ctx); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Restore creates every record of s in store, referenced tables first. It
// stops at the first failure and returns how many records were created.
func Restore(ctx context.Context, store types.Store, s Snapshot) (int, error) {
	n := 0
	for _, rec := range s.ProductTypes {
		if err := store.ProductTypes().Create(ctx, rec); err != nil {
			return n, fmt.Errorf("product type %q: %w", rec.ProductType, err)
		}
		n++
	}
	for _, rec := range s.Partners {
		if err := store.Partners().Create(ctx, rec); err != nil {
			return n, fmt.Errorf("partner %s: %w", rec.ID, err)
		}
		n++
	}
	for _, rec := range s.Products {
		if err := store.Products().Create(ctx, rec); err != nil {
			return n, fmt.Errorf("product %s: %w", rec.ID, err)
		}
		n++
	}
	for _, rec := range s.Sales {
		if err := store.Sales().Create(ctx, rec); err != nil {
			return n, fmt.Errorf("sale %s: %w", rec.ID, err)
		}
		n++
	}
	return n, nil
}
