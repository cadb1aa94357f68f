package app

import (
	"context"

	"github.com/mesh-intelligence/tradebook/internal/nav"
	"github.com/mesh-intelligence/tradebook/internal/views"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// UnresolvedName is rendered in place of a sale's product or partner when
// the lookup fails.
const UnresolvedName = "error"

// Frame is the render model of one pass over the current view.
type Frame struct {
	View         nav.View
	CanGoBack    bool
	CanGoForward bool
	Error        views.ErrorSlot

	Partners     []*types.Partner
	Products     []*types.Product
	ProductTypes []*types.ProductType
	Sales        []SaleRow

	Forms []FormFrame
}

// SaleRow is a sale with its references resolved for display.
type SaleRow struct {
	Sale    *types.Sale
	Product string
	Partner string
}

// FormFrame is the rendered state of one form slot.
type FormFrame struct {
	ID     views.FormID
	Open   bool
	Fields []views.Field
}

// Frame loads the records the current view shows. A failed load is shown in
// the view's error slot and the frame continues with an empty list.
func (a *App) Frame(ctx context.Context) Frame {
	v := a.nav.Current()
	fr := Frame{
		View:         v,
		CanGoBack:    a.nav.CanGoBack(),
		CanGoForward: a.nav.CanGoForward(),
	}

	switch v {
	case nav.Partners:
		fr.Partners = load(a, v, "list partners", func() ([]*types.Partner, error) {
			return a.store.Partners().GetAll(ctx)
		})
	case nav.Sales:
		sales := load(a, v, "list sales", func() ([]*types.Sale, error) {
			return a.store.Sales().GetAll(ctx)
		})
		fr.Partners = load(a, v, "list partners", func() ([]*types.Partner, error) {
			return a.store.Partners().GetAll(ctx)
		})
		fr.Products = load(a, v, "list products", func() ([]*types.Product, error) {
			return a.store.Products().GetAll(ctx)
		})
		fr.Sales = ResolveSales(ctx, a.store, sales)
	case nav.Products:
		fr.Products = load(a, v, "list products", func() ([]*types.Product, error) {
			return a.store.Products().GetAll(ctx)
		})
		fr.ProductTypes = load(a, v, "list product types", func() ([]*types.ProductType, error) {
			return a.store.ProductTypes().GetAll(ctx)
		})
	}

	for _, f := range a.state.Forms(v) {
		slot := a.state.Form(f)
		fr.Forms = append(fr.Forms, FormFrame{ID: f, Open: slot.Open, Fields: slot.Fields.Fields()})
	}
	fr.Error = a.state.Error(v)
	return fr
}

func load[T any](a *App, v nav.View, action string, fetch func() ([]T, error)) []T {
	recs, err := fetch()
	if err != nil {
		a.capture(v, action, err)
		return nil
	}
	return recs
}

// ResolveSales looks up the product and partner of every sale. A failed
// lookup renders as UnresolvedName and is not reported.
func ResolveSales(ctx context.Context, store types.Store, sales []*types.Sale) []SaleRow {
	rows := make([]SaleRow, 0, len(sales))
	for _, s := range sales {
		row := SaleRow{Sale: s, Product: UnresolvedName, Partner: UnresolvedName}
		if p, err := store.Products().Get(ctx, s.ProductID); err == nil {
			row.Product = p.ProductName
		}
		if p, err := store.Partners().Get(ctx, s.PartnerID); err == nil {
			row.Partner = p.Label()
		}
		rows = append(rows, row)
	}
	return rows
}
