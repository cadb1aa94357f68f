// Package app ties the record store, navigation history and view state into
// one application value. Every action runs synchronously against the store
// and reports failures through the error slot of the affected view rather
// than to the caller.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/tradebook/internal/nav"
	"github.com/mesh-intelligence/tradebook/internal/views"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// App is the application context of the presentation loop. It is not safe
// for concurrent use.
type App struct {
	store types.Store
	nav   *nav.Controller
	state *views.State
	log   *zap.Logger
}

// Option configures an App.
type Option func(*options)

type options struct {
	log   *zap.Logger
	today time.Time
}

// WithLogger sets the logger for navigation and captured errors.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithToday sets the date the sale form starts on.
func WithToday(t time.Time) Option {
	return func(o *options) { o.today = t }
}

// New returns an App on the main view over an attached store.
func New(store types.Store, opts ...Option) *App {
	o := options{log: zap.NewNop(), today: time.Now()}
	for _, opt := range opts {
		opt(&o)
	}
	return &App{
		store: store,
		nav:   nav.NewController(),
		state: views.NewState(o.today),
		log:   o.log,
	}
}

// Current returns the active view.
func (a *App) Current() nav.View { return a.nav.Current() }

// State exposes the view state side table.
func (a *App) State() *views.State { return a.state }

// Navigate switches to v and clears the forward history.
func (a *App) Navigate(v nav.View) {
	if !v.Valid() {
		return
	}
	a.nav.SetView(v)
	a.log.Debug("navigate", zap.Stringer("view", v))
}

// Back returns to the previous view, if any.
func (a *App) Back() {
	a.nav.GoBack()
	a.log.Debug("back", zap.Stringer("view", a.nav.Current()))
}

// Forward re-enters the view left by Back, if any.
func (a *App) Forward() {
	a.nav.GoForward()
	a.log.Debug("forward", zap.Stringer("view", a.nav.Current()))
}

// OpenForm opens form f. Its field values are whatever was last entered.
func (a *App) OpenForm(f views.FormID) { a.state.OpenForm(f) }

// CloseForm closes form f and keeps its field values.
func (a *App) CloseForm(f views.FormID) { a.state.CloseForm(f) }

// DismissError hides the error of the current view.
func (a *App) DismissError() { a.state.DismissError(a.nav.Current()) }

// SetField stores a scalar field value into form f.
func (a *App) SetField(f views.FormID, field, value string) {
	if err := a.state.SetField(f, field, value); err != nil {
		a.capture(f.View(), "set field", err)
	}
}

// Select fills a reference field of form f with the record identified by
// key. The sale form references a "product" and a "partner"; the product
// form references a "product_type".
func (a *App) Select(ctx context.Context, f views.FormID, field, key string) {
	if err := a.selectRef(ctx, f, field, key); err != nil {
		a.capture(f.View(), "select", err)
	}
}

func (a *App) selectRef(ctx context.Context, f views.FormID, field, key string) error {
	slot := a.state.Form(f)
	if slot == nil {
		return types.Invalidf("unknown form %q", f.String())
	}
	switch form := slot.Fields.(type) {
	case *views.SaleForm:
		switch field {
		case "product":
			p, err := a.store.Products().Get(ctx, key)
			if err != nil {
				return err
			}
			form.Product = p
			return nil
		case "partner":
			p, err := a.store.Partners().Get(ctx, key)
			if err != nil {
				return err
			}
			form.Partner = p
			return nil
		}
	case *views.ProductForm:
		if field == "product_type" {
			pt, err := a.store.ProductTypes().Get(ctx, key)
			if err != nil {
				return err
			}
			form.ProductType = pt
			return nil
		}
	}
	return types.Invalidf("form %s has no reference field %q", f, field)
}

// Submit builds the record of form f and creates it. On success the form
// closes and keeps its values; on failure it stays open and the error is
// shown.
func (a *App) Submit(ctx context.Context, f views.FormID) {
	if err := a.submit(ctx, f); err != nil {
		a.capture(f.View(), "submit", err)
		return
	}
	a.state.CloseForm(f)
}

func (a *App) submit(ctx context.Context, f views.FormID) error {
	slot := a.state.Form(f)
	if slot == nil {
		return types.Invalidf("unknown form %q", f.String())
	}
	switch form := slot.Fields.(type) {
	case *views.PartnerForm:
		rec, err := form.Build()
		if err != nil {
			return err
		}
		return a.store.Partners().Create(ctx, rec)
	case *views.SaleForm:
		rec, err := form.Build()
		if err != nil {
			return err
		}
		return a.store.Sales().Create(ctx, rec)
	case *views.ProductForm:
		rec, err := form.Build()
		if err != nil {
			return err
		}
		return a.store.Products().Create(ctx, rec)
	case *views.ProductTypeForm:
		rec, err := form.Build()
		if err != nil {
			return err
		}
		return a.store.ProductTypes().Create(ctx, rec)
	}
	return types.Invalidf("form %s cannot be submitted", f)
}

// Delete removes the record of the kind form f creates. Deleting a missing
// key succeeds.
func (a *App) Delete(ctx context.Context, f views.FormID, key string) {
	var err error
	switch f {
	case views.FormPartner:
		err = a.store.Partners().Delete(ctx, key)
	case views.FormSale:
		err = a.store.Sales().Delete(ctx, key)
	case views.FormProduct:
		err = a.store.Products().Delete(ctx, key)
	case views.FormProductType:
		err = a.store.ProductTypes().Delete(ctx, key)
	default:
		err = types.Invalidf("unknown record kind %q", f.String())
	}
	if err != nil {
		a.capture(f.View(), "delete", err)
	}
}

// capture shows err in the error slot of v. Errors aimed at a view without a
// slot land on the current view.
func (a *App) capture(v nav.View, action string, err error) {
	msg := types.Message(err)
	if !a.state.ShowError(v, msg) {
		a.state.ShowError(a.nav.Current(), msg)
	}
	a.log.Warn("action failed",
		zap.String("action", action),
		zap.Stringer("view", v),
		zap.Error(err),
	)
}
