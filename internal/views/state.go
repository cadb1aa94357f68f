// Package views holds the screen-local state of every view: the error slot
// and the form slots. The state lives in a side table keyed by view for the
// whole process lifetime; navigation history never snapshots or resets it.
package views

import (
	"time"

	"github.com/mesh-intelligence/tradebook/internal/nav"
	"github.com/mesh-intelligence/tradebook/pkg/types"
)

// FormID names one form slot.
type FormID int

// Form slots.
const (
	FormPartner FormID = iota
	FormSale
	FormProduct
	FormProductType
)

var formNames = map[FormID]string{
	FormPartner:     "partner",
	FormSale:        "sale",
	FormProduct:     "product",
	FormProductType: "product-type",
}

var formViews = map[FormID]nav.View{
	FormPartner:     nav.Partners,
	FormSale:        nav.Sales,
	FormProduct:     nav.Products,
	FormProductType: nav.Products,
}

func (f FormID) String() string { return formNames[f] }

// View returns the view the form belongs to.
func (f FormID) View() nav.View { return formViews[f] }

// ErrorSlot is the dismissible error surface of a view. Only the most recent
// message is kept.
type ErrorSlot struct {
	Visible bool
	Message string
}

// FormSlot is one form of a view: whether it is open and its in-progress
// field values.
type FormSlot struct {
	Open   bool
	Fields Form
}

type viewState struct {
	err   ErrorSlot
	forms []FormID
}

// State is the side table of screen-local state. Main has no slots.
type State struct {
	views map[nav.View]*viewState
	forms map[FormID]*FormSlot
}

// NewState returns the default state: every error slot hidden, every form
// closed and empty. today seeds the sale form date.
func NewState(today time.Time) *State {
	return &State{
		views: map[nav.View]*viewState{
			nav.Partners: {forms: []FormID{FormPartner}},
			nav.Sales:    {forms: []FormID{FormSale}},
			nav.Products: {forms: []FormID{FormProduct, FormProductType}},
		},
		forms: map[FormID]*FormSlot{
			FormPartner:     {Fields: &PartnerForm{}},
			FormSale:        {Fields: NewSaleForm(today)},
			FormProduct:     {Fields: &ProductForm{}},
			FormProductType: {Fields: &ProductTypeForm{}},
		},
	}
}

// Error returns a copy of the error slot of v. Main always reports a hidden
// slot.
func (s *State) Error(v nav.View) ErrorSlot {
	if vs, ok := s.views[v]; ok {
		return vs.err
	}
	return ErrorSlot{}
}

// ShowError makes msg the visible error of v. It reports false for views
// without an error slot.
func (s *State) ShowError(v nav.View, msg string) bool {
	vs, ok := s.views[v]
	if !ok {
		return false
	}
	vs.err = ErrorSlot{Visible: true, Message: msg}
	return true
}

// DismissError hides the error of v. The message is kept until replaced.
func (s *State) DismissError(v nav.View) {
	if vs, ok := s.views[v]; ok {
		vs.err.Visible = false
	}
}

// Forms returns the form slots owned by v in display order.
func (s *State) Forms(v nav.View) []FormID {
	vs, ok := s.views[v]
	if !ok {
		return nil
	}
	out := make([]FormID, len(vs.forms))
	copy(out, vs.forms)
	return out
}

// Form returns the slot for f. The slot is live: changes through it are
// visible to later frames.
func (s *State) Form(f FormID) *FormSlot {
	return s.forms[f]
}

// OpenForm marks f open.
func (s *State) OpenForm(f FormID) {
	if slot, ok := s.forms[f]; ok {
		slot.Open = true
	}
}

// CloseForm marks f closed. Field values are kept.
func (s *State) CloseForm(f FormID) {
	if slot, ok := s.forms[f]; ok {
		slot.Open = false
	}
}

// SetField stores value into field of form f.
func (s *State) SetField(f FormID, field, value string) error {
	slot, ok := s.forms[f]
	if !ok {
		return types.Invalidf("unknown form %q", f.String())
	}
	return slot.Fields.Set(field, value)
}

// ParseForm returns the form with the given name.
func ParseForm(name string) (FormID, bool) {
	for f, n := range formNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}
