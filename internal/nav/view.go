// Package nav implements browser-style navigation history between the
// application views.
package nav

import (
	"fmt"
	"strings"
)

// View is one of the application screens. The set is closed.
type View int

// Views.
const (
	Main View = iota
	Partners
	Sales
	Products
)

// AllViews lists every view in menu order.
var AllViews = []View{Main, Partners, Sales, Products}

var viewNames = map[View]string{
	Main:     "main",
	Partners: "partners",
	Sales:    "sales",
	Products: "products",
}

var viewTitles = map[View]string{
	Main:     "Main menu",
	Partners: "Partners",
	Sales:    "Sales",
	Products: "Products",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Title is the heading shown for the view.
func (v View) Title() string {
	return viewTitles[v]
}

// Valid reports whether v is one of the defined views.
func (v View) Valid() bool {
	_, ok := viewNames[v]
	return ok
}

// ParseView returns the view with the given name, case-insensitively.
func ParseView(name string) (View, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return Main, fmt.Errorf("unknown view %q", name)
}
