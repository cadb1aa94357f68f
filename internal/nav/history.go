package nav

// Controller owns the current view and the back/forward history. It stores
// view tags only; screen-local state lives elsewhere and is not restored by
// navigation.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	current  View
	previous []View // most recent last
	next     []View // most recent last
}

// NewController returns a controller on the Main view with empty history.
func NewController() *Controller {
	return &Controller{current: Main}
}

// Current returns the active view.
func (c *Controller) Current() View {
	return c.current
}

// SetView makes v current, pushes the old current view onto the back
// history and discards the forward history.
func (c *Controller) SetView(v View) {
	c.previous = append(c.previous, c.current)
	c.current = v
	c.next = c.next[:0]
}

// GoBack returns to the most recent previous view. It is a no-op when there
// is no back history.
func (c *Controller) GoBack() {
	if len(c.previous) == 0 {
		return
	}
	c.next = append(c.next, c.current)
	v, ok := pop(&c.previous)
	if !ok {
		v = Main
	}
	c.current = v
}

// GoForward re-enters the most recently left view. It is a no-op when there
// is no forward history.
func (c *Controller) GoForward() {
	if len(c.next) == 0 {
		return
	}
	c.previous = append(c.previous, c.current)
	if v, ok := pop(&c.next); ok {
		c.current = v
	}
}

// CanGoBack reports whether GoBack would change the view.
func (c *Controller) CanGoBack() bool { return len(c.previous) > 0 }

// CanGoForward reports whether GoForward would change the view.
func (c *Controller) CanGoForward() bool { return len(c.next) > 0 }

// Previous returns a copy of the back history, most recent last.
func (c *Controller) Previous() []View { return clone(c.previous) }

// Next returns a copy of the forward history, most recent last.
func (c *Controller) Next() []View { return clone(c.next) }

func pop(stack *[]View) (View, bool) {
	s := *stack
	if len(s) == 0 {
		return Main, false
	}
	v := s[len(s)-1]
	*stack = s[:len(s)-1]
	return v, true
}

func clone(s []View) []View {
	out := make([]View, len(s))
	copy(out, s)
	return out
}
