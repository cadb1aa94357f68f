package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController(t *testing.T) {
	c := NewController()
	assert.Equal(t, Main, c.Current())
	assert.Empty(t, c.Previous())
	assert.Empty(t, c.Next())
	assert.False(t, c.CanGoBack())
	assert.False(t, c.CanGoForward())
}

func TestBackThenForward(t *testing.T) {
	c := NewController()

	c.SetView(Partners)
	c.GoBack()
	assert.Equal(t, Main, c.Current())

	c.GoForward()
	assert.Equal(t, Partners, c.Current())
	assert.Equal(t, []View{Main}, c.Previous())
	assert.Empty(t, c.Next())
}

func TestSetViewClearsForwardHistory(t *testing.T) {
	c := NewController()
	c.SetView(Partners)
	c.SetView(Sales)
	c.GoBack()
	c.GoBack()
	require.Equal(t, []View{Sales, Partners}, c.Next())

	c.SetView(Products)
	assert.Empty(t, c.Next())
	assert.Equal(t, []View{Main}, c.Previous())
	assert.Equal(t, Products, c.Current())

	c.GoForward()
	assert.Equal(t, Products, c.Current(), "forward after diverging is a no-op")
}

func TestNoOpsOnEmptyStacks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		act   func(c *Controller)
	}{
		{
			name:  "back on fresh controller",
			setup: func(c *Controller) {},
			act:   (*Controller).GoBack,
		},
		{
			name:  "forward on fresh controller",
			setup: func(c *Controller) {},
			act:   (*Controller).GoForward,
		},
		{
			name:  "forward after set view",
			setup: func(c *Controller) { c.SetView(Sales) },
			act:   (*Controller).GoForward,
		},
		{
			name: "back after exhausting history",
			setup: func(c *Controller) {
				c.SetView(Sales)
				c.GoBack()
			},
			act: (*Controller).GoBack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			tt.setup(c)
			cur, prev, next := c.Current(), c.Previous(), c.Next()

			tt.act(c)

			assert.Equal(t, cur, c.Current())
			assert.Equal(t, prev, c.Previous())
			assert.Equal(t, next, c.Next())
		})
	}
}

func TestSetViewToSameView(t *testing.T) {
	c := NewController()
	c.SetView(Main)
	assert.Equal(t, Main, c.Current())
	assert.Equal(t, []View{Main}, c.Previous())
}

func TestHistoryCopiesAreIndependent(t *testing.T) {
	c := NewController()
	c.SetView(Partners)

	prev := c.Previous()
	prev[0] = Products

	assert.Equal(t, []View{Main}, c.Previous())
}

// TestRandomWalkInvariants drives the controller with random actions and
// checks the history invariants after every step.
func TestRandomWalkInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewController()

	for step := 0; step < 5000; step++ {
		switch rng.Intn(3) {
		case 0:
			c.SetView(AllViews[rng.Intn(len(AllViews))])
			require.Empty(t, c.Next(), "step %d: set view must clear forward history", step)
		case 1:
			if !c.CanGoBack() {
				before := c.Current()
				c.GoBack()
				require.Equal(t, before, c.Current())
				continue
			}
			before := c.Current()
			prevLen, nextLen := len(c.Previous()), len(c.Next())
			c.GoBack()
			require.Equal(t, prevLen-1, len(c.Previous()))
			require.Equal(t, nextLen+1, len(c.Next()))

			c.GoForward()
			require.Equal(t, before, c.Current(), "step %d: back then forward restores the view", step)
		case 2:
			total := len(c.Previous()) + len(c.Next())
			c.GoForward()
			require.Equal(t, total, len(c.Previous())+len(c.Next()), "history length is conserved")
		}
		require.True(t, c.Current().Valid())
	}
}

func TestParseView(t *testing.T) {
	for _, v := range AllViews {
		got, err := ParseView(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ParseView("  Partners ")
	require.NoError(t, err)
	assert.Equal(t, Partners, got)

	_, err = ParseView("settings")
	assert.Error(t, err)
	assert.Equal(t, "View(9)", View(9).String())
}
