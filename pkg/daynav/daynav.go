// Package daynav tracks the date currently shown by the interactive view.
package daynav

import (
	"github.com/DevinLeamy/Daila/pkg/timeutil"
)

// Cursor holds the viewed date. The viewed date is independent of the real
// current date and moves without bounds in either direction.
type Cursor struct {
	viewed timeutil.Date
}

// New returns a cursor positioned on today.
func New() *Cursor {
	return &Cursor{viewed: timeutil.Today()}
}

// NewAt returns a cursor positioned on the given date.
func NewAt(d timeutil.Date) *Cursor {
	return &Cursor{viewed: d}
}

// Viewed returns the current viewed date.
func (c *Cursor) Viewed() timeutil.Date {
	return c.viewed
}

// Next moves the viewed date one day forward and returns it.
func (c *Cursor) Next() timeutil.Date {
	c.viewed = c.viewed.Next()
	return c.viewed
}

// Previous moves the viewed date one day back and returns it.
func (c *Cursor) Previous() timeutil.Date {
	c.viewed = c.viewed.Previous()
	return c.viewed
}

// Today resets the viewed date to the current calendar date and returns it.
func (c *Cursor) Today() timeutil.Date {
	c.viewed = timeutil.Today()
	return c.viewed
}

// OnToday reports whether the viewed date is the real current date.
func (c *Cursor) OnToday() bool {
	return c.viewed == timeutil.Today()
}
