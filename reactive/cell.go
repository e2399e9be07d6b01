// Package reactive provides a mutable cell with change notification. It stands
// in for the per-component state hook of a UI framework: created with an
// initial value, read on every render, written by event handlers, and
// announcing writes to whatever needs to re-render.
//
// A Cell is owned by a single component and is not safe for concurrent
// writers. Version may be read from any goroutine.
package reactive

import (
	"slices"

	"go.uber.org/atomic"
)

// Cell holds one value of type T. Writes that do not change the value are
// dropped, so subscribers only hear about real transitions.
type Cell[T comparable] struct {
	value   T
	version *atomic.Uint64
	nextID  uint64
	subs    []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// New creates a Cell holding initial. Its version starts at zero.
func New[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value:   initial,
		version: atomic.NewUint64(0),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Version counts the writes that changed the value.
func (c *Cell[T]) Version() uint64 {
	return c.version.Load()
}

// Set stores v and notifies subscribers in subscription order. It reports
// whether the value changed. The new value is visible to Get before any
// subscriber runs.
func (c *Cell[T]) Set(v T) bool {
	if c.value == v {
		return false
	}

	c.value = v
	c.version.Inc()

	// Copy so subscribers may unsubscribe while being notified.
	for _, sub := range slices.Clone(c.subs) {
		sub.fn(v)
	}

	return true
}

// Update replaces the value with f(current).
func (c *Cell[T]) Update(f func(T) T) bool {
	return c.Set(f(c.value))
}

// Subscribe registers fn to be called after every change. Calling the
// returned function removes the subscription; calling it again is a no-op.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		c.subs = slices.DeleteFunc(c.subs, func(s subscriber[T]) bool {
			return s.id == id
		})
	}
}
