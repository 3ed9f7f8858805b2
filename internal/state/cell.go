// Package state provides a single-owner mutable cell that publishes every
// change to its subscribers.
//
// A Cell starts unseeded. Seed initializes it once; later seeds are ignored.
// Set and Update replace the value and synchronously notify subscribers in
// the order they subscribed. Subscribers run outside the cell's lock, so they
// may read the cell or unsubscribe themselves.
package state

import (
	"sort"
	"sync"
)

// Cell holds a value of type T and notifies subscribers when it changes.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	seeded  bool
	version uint64
	nextID  int
	subs    map[int]func(T)
}

// NewCell creates an unseeded cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{subs: make(map[int]func(T))}
}

// Seed initializes the cell with v if it has never been seeded or set.
// It reports whether v was stored. A successful seed notifies subscribers.
func (c *Cell[T]) Seed(v T) bool {
	c.mu.Lock()
	if c.seeded {
		c.mu.Unlock()
		return false
	}
	c.value = v
	c.seeded = true
	c.version++
	subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, v)
	return true
}

// Seeded reports whether the cell holds a value.
func (c *Cell[T]) Seeded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seeded
}

// Get returns the current value, or the zero value when unseeded.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Version returns the number of changes published so far.
func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.seeded = true
	c.version++
	subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, v)
}

// Update replaces the value with fn(current) and notifies subscribers.
// fn runs under the cell's lock and must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	v := fn(c.value)
	c.value = v
	c.seeded = true
	c.version++
	subs := c.snapshotLocked()
	c.mu.Unlock()

	notify(subs, v)
}

// Subscribe registers fn to be called with the new value after every change.
// The returned function removes the subscription and is safe to call twice.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Subscribers returns the number of active subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// snapshotLocked returns subscribers in subscription order. Must be called with mu held.
func (c *Cell[T]) snapshotLocked() []func(T) {
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	subs := make([]func(T), len(ids))
	for i, id := range ids {
		subs[i] = c.subs[id]
	}
	return subs
}

func notify[T any](subs []func(T), v T) {
	for _, fn := range subs {
		fn(v)
	}
}
