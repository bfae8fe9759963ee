// Package reactive provides observable state cells and derived values that
// recompute synchronously when their dependencies change.
package reactive

import (
	"sort"
	"sync"
)

// Source is anything a Computed can depend on.
type Source interface {
	// Subscribe registers fn to run after every change and returns a function
	// that removes the registration.
	Subscribe(fn func()) (unsubscribe func())
}

type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (l *listeners) add(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

// snapshot returns listeners in registration order.
func (l *listeners) snapshot() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	keys := make([]int, 0, len(l.fns))
	for k := range l.fns {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	fns := make([]func(), 0, len(keys))
	for _, k := range keys {
		fns = append(fns, l.fns[k])
	}
	return fns
}

func (l *listeners) notify() {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Cell is a mutable named value.
type Cell[T any] struct {
	name      string
	mu        sync.RWMutex
	value     T
	listeners listeners
}

// NewCell creates a cell holding initial.
func NewCell[T any](name string, initial T) *Cell[T] {
	return &Cell[T]{name: name, value: initial}
}

// Name returns the cell's name.
func (c *Cell[T]) Name() string {
	return c.name
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.listeners.notify()
}

// Update applies fn to the current value atomically and notifies subscribers.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	c.value = fn(c.value)
	c.mu.Unlock()
	c.listeners.notify()
}

// Subscribe implements Source.
func (c *Cell[T]) Subscribe(fn func()) func() {
	return c.listeners.add(fn)
}

// Watch calls fn with the new value after every change.
func (c *Cell[T]) Watch(fn func(T)) func() {
	return c.Subscribe(func() { fn(c.Get()) })
}

// Computed is a value derived from one or more sources.
type Computed[T any] struct {
	derive    func() T
	mu        sync.RWMutex
	value     T
	listeners listeners
	stop      []func()
}

// NewComputed evaluates derive immediately and again whenever any dependency changes.
func NewComputed[T any](derive func() T, deps ...Source) *Computed[T] {
	c := &Computed[T]{derive: derive, value: derive()}
	for _, dep := range deps {
		c.stop = append(c.stop, dep.Subscribe(c.recompute))
	}
	return c
}

func (c *Computed[T]) recompute() {
	v := c.derive()
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	c.listeners.notify()
}

// Get returns the most recently derived value.
func (c *Computed[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Subscribe implements Source.
func (c *Computed[T]) Subscribe(fn func()) func() {
	return c.listeners.add(fn)
}

// Watch calls fn with the new value after every recomputation.
func (c *Computed[T]) Watch(fn func(T)) func() {
	return c.Subscribe(func() { fn(c.Get()) })
}

// Close detaches the computation from its dependencies.
func (c *Computed[T]) Close() {
	for _, stop := range c.stop {
		stop()
	}
	c.stop = nil
}
