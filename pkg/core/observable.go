package core

import (
	"slices"
	"sync"
)

// Listenable is anything that can notify subscribers of a change.
type Listenable interface {
	AddListener(fn func()) func()
}

// Disposable is anything holding resources that must be released.
type Disposable interface {
	Dispose()
}

// Notifier is a minimal Listenable that fires its listeners on Notify.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers fn and returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Notify calls every registered listener in registration order.
func (n *Notifier) Notify() {
	for _, fn := range n.snapshot() {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

func (n *Notifier) snapshot() []func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, n.listeners[id])
	}
	return fns
}

// Observable holds a value and notifies listeners when it changes.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equal     func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an Observable that notifies on every Set.
func NewObservable[T any](initial T) *Observable[T] {
	return NewObservableWithEquality(initial, nil)
}

// NewObservableWithEquality creates an Observable that skips notification
// when equal reports the old and new values as the same.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		equal:     equal,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equal != nil && o.equal(o.value, value) {
		o.value = value
		o.mu.Unlock()
		return
	}
	o.value = value
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.listeners[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// AddListener registers fn and returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}
