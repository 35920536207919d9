package dock

import "sync"

// Notifier is an observable value container. Subscribers are invoked with
// the new value on every Set. It is safe for concurrent use, although the
// dock itself mutates state from a single event loop.
type Notifier[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewNotifier creates a Notifier holding the given initial value.
func NewNotifier[T any](initial T) *Notifier[T] {
	return &Notifier[T]{
		value: initial,
		subs:  map[int]func(T){},
	}
}

// Get returns the current value.
func (n *Notifier[T]) Get() T {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.value
}

// Set stores a new value and notifies all subscribers with it.
func (n *Notifier[T]) Set(v T) {
	n.mu.Lock()
	n.value = v
	fns := make([]func(T), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	// Listeners run outside the lock so they may call Get or Subscribe.
	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers a listener and returns a cancel function that removes
// it. Cancel is idempotent and must be called before the subscriber is torn
// down so no notification outlives its receiver.
func (n *Notifier[T]) Subscribe(fn func(T)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}
