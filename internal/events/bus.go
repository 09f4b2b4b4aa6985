// Package events provides a small listener registry with explicit
// attach/detach pairing. Every Subscribe returns the only function that can
// remove that listener, and Len exposes the live listener count so leaks
// across open/close cycles show up in tests.
package events

// Handler receives an event. The return value is only meaningful for
// Publish, where true stops propagation.
type Handler[E any] func(E) bool

type entry[E any] struct {
	id uint64
	fn Handler[E]
}

// Bus is a single-threaded listener list. It is meant to be driven from the
// bubbletea Update loop and is not safe for concurrent use.
type Bus[E any] struct {
	entries []entry[E]
	nextID  uint64
}

// Subscribe attaches fn and returns its detach function. Calling the detach
// function more than once is a no-op.
func (b *Bus[E]) Subscribe(fn Handler[E]) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.entries = append(b.entries, entry[E]{id: id, fn: fn})

	detached := false
	return func() {
		if detached {
			return
		}
		detached = true
		b.remove(id)
	}
}

func (b *Bus[E]) remove(id uint64) {
	for i, e := range b.entries {
		if e.id == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Publish offers the event to listeners, newest first, until one of them
// returns true. It reports whether the event was handled.
func (b *Bus[E]) Publish(ev E) bool {
	snapshot := append([]entry[E](nil), b.entries...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].fn(ev) {
			return true
		}
	}
	return false
}

// Broadcast delivers the event to every listener in subscription order.
func (b *Bus[E]) Broadcast(ev E) {
	snapshot := append([]entry[E](nil), b.entries...)
	for _, e := range snapshot {
		e.fn(ev)
	}
}

// Len returns the number of attached listeners.
func (b *Bus[E]) Len() int {
	return len(b.entries)
}
