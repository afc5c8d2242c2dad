package sceneedit

import "slices"

// listener is one registered callback.
type listener[E any] struct {
	id uint32
	fn func(E)
}

// remover is implemented by every Emitter so a Subscription can detach
// itself without knowing the event type.
type remover interface {
	remove(id uint32) bool
	has(id uint32) bool
}

// Emitter is an ordered list of callbacks. Emit calls them synchronously in
// registration order. The zero value is ready to use.
type Emitter[E any] struct {
	listeners []listener[E]
	nextID    uint32
}

// Subscription allows removing a registered callback. The zero value is a
// valid, already-removed subscription.
type Subscription struct {
	id    uint32
	owner remover
}

// Remove unregisters the callback. Calling it more than once is a no-op.
func (s Subscription) Remove() {
	if s.owner == nil {
		return
	}
	s.owner.remove(s.id)
}

// Active reports whether the callback is still registered.
func (s Subscription) Active() bool {
	return s.owner != nil && s.owner.has(s.id)
}

// Subscribe appends fn to the callback list.
func (e *Emitter[E]) Subscribe(fn func(E)) Subscription {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[E]{id: id, fn: fn})
	return Subscription{id: id, owner: e}
}

// Emit calls every registered callback with ev. Callbacks added or removed
// while Emit runs take effect from the next Emit.
func (e *Emitter[E]) Emit(ev E) {
	if len(e.listeners) == 0 {
		return
	}
	for _, l := range slices.Clone(e.listeners) {
		l.fn(ev)
	}
}

// Len returns the number of registered callbacks.
func (e *Emitter[E]) Len() int {
	return len(e.listeners)
}

// owns reports whether sub was issued by this emitter.
func (e *Emitter[E]) owns(sub Subscription) bool {
	o, ok := sub.owner.(*Emitter[E])
	return ok && o == e
}

func (e *Emitter[E]) has(id uint32) bool {
	for i := range e.listeners {
		if e.listeners[i].id == id {
			return true
		}
	}
	return false
}

// remove drops the callback with the given id, preserving order.
func (e *Emitter[E]) remove(id uint32) bool {
	for i := range e.listeners {
		if e.listeners[i].id == id {
			copy(e.listeners[i:], e.listeners[i+1:])
			e.listeners[len(e.listeners)-1] = listener[E]{}
			e.listeners = e.listeners[:len(e.listeners)-1]
			return true
		}
	}
	return false
}

// subscriptionSet collects subscriptions so an owner can detach all of them
// at once.
type subscriptionSet []Subscription

func (s *subscriptionSet) add(sub Subscription) {
	*s = append(*s, sub)
}

func (s *subscriptionSet) removeAll() {
	for _, sub := range *s {
		sub.Remove()
	}
	*s = (*s)[:0]
}
