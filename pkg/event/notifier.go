// Package event implements the change notification used by mutable chart
// components. Markers, overlays, and titles embed a Notifier and fire it
// whenever an observable attribute changes.
//
// Delivery is synchronous and in registration order, on the caller's stack.
// There is no locking: components are owned by the single thread driving the
// host rendering loop.
package event

// Handle identifies a registered listener so it can be removed later.
type Handle int

type listener struct {
	handle Handle
	fn     func()
}

// Notifier maintains an ordered list of change listeners.
// The zero value is ready to use.
type Notifier struct {
	listeners []listener
	next      Handle
}

// Subscribe registers fn to be invoked on every notification and returns a
// handle for later removal. A nil fn is not permitted.
func (n *Notifier) Subscribe(fn func()) Handle {
	if fn == nil {
		panic("event: nil listener not permitted")
	}
	n.next++
	n.listeners = append(n.listeners, listener{handle: n.next, fn: fn})
	return n.next
}

// Unsubscribe removes the listener registered under h. Unknown handles are
// ignored.
func (n *Notifier) Unsubscribe(h Handle) {
	for i, l := range n.listeners {
		if l.handle == h {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Notify invokes every registered listener once, in registration order.
// Listeners run synchronously on the caller's stack.
func (n *Notifier) Notify() {
	// Snapshot so a listener that subscribes or unsubscribes during delivery
	// does not perturb this round.
	snapshot := make([]listener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		l.fn()
	}
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
