package state

import "sync/atomic"

// Container aggregates the change notifications of several observable
// fields into one unified stream. A view model holding a handful of
// independently updating cells registers them here and whatever observes
// the container sees a single "something changed" signal.
//
// Registration happens exactly once, at construction. Fields created or
// swapped in afterwards are never wired; this mirrors deliberate one-time
// discovery so bookkeeping fields can be kept out of observation simply by
// not registering them. Every field notification is forwarded as exactly
// one unified notification; near-simultaneous notifications from different
// fields are not coalesced.
type Container struct {
	notif  notifier
	subs   Subscriptions
	closed atomic.Bool
}

// NewContainer wires the given fields into a unified notification stream.
// Nil entries are skipped. A container with no fields is legal; its stream
// never fires. Typical construction builds the fields first so they can
// reference each other, then registers them all in one call:
//
//	name := state.NewCellFrom("", nameSource)
//	count := state.NewSignal(0)
//	model := state.NewContainer(name, count)
func NewContainer(fields ...Subscribable) *Container {
	c := &Container{}
	for _, field := range fields {
		if field == nil {
			continue
		}
		c.subs.Subscribe(field, c.forward)
	}
	return c
}

// Subscribe registers a listener on the unified stream.
func (c *Container) Subscribe(fn func()) func() {
	return c.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener on the unified stream using a
// scheduler. If scheduler is nil, callbacks run synchronously.
func (c *Container) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil || fn == nil {
		return func() {}
	}
	return c.notif.add(scheduler, fn)
}

// Close releases every field subscription. Fields keep working on their
// own; the container just stops forwarding. Close is idempotent.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.subs.Clear()
}

func (c *Container) forward() {
	if c == nil || c.closed.Load() {
		return
	}
	c.notif.emit()
}
