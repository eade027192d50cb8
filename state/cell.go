package state

import (
	"sync"
	"sync/atomic"
)

// Cell holds a value whose only writer is an upstream Source. Consumers can
// read the current value and subscribe to change notifications, but the type
// exposes no setter: a caller holding a Cell cannot corrupt state owned by
// the asynchronous pipeline feeding it.
//
// A cell subscribes to its source at construction and mirrors the most
// recent emission until Close. Every emission fires one notification; there
// is no replay and, unless SetEqualFunc is used, no deduplication.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	equal  EqualFunc[T]
	notif  notifier
	cancel func()
	closed atomic.Bool
}

// NewCell creates a cell with no upstream source. Its value never changes
// and it never notifies. Useful when the real source depends on sibling
// state that does not exist yet; build the wired cell with NewCellFrom once
// the siblings are available.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// NewCellFrom creates a cell fed by src. The subscription starts before
// NewCellFrom returns, so a source that emits synchronously is reflected in
// the returned cell. Emissions are applied on whatever goroutine the source
// delivers on; use NewCellFromWithScheduler to redirect delivery.
func NewCellFrom[T any](initial T, src Source[T]) *Cell[T] {
	return NewCellFromWithScheduler(nil, initial, src)
}

// NewCellFromWithScheduler creates a cell fed by src, routing every delivery
// through scheduler before the value is replaced and subscribers notified.
// Pass the event loop's state scheduler to keep all mutation and
// notification on the loop goroutine. A nil scheduler applies emissions
// synchronously on the source's goroutine.
func NewCellFromWithScheduler[T any](scheduler Scheduler, initial T, src Source[T]) *Cell[T] {
	c := &Cell[T]{value: initial}
	if src == nil {
		return c
	}
	c.cancel = src.Subscribe(func(v T) {
		if scheduler == nil {
			c.apply(v)
			return
		}
		scheduler.Schedule(func() { c.apply(v) })
	})
	return c
}

// SetEqualFunc configures the equality check used to suppress redundant
// updates. By default every emission notifies, even when the new value
// equals the old one.
func (c *Cell[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.equal = fn
	c.mu.Unlock()
}

// Get returns the current value. After Close it keeps returning the last
// value applied before the cell was closed.
func (c *Cell[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	c.mu.Lock()
	value := c.value
	c.mu.Unlock()
	return value
}

// Subscribe registers a listener for change notifications. The stream is
// live: only changes after the call are delivered.
func (c *Cell[T]) Subscribe(fn func()) func() {
	return c.SubscribeWithScheduler(nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (c *Cell[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil || fn == nil {
		return func() {}
	}
	return c.notif.add(scheduler, fn)
}

// Close cancels the upstream subscription. Late emissions are dropped
// silently, the value freezes, and no further notifications fire. An
// emission already being applied when Close is called may still complete.
// Close is idempotent.
func (c *Cell[T]) Close() {
	if c == nil {
		return
	}
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Cell[T]) apply(v T) {
	if c.closed.Load() {
		return
	}
	c.mu.Lock()
	if c.equal != nil && c.equal(c.value, v) {
		c.mu.Unlock()
		return
	}
	c.value = v
	c.mu.Unlock()

	c.notif.emit()
}
