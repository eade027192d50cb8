// Package state provides reactive cells and containers for binding
// asynchronous value streams into UI state.
package state

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func()) func()
	SubscribeWithScheduler(scheduler Scheduler, fn func()) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T) bool
	Update(fn func(T) T) bool
}

// Source produces a sequence of values over time. Sources never signal
// failure; a producer that can fail must be wrapped so the failure is
// replaced with a value before it reaches a Cell (see stream.ReplaceError).
//
// Emissions may originate on any goroutine. Calling the returned cancel
// function stops future deliveries; an emission already in flight when
// cancel is called may still complete.
type Source[T any] interface {
	Subscribe(next func(T)) (cancel func())
}
