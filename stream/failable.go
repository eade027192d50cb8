package stream

import (
	"sync/atomic"

	"github.com/macmee/assignable/state"
)

// Failable produces values but may terminate with an error. Cells refuse
// this contract; pass a Failable through ReplaceError to map the failure
// to a fallback value first.
type Failable[T any] interface {
	Subscribe(next func(T), fail func(error)) (cancel func())
}

// FailableFunc adapts a subscribe function into a Failable.
type FailableFunc[T any] func(next func(T), fail func(error)) (cancel func())

// Subscribe starts delivery using the wrapped function.
func (f FailableFunc[T]) Subscribe(next func(T), fail func(error)) func() {
	if f == nil || next == nil {
		return func() {}
	}
	if fail == nil {
		fail = func(error) {}
	}
	cancel := f(next, fail)
	if cancel == nil {
		return func() {}
	}
	return cancel
}

// ReplaceError converts a failing producer into a non-failing source. A
// failure is replaced by one emission of fallback and ends the stream;
// values or errors arriving after that are dropped.
func ReplaceError[T any](src Failable[T], fallback T) state.Source[T] {
	return Func[T](func(next func(T)) func() {
		if src == nil {
			return func() {}
		}
		var failed atomic.Bool
		return src.Subscribe(
			func(v T) {
				if failed.Load() {
					return
				}
				next(v)
			},
			func(error) {
				if failed.CompareAndSwap(false, true) {
					next(fallback)
				}
			},
		)
	})
}
