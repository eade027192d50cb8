// Package stream provides upstream sources for feeding state cells:
// channel and timer adapters, small composition operators, and the
// boundary that converts failing producers into the non-failing Source
// contract cells require.
package stream

import (
	"sync"

	"github.com/macmee/assignable/state"
)

// Func adapts a subscribe function into a state.Source.
type Func[T any] func(next func(T)) (cancel func())

// Subscribe starts delivery using the wrapped function.
func (f Func[T]) Subscribe(next func(T)) func() {
	if f == nil || next == nil {
		return func() {}
	}
	cancel := f(next)
	if cancel == nil {
		return func() {}
	}
	return cancel
}

// Never returns a source that never emits. A cell fed by it keeps its
// initial value forever; this is what NewCell uses implicitly.
func Never[T any]() state.Source[T] {
	return Func[T](func(func(T)) func() {
		return func() {}
	})
}

// Just returns a source that emits the given values synchronously on
// subscribe, then completes.
func Just[T any](values ...T) state.Source[T] {
	return Func[T](func(next func(T)) func() {
		for _, v := range values {
			next(v)
		}
		return func() {}
	})
}

// FromChannel returns a source that emits every value received from ch
// until the channel closes or the subscription is cancelled. Each
// subscriber consumes from ch independently; for fan-out, subscribe once
// and feed a cell.
func FromChannel[T any](ch <-chan T) state.Source[T] {
	return Func[T](func(next func(T)) func() {
		done := make(chan struct{})
		go func() {
			for {
				select {
				case <-done:
					return
				case v, ok := <-ch:
					if !ok {
						return
					}
					select {
					case <-done:
						return
					default:
					}
					next(v)
				}
			}
		}()
		var once sync.Once
		return func() {
			once.Do(func() { close(done) })
		}
	})
}
