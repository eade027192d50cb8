package stream

import (
	"sync"
	"time"

	"github.com/macmee/assignable/state"
)

// Tick returns a source emitting the current time on a fixed interval
// until cancelled. A non-positive interval never emits.
func Tick(interval time.Duration) state.Source[time.Time] {
	return Func[time.Time](func(next func(time.Time)) func() {
		if interval <= 0 {
			return func() {}
		}
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case now := <-ticker.C:
					next(now)
				}
			}
		}()
		var once sync.Once
		return func() {
			once.Do(func() { close(done) })
		}
	})
}

// After returns a source that emits value once after delay, then
// completes. A non-positive delay emits synchronously on subscribe.
func After[T any](delay time.Duration, value T) state.Source[T] {
	return Func[T](func(next func(T)) func() {
		if delay <= 0 {
			next(value)
			return func() {}
		}
		done := make(chan struct{})
		go func() {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-done:
			case <-timer.C:
				next(value)
			}
		}()
		var once sync.Once
		return func() {
			once.Do(func() { close(done) })
		}
	})
}
