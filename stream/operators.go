package stream

import "github.com/macmee/assignable/state"

// Map returns a source that applies fn to every value emitted by src.
func Map[T, U any](src state.Source[T], fn func(T) U) state.Source[U] {
	return Func[U](func(next func(U)) func() {
		if src == nil || fn == nil {
			return func() {}
		}
		return src.Subscribe(func(v T) {
			next(fn(v))
		})
	})
}

// Merge returns a source that forwards emissions from every given source.
// No ordering is guaranteed across sources. Cancelling the merged
// subscription cancels all of them.
func Merge[T any](sources ...state.Source[T]) state.Source[T] {
	return Func[T](func(next func(T)) func() {
		var subs state.Subscriptions
		for _, src := range sources {
			if src == nil {
				continue
			}
			subs.Add(src.Subscribe(next))
		}
		return subs.Clear
	})
}
