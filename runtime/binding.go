package runtime

import "github.com/macmee/assignable/state"

// Binding keeps a set of observable fields wired to the loop's render
// pass. Close releases the wiring; the fields themselves keep working.
type Binding struct {
	subs state.Subscriptions
}

// Bind subscribes each field so its change notifications request a render
// pass. Nil fields are skipped. Works with any Subscribable: cells,
// signals, computed values, or whole containers.
func (l *Loop) Bind(fields ...state.Subscribable) *Binding {
	b := &Binding{}
	if l == nil {
		return b
	}
	for _, field := range fields {
		if field == nil {
			continue
		}
		b.subs.Subscribe(field, l.Invalidate)
	}
	return b
}

// Close releases every field subscription. Idempotent.
func (b *Binding) Close() {
	if b == nil {
		return
	}
	b.subs.Clear()
}
