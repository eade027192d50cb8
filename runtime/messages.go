// Package runtime provides the serialized event loop that gives cells and
// bindings their delivery affinity: all state mutation and render decisions
// happen on one goroutine, while sources and tasks produce from any other.
package runtime

// Message represents an event flowing into the loop.
// Messages come from schedulers, background tasks, or the embedder.
type Message interface {
	isMessage()
}

// QueueFlushMsg triggers a state queue flush in the loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without further work.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// StopMsg asks the loop to exit after the current pass.
type StopMsg struct{}

func (StopMsg) isMessage() {}
