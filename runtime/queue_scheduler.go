package runtime

import (
	"sync/atomic"

	"github.com/macmee/assignable/state"
)

// QueueScheduler enqueues callbacks and wakes the loop to flush them.
// Handing it to NewCellFromWithScheduler is what moves upstream deliveries
// onto the loop goroutine.
type QueueScheduler struct {
	queue   *state.Queue
	post    func(Message) bool
	pending atomic.Bool
}

// NewQueueScheduler wires a queue to a post function.
func NewQueueScheduler(queue *state.Queue, post func(Message) bool) *QueueScheduler {
	if queue == nil {
		queue = state.NewQueue()
	}
	return &QueueScheduler{
		queue: queue,
		post:  post,
	}
}

// Schedule enqueues the callback and posts a flush wake-up. Only one flush
// message is in flight at a time; the loop resets the flag when it flushes.
func (s *QueueScheduler) Schedule(fn func()) {
	if s == nil || s.queue == nil || fn == nil {
		return
	}
	s.queue.Schedule(fn)
	if s.post == nil {
		return
	}
	if s.pending.CompareAndSwap(false, true) {
		if !s.post(QueueFlushMsg{}) {
			s.pending.Store(false)
		}
	}
}

func (s *QueueScheduler) resetPending() {
	if s == nil {
		return
	}
	s.pending.Store(false)
}
