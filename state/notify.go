package state

import "sync"

type listener struct {
	fn        func()
	scheduler Scheduler
}

// notifier is the shared fan-out core behind Signal, Cell, and Container.
// It holds a set of listeners and dispatches one callback per emit, either
// synchronously or through each listener's scheduler.
type notifier struct {
	mu        sync.Mutex
	listeners map[int]listener
	next      int
}

func (n *notifier) add(scheduler Scheduler, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[int]listener)
	}
	id := n.next
	n.next++
	n.listeners[id] = listener{fn: fn, scheduler: scheduler}
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

func (n *notifier) emit() {
	n.mu.Lock()
	if len(n.listeners) == 0 {
		n.mu.Unlock()
		return
	}
	snapshot := make([]listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		snapshot = append(snapshot, l)
	}
	n.mu.Unlock()

	for _, l := range snapshot {
		if l.fn == nil {
			continue
		}
		if l.scheduler == nil {
			l.fn()
			continue
		}
		l.scheduler.Schedule(l.fn)
	}
}
