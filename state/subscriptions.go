package state

import "sync"

// Subscriptions tracks unsubscribe callbacks so an owner can release them
// all at once when it is destroyed. The zero value is ready to use.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Subscribe registers a listener and tracks the unsubscribe.
func (s *Subscriptions) Subscribe(sub Subscribable, fn func()) {
	s.SubscribeWithScheduler(sub, nil, fn)
}

// SubscribeWithScheduler registers a listener using a scheduler and tracks
// the unsubscribe. Falls back to a plain Subscribe when sub does not
// support scheduled delivery.
func (s *Subscriptions) SubscribeWithScheduler(sub Subscribable, scheduler Scheduler, fn func()) {
	if s == nil || sub == nil || fn == nil {
		return
	}
	var unsub func()
	if scheduler == nil {
		unsub = sub.Subscribe(fn)
	} else if sched, ok := sub.(interface {
		SubscribeWithScheduler(Scheduler, func()) func()
	}); ok {
		unsub = sched.SubscribeWithScheduler(scheduler, fn)
	} else {
		unsub = sub.Subscribe(fn)
	}
	s.Add(unsub)
}

// Clear unsubscribes all tracked callbacks.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		if unsub != nil {
			unsub()
		}
	}
}
