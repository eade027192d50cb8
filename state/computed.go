package state

// Computed derives a read-only value from other observable fields. It
// recomputes whenever a dependency notifies, making it another
// observable-capable field kind a Container can register.
type Computed[T any] struct {
	signal    *Signal[T]
	compute   func() T
	scheduler Scheduler
	subs      Subscriptions
}

// NewComputed creates a derived value from dependencies.
func NewComputed[T any](compute func() T, deps ...Subscribable) *Computed[T] {
	return NewComputedWithScheduler(nil, compute, deps...)
}

// NewComputedWithScheduler creates a derived value and routes recomputes
// through scheduler. A nil scheduler recomputes synchronously.
func NewComputedWithScheduler[T any](scheduler Scheduler, compute func() T, deps ...Subscribable) *Computed[T] {
	if compute == nil {
		compute = func() T {
			var zero T
			return zero
		}
	}
	c := &Computed[T]{
		signal:    NewSignal(compute()),
		compute:   compute,
		scheduler: scheduler,
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		c.subs.Subscribe(dep, c.enqueueRecompute)
	}
	return c
}

// SetEqualFunc configures the equality check used to suppress redundant
// updates.
func (c *Computed[T]) SetEqualFunc(fn EqualFunc[T]) {
	if c == nil {
		return
	}
	c.signal.SetEqualFunc(fn)
}

// Get returns the current computed value.
func (c *Computed[T]) Get() T {
	if c == nil {
		var zero T
		return zero
	}
	return c.signal.Get()
}

// Subscribe registers a listener for change notifications.
func (c *Computed[T]) Subscribe(fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.signal.Subscribe(fn)
}

// SubscribeWithScheduler registers a listener using a scheduler.
// If scheduler is nil, callbacks run synchronously.
func (c *Computed[T]) SubscribeWithScheduler(scheduler Scheduler, fn func()) func() {
	if c == nil {
		return func() {}
	}
	return c.signal.SubscribeWithScheduler(scheduler, fn)
}

// Stop unsubscribes from dependency updates.
func (c *Computed[T]) Stop() {
	if c == nil {
		return
	}
	c.subs.Clear()
}

func (c *Computed[T]) recompute() {
	if c == nil {
		return
	}
	c.signal.Set(c.compute())
}

func (c *Computed[T]) enqueueRecompute() {
	if c == nil {
		return
	}
	if c.scheduler == nil {
		c.recompute()
		return
	}
	c.scheduler.Schedule(c.recompute)
}
