package state

import "testing"

func TestComputed_RecomputesOnDependencyChange(t *testing.T) {
	a := NewSignal(2)
	b := NewSignal(3)
	sum := NewComputed(func() int { return a.Get() + b.Get() }, a, b)

	if sum.Get() != 5 {
		t.Fatalf("expected initial computed value 5, got %d", sum.Get())
	}

	calls := 0
	sum.Subscribe(func() { calls++ })

	a.Set(10)
	if sum.Get() != 13 {
		t.Fatalf("expected recomputed value 13, got %d", sum.Get())
	}
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
}

func TestComputed_Stop(t *testing.T) {
	a := NewSignal(1)
	double := NewComputed(func() int { return a.Get() * 2 }, a)

	double.Stop()
	a.Set(5)

	if double.Get() != 2 {
		t.Fatalf("expected value frozen after stop, got %d", double.Get())
	}
}

func TestComputed_WithScheduler(t *testing.T) {
	a := NewSignal(1)
	queue := NewQueue()
	double := NewComputedWithScheduler(queue, func() int { return a.Get() * 2 }, a)

	a.Set(3)
	if double.Get() != 2 {
		t.Fatalf("expected recompute deferred until flush, got %d", double.Get())
	}
	queue.Flush()
	if double.Get() != 6 {
		t.Fatalf("expected recomputed value 6 after flush, got %d", double.Get())
	}
}

func TestComputed_NilCompute(t *testing.T) {
	c := NewComputed[int](nil)
	if c.Get() != 0 {
		t.Fatalf("expected zero value for nil compute, got %d", c.Get())
	}
}
