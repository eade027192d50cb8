package state

import "testing"

func TestQueue_FlushRunsInOrder(t *testing.T) {
	queue := NewQueue()
	var order []int
	queue.Schedule(func() { order = append(order, 1) })
	queue.Schedule(func() { order = append(order, 2) })

	if queue.Len() != 2 {
		t.Fatalf("expected 2 pending callbacks, got %d", queue.Len())
	}
	if flushed := queue.Flush(); flushed != 2 {
		t.Fatalf("expected 2 callbacks flushed, got %d", flushed)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected in-order flush, got %v", order)
	}
}

func TestQueue_ScheduleDuringFlushDefersToNextFlush(t *testing.T) {
	queue := NewQueue()
	calls := 0
	queue.Schedule(func() {
		calls++
		queue.Schedule(func() { calls++ })
	})

	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback in first flush, got %d", flushed)
	}
	if calls != 1 {
		t.Fatalf("expected nested callback deferred, got %d calls", calls)
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback in second flush, got %d", flushed)
	}
	if calls != 2 {
		t.Fatalf("expected nested callback after second flush, got %d", calls)
	}
}

func TestDirectScheduler_RunsInline(t *testing.T) {
	ran := false
	DirectScheduler.Schedule(func() { ran = true })
	if !ran {
		t.Fatalf("expected direct scheduler to run inline")
	}
}

func TestSchedulerFunc_NilSafe(t *testing.T) {
	var f SchedulerFunc
	f.Schedule(func() { t.Fatalf("nil scheduler func must not dispatch") })

	calls := 0
	wrapped := SchedulerFunc(func(fn func()) { fn() })
	wrapped.Schedule(nil)
	wrapped.Schedule(func() { calls++ })
	if calls != 1 {
		t.Fatalf("expected 1 dispatch, got %d", calls)
	}
}
