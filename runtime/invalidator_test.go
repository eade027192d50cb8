package runtime

import "testing"

func TestInvalidator_CoalescesRequests(t *testing.T) {
	posted := 0
	inv := NewInvalidator(func(msg Message) bool {
		if _, ok := msg.(InvalidateMsg); !ok {
			t.Fatalf("expected InvalidateMsg, got %T", msg)
		}
		posted++
		return true
	})

	inv.Invalidate()
	inv.Invalidate()
	inv.Invalidate()

	if posted != 1 {
		t.Fatalf("expected coalesced invalidate, got %d posts", posted)
	}

	inv.resetPending()
	inv.Invalidate()
	if posted != 2 {
		t.Fatalf("expected fresh invalidate after reset, got %d posts", posted)
	}
}

func TestInvalidator_ScheduleRunsCallback(t *testing.T) {
	posted := 0
	inv := NewInvalidator(func(Message) bool {
		posted++
		return true
	})

	ran := false
	inv.Schedule(func() { ran = true })

	if !ran {
		t.Fatalf("expected callback to run inline")
	}
	if posted != 1 {
		t.Fatalf("expected invalidate after callback, got %d posts", posted)
	}
}

func TestInvalidator_FailedPostClearsPending(t *testing.T) {
	accept := false
	posted := 0
	inv := NewInvalidator(func(Message) bool {
		posted++
		return accept
	})

	inv.Invalidate()
	accept = true
	inv.Invalidate()

	if posted != 2 {
		t.Fatalf("expected retry after failed post, got %d", posted)
	}
}

func TestInvalidator_NilSafe(t *testing.T) {
	var inv *Invalidator
	inv.Invalidate()
	inv.Schedule(func() {})
	inv.resetPending()
}
