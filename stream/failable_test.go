package stream

import (
	"errors"
	"testing"
)

func TestReplaceError_MapsFailureToFallback(t *testing.T) {
	src := FailableFunc[int](func(next func(int), fail func(error)) func() {
		next(1)
		fail(errors.New("boom"))
		return func() {}
	})

	var got []int
	cancel := ReplaceError(src, -1).Subscribe(func(v int) { got = append(got, v) })
	defer cancel()

	if len(got) != 2 || got[0] != 1 || got[1] != -1 {
		t.Fatalf("expected value then fallback, got %v", got)
	}
}

func TestReplaceError_DropsEmissionsAfterFailure(t *testing.T) {
	src := FailableFunc[int](func(next func(int), fail func(error)) func() {
		fail(errors.New("boom"))
		next(99)
		fail(errors.New("again"))
		return func() {}
	})

	var got []int
	cancel := ReplaceError(src, 0).Subscribe(func(v int) { got = append(got, v) })
	defer cancel()

	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected single fallback emission, got %v", got)
	}
}

func TestReplaceError_PassesThroughWithoutFailure(t *testing.T) {
	src := FailableFunc[string](func(next func(string), fail func(error)) func() {
		next("a")
		next("b")
		return func() {}
	})

	var got []string
	cancel := ReplaceError(src, "fallback").Subscribe(func(v string) { got = append(got, v) })
	defer cancel()

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected values unchanged, got %v", got)
	}
}

func TestFailableFunc_NilSafe(t *testing.T) {
	var f FailableFunc[int]
	cancel := f.Subscribe(func(int) {}, nil)
	cancel()
}
