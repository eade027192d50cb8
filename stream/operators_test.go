package stream

import (
	"strconv"
	"testing"
	"time"
)

func TestMap_TransformsEmissions(t *testing.T) {
	var got []string
	cancel := Map(Just(1, 2), strconv.Itoa).Subscribe(func(v string) {
		got = append(got, v)
	})
	defer cancel()

	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("expected mapped emissions, got %v", got)
	}
}

func TestMap_NilSourceNeverEmits(t *testing.T) {
	cancel := Map[int, int](nil, func(v int) int { return v }).Subscribe(func(int) {
		t.Errorf("nil source must not emit")
	})
	cancel()
}

func TestMerge_ForwardsAllSources(t *testing.T) {
	var got []int
	cancel := Merge(Just(1), Just(2), nil, Just(3)).Subscribe(func(v int) {
		got = append(got, v)
	})
	defer cancel()

	if len(got) != 3 {
		t.Fatalf("expected 3 merged emissions, got %v", got)
	}
}

func TestMerge_CancelCancelsAll(t *testing.T) {
	ch1 := make(chan int, 1)
	ch2 := make(chan int, 1)
	got := make(chan int, 8)
	cancel := Merge(FromChannel(ch1), FromChannel(ch2)).Subscribe(func(v int) { got <- v })

	ch1 <- 1
	recv(t, got)
	cancel()

	ch1 <- 2
	ch2 <- 3
	select {
	case v := <-got:
		t.Fatalf("expected no delivery after cancel, got %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}
