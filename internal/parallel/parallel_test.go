package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversEveryPosition(t *testing.T) {
	cfg := DefaultConfig()

	n := 10000
	hits := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("position %d visited %d times, want 1", i, h)
		}
	}
}

func TestForSequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		counter++ // no atomics needed, single goroutine
	}, Sequential())

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
}

func TestForBelowChunkSizeStaysSequential(t *testing.T) {
	cfg := DefaultConfig()
	n := cfg.MinChunkSize - 1

	var counter int64
	For(n, func(_ int) {
		counter++ // safe: range below MinChunkSize runs on the caller
	}, cfg)

	if counter != int64(n) {
		t.Errorf("counter = %d, want %d", counter, n)
	}
}

func TestForZero(t *testing.T) {
	called := false
	For(0, func(_ int) { called = true }, DefaultConfig())
	if called {
		t.Error("For(0) invoked the body")
	}
}
