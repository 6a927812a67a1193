package threadteam

import (
	"sync/atomic"
	"testing"
)

func TestRunCoversAllIndices(t *testing.T) {
	const n = 997 // prime, to exercise uneven chunking
	var seen [n]int32

	Run(n, func(worker, start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want exactly 1", i, v)
		}
	}
}

func TestRunZero(t *testing.T) {
	called := false
	Run(0, func(worker, start, end int) { called = true })
	if called {
		t.Fatal("Run(0, ...) must not invoke fn")
	}
}

func TestRunFewerUnitsThanWorkers(t *testing.T) {
	var count int32
	Run(1, func(worker, start, end int) {
		atomic.AddInt32(&count, 1)
	})
	if count != 1 {
		t.Fatalf("expected exactly one worker invocation, got %d", count)
	}
}

func TestSizeAtLeastOne(t *testing.T) {
	if Size() < 1 {
		t.Fatal("Size() must be at least 1")
	}
}
