package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_RunsTasks(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		if err := p.Submit(func() {
			counter.Add(1)
			wg.Done()
		}); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timeout: executed %d/1000 tasks", counter.Load())
	}
	if counter.Load() != 1000 {
		t.Fatalf("executed %d tasks, want 1000", counter.Load())
	}
}

func TestWorkerPool_SingleWorkerSerial(t *testing.T) {
	p := NewWorkerPool(1)
	defer p.Close()

	if p.NumWorkers() != 1 {
		t.Fatalf("NumWorkers = %d, want 1", p.NumWorkers())
	}

	var inFlight atomic.Int32
	var overlapped atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		p.Submit(func() {
			if inFlight.Add(1) > 1 {
				overlapped.Store(true)
			}
			time.Sleep(time.Microsecond)
			inFlight.Add(-1)
			wg.Done()
		})
	}
	wg.Wait()
	if overlapped.Load() {
		t.Fatal("single-worker pool ran tasks concurrently")
	}
}

func TestWorkerPool_CloseDrainsAndRejects(t *testing.T) {
	p := NewWorkerPool(2)

	var counter atomic.Int64
	for i := 0; i < 200; i++ {
		p.Submit(func() { counter.Add(1) })
	}
	p.Close()
	if counter.Load() != 200 {
		t.Fatalf("drained %d tasks, want 200", counter.Load())
	}
	if err := p.Submit(func() {}); err != ErrPoolClosed {
		t.Fatalf("Submit after Close = %v, want ErrPoolClosed", err)
	}
	// Second Close is a no-op.
	p.Close()
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()
	if p.NumWorkers() < 1 {
		t.Fatalf("NumWorkers = %d, want >= 1", p.NumWorkers())
	}
}
