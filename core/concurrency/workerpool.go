// File: core/concurrency/workerpool.go
// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// WorkerPool dispatches tasks across worker goroutines, using lock-free
// local queues with a global channel fallback. The worker count is fixed at
// construction; Close drains queued tasks before workers exit.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// TaskFunc is one opaque unit of work.
type TaskFunc func()

// WorkerPool runs tasks on a fixed set of worker goroutines.
//
// numWorkers == 0 selects one worker per CPU core; numWorkers == 1 yields a
// single-threaded cooperative pool suitable for low-resource environments.
type WorkerPool struct {
	globalQueue chan TaskFunc
	localQueues []*LockFreeQueue[TaskFunc]
	closeCh     chan struct{}
	closed      atomic.Bool
	next        atomic.Uint64
	wg          sync.WaitGroup
}

// NewWorkerPool creates and starts a pool with the given number of workers.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	p := &WorkerPool{
		globalQueue: make(chan TaskFunc, numWorkers*4),
		localQueues: make([]*LockFreeQueue[TaskFunc], numWorkers),
		closeCh:     make(chan struct{}),
	}
	for i := 0; i < numWorkers; i++ {
		p.localQueues[i] = NewLockFreeQueue[TaskFunc](1024)
	}
	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	return p
}

// Submit enqueues a task. Returns ErrPoolClosed after Close.
func (p *WorkerPool) Submit(task TaskFunc) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	idx := int(p.next.Add(1)) % len(p.localQueues)
	if p.localQueues[idx].Enqueue(task) {
		return nil
	}
	select {
	case p.globalQueue <- task:
		return nil
	case <-p.closeCh:
		return ErrPoolClosed
	}
}

// NumWorkers returns the worker count.
func (p *WorkerPool) NumWorkers() int {
	return len(p.localQueues)
}

// Close stops accepting tasks and waits for workers to drain and exit.
// Subsequent calls are no-ops.
func (p *WorkerPool) Close() {
	if p.closed.CompareAndSwap(false, true) {
		close(p.closeCh)
		p.wg.Wait()
	}
}

func (p *WorkerPool) run(id int) {
	defer p.wg.Done()
	local := p.localQueues[id]
	for {
		if task, ok := local.Dequeue(); ok {
			p.safeExecute(task)
			continue
		}
		select {
		case task := <-p.globalQueue:
			p.safeExecute(task)
		case <-p.closeCh:
			p.drain(local)
			return
		default:
			select {
			case <-p.closeCh:
				p.drain(local)
				return
			case <-time.After(time.Millisecond):
			}
		}
	}
}

// drain empties the worker's local queue and the global queue so that every
// task submitted before Close still runs exactly once.
func (p *WorkerPool) drain(local *LockFreeQueue[TaskFunc]) {
	for {
		if task, ok := local.Dequeue(); ok {
			p.safeExecute(task)
			continue
		}
		select {
		case task := <-p.globalQueue:
			p.safeExecute(task)
		default:
			return
		}
	}
}

func (p *WorkerPool) safeExecute(task TaskFunc) {
	defer func() { _ = recover() }()
	task()
}
