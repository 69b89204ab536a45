// File: dispatch/queue.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded FIFO command queue for the worker-thread executor: a growable
// ring buffer guarded by a mutex and condition variable. Submission stays
// cheap and never blocks on the consumer.

package dispatch

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ffi/api"
)

type cmdQueue struct {
	mu     sync.Mutex
	notify *sync.Cond
	buf    *queue.Queue
	closed bool
}

func newCmdQueue() *cmdQueue {
	q := &cmdQueue{buf: queue.New()}
	q.notify = sync.NewCond(&q.mu)
	return q
}

// push appends a command; returns false once the queue is closed.
func (q *cmdQueue) push(cmd *api.TaskCommand) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.buf.Add(cmd)
	q.mu.Unlock()
	q.notify.Signal()
	return true
}

// pop blocks until a command is available or the queue is closed and
// drained. ok is false only in the latter case.
func (q *cmdQueue) pop() (cmd *api.TaskCommand, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.buf.Length() == 0 {
		if q.closed {
			return nil, false
		}
		q.notify.Wait()
	}
	return q.buf.Remove().(*api.TaskCommand), true
}

// close rejects further pushes and wakes any blocked consumer. Commands
// already queued remain poppable.
func (q *cmdQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notify.Broadcast()
}
