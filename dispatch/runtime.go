// File: dispatch/runtime.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RuntimeManager owns one task runtime instance. The worker count is a
// construction-time choice: 0 selects one worker per core, 1 yields a
// single-threaded cooperative runtime for low-resource environments.

package dispatch

import (
	"github.com/momentics/hioload-ffi/core/concurrency"
)

// RuntimeManager wraps a worker pool shared by an executor and the tasks it
// spawns. The handle is shared by pointer; it is torn down once by Close.
type RuntimeManager struct {
	pool *concurrency.WorkerPool
}

// NewRuntimeManager builds a runtime with the given worker count.
func NewRuntimeManager(threads int) *RuntimeManager {
	return &RuntimeManager{pool: concurrency.NewWorkerPool(threads)}
}

// Spawn schedules one unit of work on the runtime.
func (m *RuntimeManager) Spawn(task func()) error {
	return m.pool.Submit(task)
}

// Workers reports the runtime's worker count.
func (m *RuntimeManager) Workers() int {
	return m.pool.NumWorkers()
}

// Close stops the runtime, draining queued work first. Idempotent.
func (m *RuntimeManager) Close() {
	m.pool.Close()
}
