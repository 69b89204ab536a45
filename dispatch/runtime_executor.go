// File: dispatch/runtime_executor.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime-pool executor variant: commands run as units of work on a shared
// multi-worker runtime. There is no cross-task ordering guarantee, but each
// task still yields exactly one result message after its handler completes.
//
// The runtime handle is installed through a write-once cell. Runtime
// construction happens on a separate goroutine so a slow start never blocks
// the caller's thread; completion is reported as a boolean event.

package dispatch

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/core/protocol"
	"github.com/momentics/hioload-ffi/internal/logging"
)

// RuntimeExecutor schedules commands onto a RuntimeManager.
type RuntimeExecutor struct {
	runtime atomic.Pointer[RuntimeManager] // write-once install
	port    api.EventPort
	handler api.CommandHandler
	log     zerolog.Logger

	running  atomic.Bool
	stopping atomic.Bool
	taskIDs  atomic.Uint64
	done     chan struct{}
}

// NewRuntimeExecutor returns an executor without a backing runtime.
// Tasks submitted before InitRuntime completes are answered with an
// error-status message.
func NewRuntimeExecutor(port api.EventPort, handler api.CommandHandler) *RuntimeExecutor {
	return &RuntimeExecutor{
		port:    port,
		handler: handler,
		log:     logging.New("dispatch.runtime"),
		done:    make(chan struct{}),
	}
}

// InitRuntime constructs the backing runtime on a dedicated goroutine and
// reports completion as a boolean event under the returned task id. A second
// call is a silent no-op: the existing runtime stays installed and the event
// still reports that a runtime is available.
func (r *RuntimeExecutor) InitRuntime(threads int) uint64 {
	taskID := r.taskIDs.Add(1)
	go func() {
		m := NewRuntimeManager(threads)
		if !r.runtime.CompareAndSwap(nil, m) {
			m.Close()
		}
		r.running.Store(true)
		postMessage(r.port, protocol.BoolData(taskID, true))
	}()
	return taskID
}

// SubmitTask schedules one command on the runtime and returns its task id.
// Without an installed runtime the error message is emitted synchronously,
// so the caller can rely on one message per task id even in this degraded
// state.
func (r *RuntimeExecutor) SubmitTask(commandType byte, data []byte, params []uint64) uint64 {
	taskID := r.taskIDs.Add(1)
	m := r.runtime.Load()
	if m == nil {
		postError(r.port, taskID, "runtime not initialized")
		return taskID
	}
	if !r.running.Load() {
		postError(r.port, taskID, "executor is shut down")
		return taskID
	}
	cmd := &api.TaskCommand{
		TaskID:      taskID,
		CommandType: commandType,
		Data:        data,
		Params:      params,
	}
	err := m.Spawn(func() {
		res := safeHandle(r.handler, cmd)
		postMessage(r.port, resultMessage(cmd.TaskID, res))
	})
	if err != nil {
		postError(r.port, taskID, "runtime not available: "+err.Error())
	}
	return taskID
}

// Runtime returns the installed runtime manager, or nil before InitRuntime
// has completed.
func (r *RuntimeExecutor) Runtime() *RuntimeManager {
	return r.runtime.Load()
}

// IsRunning reports whether the executor accepts new tasks.
func (r *RuntimeExecutor) IsRunning() bool {
	return r.running.Load()
}

// Shutdown stops accepting work, closes the runtime (in-flight and queued
// tasks drain first) and posts the final worker-shutdown message. With a
// positive timeout the call polls for completion and returns false on
// expiry; teardown continues in the background.
func (r *RuntimeExecutor) Shutdown(timeout time.Duration) bool {
	if r.stopping.CompareAndSwap(false, true) {
		r.running.Store(false)
		go func() {
			if m := r.runtime.Load(); m != nil {
				m.Close()
			}
			postMessage(r.port, protocol.ShutdownMessage())
			close(r.done)
		}()
	}
	if timeout <= 0 {
		<-r.done
		return true
	}
	deadline := time.Now().Add(timeout)
	for {
		select {
		case <-r.done:
			return true
		case <-time.After(shutdownPollInterval):
			if time.Now().After(deadline) {
				r.log.Warn().Dur("timeout", timeout).Msg("shutdown timed out, teardown continues")
				return false
			}
		}
	}
}

var _ api.TaskExecutor = (*RuntimeExecutor)(nil)
