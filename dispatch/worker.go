// File: dispatch/worker.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Strict-FIFO executor variant: one dedicated worker goroutine consumes an
// unbounded command queue, so commands execute one at a time in submission
// order. The worker's final act is posting the shutdown sentinel message.

package dispatch

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/core/protocol"
	"github.com/momentics/hioload-ffi/internal/logging"
)

// shutdownPollInterval is how often Shutdown re-checks worker completion
// while a timeout is pending.
const shutdownPollInterval = 10 * time.Millisecond

// WorkerExecutor schedules commands onto a single dedicated worker.
type WorkerExecutor struct {
	queue   *cmdQueue
	port    api.EventPort
	handler api.CommandHandler
	log     zerolog.Logger

	running atomic.Bool
	taskIDs atomic.Uint64 // last assigned id; first task gets 1
	done    chan struct{}
}

// NewWorkerExecutor starts the worker goroutine and returns a running
// executor.
func NewWorkerExecutor(port api.EventPort, handler api.CommandHandler) *WorkerExecutor {
	w := &WorkerExecutor{
		queue:   newCmdQueue(),
		port:    port,
		handler: handler,
		log:     logging.New("dispatch.worker"),
		done:    make(chan struct{}),
	}
	w.running.Store(true)
	go w.run()
	return w
}

// SubmitTask enqueues one command and returns its task id. The data and
// params slices are borrowed: they must stay valid until the task's result
// message has been emitted. When the command cannot be queued, one error
// message is emitted synchronously for the returned id.
func (w *WorkerExecutor) SubmitTask(commandType byte, data []byte, params []uint64) uint64 {
	taskID := w.taskIDs.Add(1)
	cmd := &api.TaskCommand{
		TaskID:      taskID,
		CommandType: commandType,
		Data:        data,
		Params:      params,
	}
	if !w.running.Load() || !w.queue.push(cmd) {
		postError(w.port, taskID, "worker not available")
	}
	return taskID
}

// IsRunning reports whether the executor accepts new tasks.
func (w *WorkerExecutor) IsRunning() bool {
	return w.running.Load()
}

// Shutdown stops the executor. The running flag flips first so submitters
// fail fast, then the sentinel command unblocks the worker. With a positive
// timeout the call polls for worker completion and returns false on expiry,
// leaving the worker to finish in the background; it is never force-killed.
func (w *WorkerExecutor) Shutdown(timeout time.Duration) bool {
	if w.running.CompareAndSwap(true, false) {
		w.queue.push(&api.TaskCommand{CommandType: ShutdownCommand})
		w.queue.close()
	}
	if timeout <= 0 {
		<-w.done
		return true
	}
	deadline := time.Now().Add(timeout)
	for {
		select {
		case <-w.done:
			return true
		case <-time.After(shutdownPollInterval):
			if time.Now().After(deadline) {
				w.log.Warn().Dur("timeout", timeout).Msg("shutdown timed out, worker left draining")
				return false
			}
		}
	}
}

func (w *WorkerExecutor) run() {
	w.log.Debug().Msg("worker started")
	var processed uint64

	for {
		cmd, ok := w.queue.pop()
		if !ok {
			break // queue closed and drained
		}
		if cmd.CommandType == ShutdownCommand {
			break
		}
		processed++
		res := safeHandle(w.handler, cmd)
		postMessage(w.port, resultMessage(cmd.TaskID, res))
	}

	postMessage(w.port, protocol.ShutdownMessage())
	close(w.done)
	w.log.Debug().Uint64("processed", processed).Msg("worker finished")
}

var _ api.TaskExecutor = (*WorkerExecutor)(nil)
