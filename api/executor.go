// File: api/executor.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor contract for cross-runtime task dispatch.

package api

import "time"

// TaskExecutor accepts opaque task commands and reports exactly one binary
// result message per submitted task through its event port.
type TaskExecutor interface {
	// SubmitTask schedules one command and returns its task id.
	// Submission never blocks on command execution; if the executor cannot
	// schedule the command, it still emits one error-status message for the
	// returned id.
	SubmitTask(commandType byte, data []byte, params []uint64) uint64

	// Shutdown stops accepting work and waits up to timeout for in-flight
	// work to drain. A timeout <= 0 waits indefinitely. Returns false when
	// the timeout elapsed first; the worker then finishes in the background.
	Shutdown(timeout time.Duration) bool

	// IsRunning reports whether the executor accepts new tasks.
	IsRunning() bool
}

// EventPort carries serialized 32-byte task event messages back to the
// managed caller. Post must not block; it reports false when the message
// could not be delivered.
type EventPort interface {
	Post(msg []byte) bool
}
