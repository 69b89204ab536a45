// File: facade/facade.go
// Unified facade layer for the hioload-ffi library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Bridge struct, which aggregates the memory manager,
// event port and task executor behind a single facade. It wires components
// from immutable configuration and exposes methods to submit tasks, consume
// result messages, read memory statistics and shut the system down.

package facade

import (
	"time"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/dispatch"
	"github.com/momentics/hioload-ffi/pool"
)

// Config holds parameters immutable per run.
type Config struct {
	Pool            pool.Config   // Memory pool capacities per size class
	Threads         int           // Runtime workers: 0 = core count, 1 = single-threaded
	PortBuffer      int           // Capacity of the result message channel
	StrictFIFO      bool          // Use the dedicated worker-thread executor
	ShutdownTimeout time.Duration // Bound for graceful shutdown, 0 waits indefinitely
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Pool:            pool.NewConfig(),
		Threads:         0,
		PortBuffer:      256,
		StrictFIFO:      false,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Bridge is the main facade type.
type Bridge struct {
	cfg  *Config
	port *dispatch.ChanPort
	exec api.TaskExecutor
}

// New wires the global memory manager, an event port and the configured
// executor variant. With the runtime-pool variant the runtime is initialized
// asynchronously; its boolean init event arrives on Events first.
func New(cfg *Config, handler api.CommandHandler) *Bridge {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	pool.InitializeWithConfig(cfg.Pool)

	port := dispatch.NewChanPort(cfg.PortBuffer)
	var exec api.TaskExecutor
	if cfg.StrictFIFO {
		exec = dispatch.NewWorkerExecutor(port, handler)
	} else {
		re := dispatch.NewRuntimeExecutor(port, handler)
		re.InitRuntime(cfg.Threads)
		exec = re
	}
	return &Bridge{cfg: cfg, port: port, exec: exec}
}

// Submit schedules one command and returns its task id.
func (b *Bridge) Submit(commandType byte, data []byte, params []uint64) uint64 {
	return b.exec.SubmitTask(commandType, data, params)
}

// Events exposes the serialized result message stream.
func (b *Bridge) Events() <-chan []byte {
	return b.port.Events()
}

// Executor exposes the underlying task executor.
func (b *Bridge) Executor() api.TaskExecutor {
	return b.exec
}

// MemoryStats returns the global memory manager snapshot.
func (b *Bridge) MemoryStats() (api.MemoryStats, bool) {
	return pool.Stats()
}

// Shutdown stops the executor within the configured timeout and releases
// pooled memory. Returns false when the executor did not finish in time.
func (b *Bridge) Shutdown() bool {
	ok := b.exec.Shutdown(b.cfg.ShutdownTimeout)
	pool.Destroy()
	return ok
}
