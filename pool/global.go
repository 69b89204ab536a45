// File: pool/global.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide memory manager. Installed once with a write-once swap;
// repeated initialization is an idempotent success and the later
// configuration is ignored. Destroy releases pooled memory but keeps the
// installed manager usable, so no reinitialization is needed afterwards.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-ffi/api"
)

var global atomic.Pointer[Manager]

// Initialize installs the global manager with default configuration.
// Returns true when a manager is installed after the call, including when
// one was already present.
func Initialize() bool {
	return InitializeWithConfig(NewConfig())
}

// InitializeWithConfig installs the global manager with the given
// configuration. If a manager is already installed the call is a no-op that
// reports success; the new configuration is discarded.
func InitializeWithConfig(cfg Config) bool {
	if global.Load() != nil {
		return true
	}
	m := NewManager(cfg)
	return global.CompareAndSwap(nil, m) || global.Load() != nil
}

// Available reports whether the global manager is installed.
func Available() bool {
	return global.Load() != nil
}

// Destroy releases all pooled free blocks of the global manager.
// Returns false when the manager was never initialized. The manager handle
// itself remains installed and usable.
func Destroy() bool {
	m := global.Load()
	if m == nil {
		return false
	}
	m.Cleanup()
	return true
}

// Allocate serves a buffer from the global manager, auto-initializing with
// defaults on first use. If no manager can be installed the call degrades
// to a plain zeroed allocation.
func Allocate(size int) []byte {
	m := global.Load()
	if m == nil {
		Initialize()
		m = global.Load()
	}
	if m != nil {
		return m.Allocate(size)
	}
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// Deallocate returns a buffer to the global manager. Without an installed
// manager the buffer is simply left to the garbage collector.
func Deallocate(buf []byte, size int) {
	if m := global.Load(); m != nil {
		m.Deallocate(buf, size)
	}
}

// Stats returns the global manager's aggregate snapshot.
// ok is false when the manager is not initialized.
func Stats() (stats api.MemoryStats, ok bool) {
	m := global.Load()
	if m == nil {
		return api.MemoryStats{}, false
	}
	return m.Stats(), true
}
