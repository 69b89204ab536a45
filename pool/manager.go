// File: pool/manager.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Manager routes allocations across the optional per-class pools and keeps
// the pool-independent counters. All state is atomic or lock-free; the
// manager is safe for concurrent use from any goroutine without external
// locking.

package pool

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/internal/logging"
)

// Manager owns one optional pool per size class plus aggregate counters.
type Manager struct {
	pools [numClasses]*classPool
	cfg   Config
	log   zerolog.Logger

	directAllocs   atomic.Uint64
	directDeallocs atomic.Uint64
	totalBytes     atomic.Uint64
	requests       atomic.Uint64
}

// ManagerOption adjusts Manager construction.
type ManagerOption func(*managerOptions)

type managerOptions struct {
	log     *zerolog.Logger
	factory blockFactory
}

// WithLogger overrides the manager's logger.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(o *managerOptions) { o.log = &log }
}

// withBlockFactory overrides block creation; used by tests to model
// system-allocation failure.
func withBlockFactory(f blockFactory) ManagerOption {
	return func(o *managerOptions) { o.factory = f }
}

// NewManager builds a manager from an immutable configuration.
func NewManager(cfg Config, opts ...ManagerOption) *Manager {
	var o managerOptions
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.New("pool")
	if o.log != nil {
		log = *o.log
	}

	m := &Manager{cfg: cfg, log: log}
	for i, class := range blockSizes {
		if capacity := cfg.capacity(i); capacity > 0 {
			m.pools[i] = newClassPool(class, capacity, o.factory, log)
		}
	}
	return m
}

// Allocate returns a zeroed buffer of length size, or nil for non-positive
// sizes. Pool failure at any tier degrades to a direct system allocation.
func (m *Manager) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	m.requests.Add(1)

	if class, ok := BlockSizeFor(size); ok {
		if p := m.pools[class.index()]; p != nil {
			if buf := p.allocate(); buf != nil {
				m.totalBytes.Add(uint64(class))
				return buf[:size]
			}
		}
	}

	buf := make([]byte, size)
	m.directAllocs.Add(1)
	m.totalBytes.Add(uint64(size))
	return buf
}

// Deallocate returns a buffer to circulation. The caller must supply the
// originally requested size; it selects the pool the block is offered to.
// A nil buffer is a no-op.
func (m *Manager) Deallocate(buf []byte, size int) {
	if buf == nil {
		return
	}
	if class, ok := BlockSizeFor(size); ok {
		if p := m.pools[class.index()]; p != nil && p.tryDeallocate(buf) {
			return
		}
	}
	// No pool for the class or the pool rejected the block; the garbage
	// collector reclaims it.
	m.directDeallocs.Add(1)
}

// Cleanup releases all pooled free blocks. The manager itself stays usable.
func (m *Manager) Cleanup() {
	for _, p := range m.pools {
		if p != nil {
			p.cleanup()
		}
	}
}

// Stats returns a point-in-time aggregate across all pools. Disabled
// classes appear as zeroed placeholder entries.
func (m *Manager) Stats() api.MemoryStats {
	stats := api.MemoryStats{
		DirectAllocs:       m.directAllocs.Load(),
		DirectDeallocs:     m.directDeallocs.Load(),
		TotalAllocated:     m.totalBytes.Load(),
		AllocationRequests: m.requests.Load(),
		Pools:              make([]api.PoolStats, 0, numClasses),
	}
	for i, class := range blockSizes {
		if p := m.pools[i]; p != nil {
			ps := p.stats()
			stats.PoolHits += ps.Hits
			stats.PoolMisses += ps.Misses
			stats.TypeMismatches += ps.TypeMismatches
			stats.Pools = append(stats.Pools, ps)
		} else {
			stats.Pools = append(stats.Pools, api.PoolStats{BlockSize: int(class)})
		}
	}
	return stats
}

var _ api.Allocator = (*Manager)(nil)
