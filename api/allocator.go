// File: api/allocator.go
// Package api defines the public contracts of the hioload-ffi library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator contract for pooled transient buffers crossing the runtime boundary.

package api

// Allocator hands out zero-initialized buffers and recycles them by size.
//
// Deallocate must receive the size that was originally requested: recycling
// is keyed by the size class derived from it, not by the buffer itself.
type Allocator interface {
	// Allocate returns a zeroed buffer of at least size bytes,
	// or nil if size is not positive or the underlying allocation failed.
	Allocate(size int) []byte

	// Deallocate returns a buffer to circulation. A nil buffer is a no-op.
	Deallocate(buf []byte, size int)
}

// PoolStats is a point-in-time snapshot of one size-class pool.
type PoolStats struct {
	BlockSize      int    // size class in bytes
	AllocatedCount int64  // blocks currently obtained from the system
	FreeCount      int    // blocks sitting in the free list
	Capacity       int    // configured retention capacity, 0 if disabled
	Allocations    uint64 // allocate calls routed to this pool
	Deallocations  uint64 // blocks accepted back by this pool
	Hits           uint64 // allocations served from the pool
	Misses         uint64 // allocations that fell through to the system
	TypeMismatches uint64 // recycled blocks carrying a foreign class tag
}

// MemoryStats aggregates manager-level counters and all per-pool snapshots.
type MemoryStats struct {
	PoolHits           uint64
	PoolMisses         uint64
	DirectAllocs       uint64
	DirectDeallocs     uint64
	TotalAllocated     uint64 // cumulative bytes handed out
	AllocationRequests uint64
	TypeMismatches     uint64
	Pools              []PoolStats
}
