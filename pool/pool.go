// File: pool/pool.go
// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-size-class pool. The free list is a lock-free MPMC queue of typed
// blocks; a block that surfaces with a foreign class tag is counted and
// dropped, never handed out. System-allocation slots are reserved with a
// single-attempt CAS so contention degrades to a direct allocation instead
// of a retry storm.

package pool

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/core/concurrency"
)

// blockFactory produces one zeroed block for a class. A nil return models
// system-allocation failure.
type blockFactory func(class BlockSize) []byte

func systemBlock(class BlockSize) []byte {
	return make([]byte, int(class))
}

// block is a free-list entry: a buffer tagged with the class it was carved
// from. The tag is the corruption tripwire for cross-pool contamination.
type block struct {
	buf   []byte
	class BlockSize
}

type classPool struct {
	class    BlockSize
	capacity int
	free     *concurrency.LockFreeQueue[block]
	newBlock blockFactory
	log      zerolog.Logger

	allocated atomic.Int64 // blocks currently obtained from the system

	allocations    atomic.Uint64
	deallocations  atomic.Uint64
	hits           atomic.Uint64
	misses         atomic.Uint64
	typeMismatches atomic.Uint64
}

func newClassPool(class BlockSize, capacity int, factory blockFactory, log zerolog.Logger) *classPool {
	if factory == nil {
		factory = systemBlock
	}
	return &classPool{
		class:    class,
		capacity: capacity,
		free:     concurrency.NewLockFreeQueue[block](capacity),
		newBlock: factory,
		log:      log,
	}
}

// allocate returns a zeroed block of the pool's class, or nil when the
// caller must fall back to a direct system allocation.
func (p *classPool) allocate() []byte {
	p.allocations.Add(1)

	if blk, ok := p.free.Dequeue(); ok {
		if blk.class == p.class && blk.buf != nil {
			p.hits.Add(1)
			clear(blk.buf)
			return blk.buf
		}
		// Foreign tag on the free list. Count it, drop the block, and treat
		// the list as empty for this call.
		p.typeMismatches.Add(1)
		p.log.Warn().
			Int("expected", int(p.class)).
			Int("got", int(blk.class)).
			Msg("memory pool block size mismatch")
	}

	cur := p.allocated.Load()
	if cur >= int64(p.capacity) {
		p.misses.Add(1)
		return nil
	}
	// Single CAS attempt; losing the race is a miss, not a retry.
	if !p.allocated.CompareAndSwap(cur, cur+1) {
		p.misses.Add(1)
		return nil
	}
	buf := p.newBlock(p.class)
	if buf == nil {
		p.allocated.Add(-1)
		p.misses.Add(1)
		return nil
	}
	p.hits.Add(1)
	return buf
}

// tryDeallocate offers a block back to the pool. The pool may reject it
// when saturated or when the buffer cannot back a full class block.
func (p *classPool) tryDeallocate(buf []byte) bool {
	if buf == nil || cap(buf) < int(p.class) {
		return false
	}
	if p.free.Len() >= p.capacity {
		return false
	}
	if !p.free.Enqueue(block{buf: buf[:int(p.class)], class: p.class}) {
		return false
	}
	p.deallocations.Add(1)
	return true
}

// cleanup empties the free list, releasing every retained block.
func (p *classPool) cleanup() {
	for {
		blk, ok := p.free.Dequeue()
		if !ok {
			return
		}
		if blk.class == p.class {
			p.allocated.Add(-1)
		} else {
			p.typeMismatches.Add(1)
		}
	}
}

func (p *classPool) stats() api.PoolStats {
	return api.PoolStats{
		BlockSize:      int(p.class),
		AllocatedCount: p.allocated.Load(),
		FreeCount:      p.free.Len(),
		Capacity:       p.capacity,
		Allocations:    p.allocations.Load(),
		Deallocations:  p.deallocations.Load(),
		Hits:           p.hits.Load(),
		Misses:         p.misses.Load(),
		TypeMismatches: p.typeMismatches.Load(),
	}
}
