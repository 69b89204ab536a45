// File: pool/config.go
// Package pool implements the segmented size-class memory pool with
// lock-free recycling that backs transient cross-boundary buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// BlockSize is one of the fixed size classes the pool recycles.
// A requested size maps to the smallest class that can hold it; requests
// above the largest class are served directly by the system allocator.
type BlockSize int

const (
	Tiny   BlockSize = 32    // tiny objects
	Small  BlockSize = 128   // small messages
	Medium BlockSize = 512   // medium messages
	Large  BlockSize = 4096  // data packets
	Huge   BlockSize = 16384 // large data packets
	XLarge BlockSize = 65536 // extra large data packets
)

// blockSizes is ordered ascending; index order is fixed for the process
// lifetime and mirrored by Config and Manager.
var blockSizes = [...]BlockSize{Tiny, Small, Medium, Large, Huge, XLarge}

const numClasses = len(blockSizes)

// defaultCapacities are the per-class block retention counts used when a
// capacity is not configured explicitly.
var defaultCapacities = [numClasses]int{20, 20, 20, 10, 10, 5}

// BlockSizeFor maps a requested size to its size class.
// ok is false for non-positive sizes and sizes above the largest class.
func BlockSizeFor(size int) (BlockSize, bool) {
	if size <= 0 {
		return 0, false
	}
	for _, c := range blockSizes {
		if size <= int(c) {
			return c, true
		}
	}
	return 0, false
}

func (b BlockSize) index() int {
	for i, c := range blockSizes {
		if c == b {
			return i
		}
	}
	return -1
}

// Config carries the six optional per-class capacities. A capacity left
// unset uses the documented default; an explicit zero disables pooling for
// that class. Config is immutable once a Manager is constructed from it.
type Config struct {
	capacities [numClasses]*int
}

// Option adjusts one field of a Config under construction.
type Option func(*Config)

// NewConfig builds a Config from options.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func withCapacity(idx, n int) Option {
	return func(c *Config) {
		v := n
		c.capacities[idx] = &v
	}
}

// WithTinyCapacity sets the 32 B pool capacity; 0 disables the class.
func WithTinyCapacity(n int) Option { return withCapacity(Tiny.index(), n) }

// WithSmallCapacity sets the 128 B pool capacity; 0 disables the class.
func WithSmallCapacity(n int) Option { return withCapacity(Small.index(), n) }

// WithMediumCapacity sets the 512 B pool capacity; 0 disables the class.
func WithMediumCapacity(n int) Option { return withCapacity(Medium.index(), n) }

// WithLargeCapacity sets the 4 KiB pool capacity; 0 disables the class.
func WithLargeCapacity(n int) Option { return withCapacity(Large.index(), n) }

// WithHugeCapacity sets the 16 KiB pool capacity; 0 disables the class.
func WithHugeCapacity(n int) Option { return withCapacity(Huge.index(), n) }

// WithXLargeCapacity sets the 64 KiB pool capacity; 0 disables the class.
func WithXLargeCapacity(n int) Option { return withCapacity(XLarge.index(), n) }

// capacity resolves the effective capacity for a class index.
// 0 means the class is disabled.
func (c *Config) capacity(idx int) int {
	if v := c.capacities[idx]; v != nil {
		if *v <= 0 {
			return 0
		}
		return *v
	}
	return defaultCapacities[idx]
}

// Enabled reports whether pooling is active for the given class.
func (c *Config) Enabled(b BlockSize) bool {
	return c.capacity(b.index()) > 0
}
