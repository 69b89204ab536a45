// File: dispatch/port.go
// Package dispatch implements the cross-runtime task executors that carry
// results back to the managed caller as 32-byte binary messages.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"sync/atomic"

	"github.com/momentics/hioload-ffi/api"
)

// ChanPort is an in-process EventPort backed by a buffered channel. Post
// never blocks; when the buffer is full the message is dropped and counted,
// mirroring the lossy semantics of a native message port whose consumer has
// stalled.
type ChanPort struct {
	ch      chan []byte
	dropped atomic.Uint64
}

const defaultPortBuffer = 256

// NewChanPort creates a port with the given buffer capacity.
func NewChanPort(buffer int) *ChanPort {
	if buffer <= 0 {
		buffer = defaultPortBuffer
	}
	return &ChanPort{ch: make(chan []byte, buffer)}
}

// Post delivers one serialized message. Returns false when dropped.
func (p *ChanPort) Post(msg []byte) bool {
	select {
	case p.ch <- msg:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Events exposes the receive side of the port.
func (p *ChanPort) Events() <-chan []byte {
	return p.ch
}

// Dropped reports how many messages were discarded on a full buffer.
func (p *ChanPort) Dropped() uint64 {
	return p.dropped.Load()
}

var _ api.EventPort = (*ChanPort)(nil)
