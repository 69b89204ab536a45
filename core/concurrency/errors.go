// File: core/concurrency/errors.go
// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "errors"

// ErrPoolClosed is returned by Submit after the worker pool has been closed.
var ErrPoolClosed = errors.New("concurrency: worker pool closed")
