// File: internal/logging/logging.go
// Package logging builds the component loggers used across hioload-ffi.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package logging

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var output atomic.Value // io.Writer

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	output.Store(io.Writer(os.Stderr))
}

// New returns a timestamped logger tagged with the component name.
func New(component string) zerolog.Logger {
	w := output.Load().(io.Writer)
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// SetLevel adjusts the process-wide log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// SetOutput redirects loggers created after the call. Intended for tests.
func SetOutput(w io.Writer) {
	output.Store(w)
}
