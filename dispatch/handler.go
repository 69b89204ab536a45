// File: dispatch/handler.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package dispatch

import (
	"fmt"

	"github.com/momentics/hioload-ffi/api"
)

// Built-in command types served by DefaultCommandHandler.
const (
	CommandPing   byte = 1 // answers Bool(true)
	CommandCalc   byte = 2 // answers U64(42)
	CommandNoData byte = 3 // answers success without payload
)

// DefaultCommandHandler is a minimal handler for wiring tests and smoke
// checks. Deployments inject their own handler interpreting the command
// byte against their transport layer.
type DefaultCommandHandler struct{}

func (DefaultCommandHandler) HandleCommand(cmd *api.TaskCommand) api.CommandResult {
	switch cmd.CommandType {
	case CommandPing:
		return api.BoolResult(true)
	case CommandCalc:
		return api.U64Result(42)
	case CommandNoData:
		return api.NoDataResult()
	default:
		return api.ErrorResult(fmt.Sprintf("unknown command type: %d", cmd.CommandType))
	}
}
