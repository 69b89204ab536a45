// File: dispatch/emit.go
// Package dispatch
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mapping from command results to task event messages. Every submitted task
// flows through exactly one of these emissions.

package dispatch

import (
	"fmt"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/core/protocol"
)

// ShutdownCommand is the reserved sentinel command type. It is recognized by
// the worker loop and never forwarded to a command handler.
const ShutdownCommand byte = 255

// resultMessage converts one handler outcome into its wire message.
func resultMessage(taskID uint64, res api.CommandResult) protocol.Message {
	switch res.Kind {
	case api.ResultNoData:
		return protocol.NoData(taskID)
	case api.ResultBool:
		return protocol.BoolData(taskID, res.Bool)
	case api.ResultU64:
		return protocol.U64Data(taskID, res.U64)
	case api.ResultData:
		return protocol.BytesData(taskID, res.Data)
	case api.ResultError:
		return protocol.ErrorMessage(taskID, protocol.StatusUnknownError, res.Err)
	default:
		return protocol.ErrorMessage(taskID, protocol.StatusProtocolError,
			fmt.Sprintf("invalid result kind %d", res.Kind))
	}
}

func postMessage(port api.EventPort, msg protocol.Message) bool {
	return port.Post(protocol.Serialize(&msg))
}

func postError(port api.EventPort, taskID uint64, cause string) bool {
	return postMessage(port, protocol.ErrorMessage(taskID, protocol.StatusUnknownError, cause))
}

// safeHandle invokes the handler and converts an escaped panic into an
// error result, so a faulty handler can never crash the dispatcher.
func safeHandle(h api.CommandHandler, cmd *api.TaskCommand) (res api.CommandResult) {
	defer func() {
		if r := recover(); r != nil {
			res = api.ErrorResult(fmt.Sprintf("command handler panic: %v", r))
		}
	}()
	return h.HandleCommand(cmd)
}
