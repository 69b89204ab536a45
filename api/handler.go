// File: api/handler.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Command handler contract and the task/result types shared between
// executors and deployment-specific command interpreters.

package api

// TaskCommand is one caller-submitted unit of work.
//
// Data and Params are borrowed views over caller memory. They are valid only
// for the duration of HandleCommand; implementations must not retain them.
type TaskCommand struct {
	TaskID      uint64
	CommandType byte
	Data        []byte
	Params      []uint64
}

// ResultKind discriminates the populated variant of a CommandResult.
type ResultKind uint8

const (
	ResultNoData ResultKind = iota
	ResultBool
	ResultU64
	ResultData
	ResultError
)

// CommandResult is the tagged outcome of handling one command.
// Exactly one variant is populated, selected by Kind.
//
// For ResultData the buffer's ownership transfers to the message recipient,
// which is responsible for releasing it through the memory manager.
type CommandResult struct {
	Kind ResultKind
	Bool bool
	U64  uint64
	Data []byte
	Err  string
}

// NoDataResult reports success with no payload.
func NoDataResult() CommandResult { return CommandResult{Kind: ResultNoData} }

// BoolResult reports success with a boolean payload.
func BoolResult(v bool) CommandResult { return CommandResult{Kind: ResultBool, Bool: v} }

// U64Result reports success with an unsigned integer payload.
func U64Result(v uint64) CommandResult { return CommandResult{Kind: ResultU64, U64: v} }

// DataResult reports success with an owned byte buffer payload.
func DataResult(buf []byte) CommandResult { return CommandResult{Kind: ResultData, Data: buf} }

// ErrorResult reports an application failure with a human-readable message.
func ErrorResult(msg string) CommandResult { return CommandResult{Kind: ResultError, Err: msg} }

// CommandHandler interprets a command's opaque type byte and payload.
//
// Implementations never see dispatcher internals and must encode failure as
// ErrorResult rather than panicking; a panic that escapes is still caught by
// the dispatcher and reported as an error-status message.
type CommandHandler interface {
	HandleCommand(cmd *TaskCommand) CommandResult
}

// CommandHandlerFunc adapts a plain function to CommandHandler.
type CommandHandlerFunc func(cmd *TaskCommand) CommandResult

func (f CommandHandlerFunc) HandleCommand(cmd *TaskCommand) CommandResult { return f(cmd) }
