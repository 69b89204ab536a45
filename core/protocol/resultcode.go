// File: core/protocol/resultcode.go
// Package protocol
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Application-level result codes used by command handlers that wrap a
// transport layer. The dispatch core itself only distinguishes success,
// shutdown and error statuses; these codes travel inside u64 payloads or
// error strings and are grouped into families by numeric range.

package protocol

// ResultCode is an FFI-friendly operation result code.
//
// Families:
//
//	0        success
//	1-99     generic errors
//	100-199  connection errors
//	200-299  stream errors
//	300-399  datagram errors
//	400-499  configuration and parameter errors
type ResultCode int32

const (
	ResultSuccess ResultCode = 0

	// Generic errors (1-99)
	ResultUnknownError      ResultCode = 1
	ResultRuntimeError      ResultCode = 2
	ResultIoError           ResultCode = 3
	ResultTimeout           ResultCode = 4
	ResultResourceExhausted ResultCode = 5
	ResultInvalidOperation  ResultCode = 6
	ResultInternalError     ResultCode = 7
	ResultCancelled         ResultCode = 8

	// Connection errors (100-199)
	ResultConnectionFailed  ResultCode = 100
	ResultConnectionClosed  ResultCode = 101
	ResultConnectionLost    ResultCode = 102
	ResultConnectionReset   ResultCode = 103
	ResultVersionMismatch   ResultCode = 104
	ResultTransportError    ResultCode = 105
	ResultApplicationClosed ResultCode = 106
	ResultEndpointClosed    ResultCode = 107
	ResultHandshakeFailed   ResultCode = 108
	ResultTlsError          ResultCode = 109
	ResultCertificateError  ResultCode = 110

	// Stream errors (200-299)
	ResultStreamError     ResultCode = 200
	ResultStreamClosed    ResultCode = 201
	ResultStreamReset     ResultCode = 202
	ResultStreamStopped   ResultCode = 203
	ResultZeroRttRejected ResultCode = 204
	ResultBufferTooSmall  ResultCode = 205
	ResultNoMoreData      ResultCode = 206

	// Datagram errors (300-399)
	ResultDatagramDisabled  ResultCode = 300
	ResultDatagramTooLarge  ResultCode = 301
	ResultUnsupportedByPeer ResultCode = 302

	// Configuration and parameter errors (400-499)
	ResultInvalidParameter  ResultCode = 400
	ResultConfigError       ResultCode = 401
	ResultAddressParseError ResultCode = 402
	ResultFileNotFound      ResultCode = 403
	ResultFormatError       ResultCode = 404
)

// IsSuccess reports whether the code means success.
func (c ResultCode) IsSuccess() bool { return c == ResultSuccess }

// IsConnectionError reports whether the code is in the connection family.
func (c ResultCode) IsConnectionError() bool { return c >= 100 && c < 200 }

// IsStreamError reports whether the code is in the stream family.
func (c ResultCode) IsStreamError() bool { return c >= 200 && c < 300 }

// IsDatagramError reports whether the code is in the datagram family.
func (c ResultCode) IsDatagramError() bool { return c >= 300 && c < 400 }

// IsConfigError reports whether the code is in the configuration family.
func (c ResultCode) IsConfigError() bool { return c >= 400 && c < 500 }

// ResultCodeFromInt maps an integer to a known code, defaulting to
// ResultUnknownError for values outside the closed set.
func ResultCodeFromInt(value int32) ResultCode {
	c := ResultCode(value)
	switch c {
	case ResultSuccess,
		ResultUnknownError, ResultRuntimeError, ResultIoError, ResultTimeout,
		ResultResourceExhausted, ResultInvalidOperation, ResultInternalError, ResultCancelled,
		ResultConnectionFailed, ResultConnectionClosed, ResultConnectionLost, ResultConnectionReset,
		ResultVersionMismatch, ResultTransportError, ResultApplicationClosed, ResultEndpointClosed,
		ResultHandshakeFailed, ResultTlsError, ResultCertificateError,
		ResultStreamError, ResultStreamClosed, ResultStreamReset, ResultStreamStopped,
		ResultZeroRttRejected, ResultBufferTooSmall, ResultNoMoreData,
		ResultDatagramDisabled, ResultDatagramTooLarge, ResultUnsupportedByPeer,
		ResultInvalidParameter, ResultConfigError, ResultAddressParseError,
		ResultFileNotFound, ResultFormatError:
		return c
	default:
		return ResultUnknownError
	}
}
