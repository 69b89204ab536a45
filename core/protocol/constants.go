// File: core/protocol/constants.go
// Package protocol implements the fixed 32-byte task event message that
// carries task outcomes across the managed-runtime boundary.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

// ProtocolMagic identifies a task event message.
const ProtocolMagic uint32 = 0xDABCFE01

// ProtocolVersion is bumped on incompatible layout changes.
const ProtocolVersion uint8 = 1

// Wire sizes. A message is always HeaderSize + PayloadSize bytes; large
// payloads are referenced by pointer, never inlined.
const (
	HeaderSize  = 16
	PayloadSize = 16
	MessageSize = HeaderSize + PayloadSize
)

// Status is the 16-bit task status carried in the message header.
type Status uint16

const (
	// 0x0000 - 0x00FF: success
	StatusSuccess         Status = 0x0000 // completed, no return data
	StatusSuccessWithData Status = 0x0001 // completed, payload attached

	// 0x0100 - 0x01FF: lifecycle signaling
	StatusWorkerShutdown Status = 0x0100 // dispatcher terminated orderly

	// 0x9000 - 0x9FFF: application errors
	StatusUnknownError Status = 0x9001

	// 0xF000 - 0xFFFF: protocol errors
	StatusProtocolError   Status = 0xF001
	StatusVersionMismatch Status = 0xF002
	StatusCorruptedData   Status = 0xF003
)

// PayloadType tags the variant stored in the 16-byte payload union.
type PayloadType uint8

const (
	PayloadNone   PayloadType = 0
	PayloadBool   PayloadType = 1
	PayloadU64    PayloadType = 2
	PayloadBytes  PayloadType = 3 // pointer + length, zero-copy
	PayloadString PayloadType = 4 // pointer + length, UTF-8
)
