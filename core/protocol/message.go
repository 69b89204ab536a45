// File: core/protocol/message.go
// Package protocol
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Message layout (native byte order):
//
//	offset 0  4  magic
//	offset 4  1  protocol version
//	offset 5  1  payload type
//	offset 6  2  status
//	offset 8  8  task id
//	offset 16 16 payload union (inline bool/u64, or pointer+length)
//
// Bytes and string payloads reference caller memory by pointer; the
// referenced bytes are never copied into the message. The referenced memory
// must outlive the message's consumption on the far side — the codec cannot
// detect a stale pointer.

package protocol

import "unsafe"

// Message is one task event. Serialized form is always MessageSize bytes.
type Message struct {
	Magic   uint32
	Version uint8
	Type    PayloadType
	Status  Status
	TaskID  uint64

	// payload union words: word0 holds an inline bool/u64 or a pointer,
	// word1 holds a reference length.
	word0 uint64
	word1 uint64
}

func header(taskID uint64, status Status, pt PayloadType) Message {
	return Message{
		Magic:   ProtocolMagic,
		Version: ProtocolVersion,
		Type:    pt,
		Status:  status,
		TaskID:  taskID,
	}
}

// NoData builds a success message without payload.
func NoData(taskID uint64) Message {
	return header(taskID, StatusSuccess, PayloadNone)
}

// BoolData builds a success message with an inline boolean payload.
func BoolData(taskID uint64, value bool) Message {
	m := header(taskID, StatusSuccessWithData, PayloadBool)
	if value {
		m.word0 = 1
	}
	return m
}

// U64Data builds a success message with an inline u64 payload.
func U64Data(taskID uint64, value uint64) Message {
	m := header(taskID, StatusSuccessWithData, PayloadU64)
	m.word0 = value
	return m
}

// BytesData builds a success message referencing data by pointer and length.
// Ownership of the referenced buffer transfers to the message recipient.
func BytesData(taskID uint64, data []byte) Message {
	m := header(taskID, StatusSuccessWithData, PayloadBytes)
	if len(data) > 0 {
		m.word0 = uint64(uintptr(unsafe.Pointer(unsafe.SliceData(data))))
		m.word1 = uint64(len(data))
	}
	return m
}

// StringData builds a message referencing a UTF-8 string by pointer and
// length. Used for error messages and general text transfer.
func StringData(taskID uint64, status Status, text string) Message {
	m := header(taskID, status, PayloadString)
	if len(text) > 0 {
		m.word0 = uint64(uintptr(unsafe.Pointer(unsafe.StringData(text))))
		m.word1 = uint64(len(text))
	}
	return m
}

// ErrorMessage builds an error-status message carrying a readable cause.
func ErrorMessage(taskID uint64, status Status, cause string) Message {
	return StringData(taskID, status, cause)
}

// ShutdownMessage builds the sentinel emitted as the final message of an
// executor's channel. It carries no task id.
func ShutdownMessage() Message {
	return header(0, StatusWorkerShutdown, PayloadNone)
}

// IsValid reports whether magic and version match the expected constants.
func (m *Message) IsValid() bool {
	return m.Magic == ProtocolMagic && m.Version == ProtocolVersion
}

// IsSuccess reports whether the task completed successfully.
func (m *Message) IsSuccess() bool {
	return m.Status == StatusSuccess || m.Status == StatusSuccessWithData
}

// IsError reports whether the message carries a failure status.
func (m *Message) IsError() bool {
	return !m.IsSuccess() && m.Status != StatusWorkerShutdown
}

// Bool returns the inline boolean payload.
func (m *Message) Bool() bool { return m.word0 != 0 }

// U64 returns the inline u64 payload.
func (m *Message) U64() uint64 { return m.word0 }

// Ref returns the raw pointer and length words of a reference payload.
func (m *Message) Ref() (ptr uintptr, length int) {
	return uintptr(m.word0), int(m.word1)
}

// DataPointer resolves a bytes or string payload into a byte view of the
// referenced memory. ok is false for inline payload types or a nil/empty
// reference. The caller must guarantee the referenced memory is still live.
func (m *Message) DataPointer() (data []byte, ok bool) {
	switch m.Type {
	case PayloadBytes, PayloadString:
		if m.word0 == 0 || m.word1 == 0 {
			return nil, false
		}
		p := *(*unsafe.Pointer)(unsafe.Pointer(&m.word0))
		return unsafe.Slice((*byte)(p), int(m.word1)), true
	default:
		return nil, false
	}
}
