// File: core/protocol/codec.go
// Package protocol
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Serialization is a verbatim copy of the in-memory layout in native byte
// order: both sides of the boundary live in the same process, so no
// byte-order translation is performed. Reference payloads serialize as their
// pointer and length words only, keeping the cost fixed at 32 bytes.

package protocol

import "encoding/binary"

// Serialize encodes msg into its fixed 32-byte wire form.
func Serialize(msg *Message) []byte {
	buf := make([]byte, MessageSize)
	binary.NativeEndian.PutUint32(buf[0:], msg.Magic)
	buf[4] = msg.Version
	buf[5] = byte(msg.Type)
	binary.NativeEndian.PutUint16(buf[6:], uint16(msg.Status))
	binary.NativeEndian.PutUint64(buf[8:], msg.TaskID)
	binary.NativeEndian.PutUint64(buf[16:], msg.word0)
	binary.NativeEndian.PutUint64(buf[24:], msg.word1)
	return buf
}

// Deserialize reconstructs a message from its wire form. ok is false when
// fewer than 32 bytes are supplied or the header fails the validity check.
// This is the only integrity check: a stale pointer inside a reference
// payload cannot be detected here.
func Deserialize(data []byte) (msg Message, ok bool) {
	if len(data) < MessageSize {
		return Message{}, false
	}
	msg = Message{
		Magic:   binary.NativeEndian.Uint32(data[0:]),
		Version: data[4],
		Type:    PayloadType(data[5]),
		Status:  Status(binary.NativeEndian.Uint16(data[6:])),
		TaskID:  binary.NativeEndian.Uint64(data[8:]),
		word0:   binary.NativeEndian.Uint64(data[16:]),
		word1:   binary.NativeEndian.Uint64(data[24:]),
	}
	if !msg.IsValid() {
		return Message{}, false
	}
	return msg, true
}
