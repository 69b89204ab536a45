package protocol

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMessageCreation(t *testing.T) {
	msg := BoolData(123, true)
	require.True(t, msg.IsValid())
	require.Equal(t, uint64(123), msg.TaskID)
	require.Equal(t, StatusSuccessWithData, msg.Status)
	require.Equal(t, PayloadBool, msg.Type)
	require.True(t, msg.IsSuccess())
	require.True(t, msg.Bool())

	msg = BoolData(124, false)
	require.False(t, msg.Bool())
}

func TestNoDataMessage(t *testing.T) {
	msg := NoData(1)
	require.True(t, msg.IsValid())
	require.Equal(t, StatusSuccess, msg.Status)
	require.Equal(t, PayloadNone, msg.Type)
	require.True(t, msg.IsSuccess())
	require.False(t, msg.IsError())

	_, ok := msg.DataPointer()
	require.False(t, ok)
}

func TestU64Message(t *testing.T) {
	msg := U64Data(456, 0xDEADBEEF12345678)
	require.Equal(t, uint64(0xDEADBEEF12345678), msg.U64())
	require.Equal(t, PayloadU64, msg.Type)
}

func TestStringMessage(t *testing.T) {
	text := "Hello, FFI Protocol!"
	msg := StringData(789, StatusSuccessWithData, text)
	require.True(t, msg.IsValid())
	require.Equal(t, PayloadString, msg.Type)

	data, ok := msg.DataPointer()
	require.True(t, ok)
	require.Equal(t, text, string(data))
}

func TestErrorMessage(t *testing.T) {
	msg := ErrorMessage(999, StatusUnknownError, "Something went wrong")
	require.True(t, msg.IsValid())
	require.True(t, msg.IsError())
	require.False(t, msg.IsSuccess())
	require.Equal(t, uint64(999), msg.TaskID)
	require.Equal(t, PayloadString, msg.Type)

	data, ok := msg.DataPointer()
	require.True(t, ok)
	require.Equal(t, "Something went wrong", string(data))
}

func TestShutdownMessage(t *testing.T) {
	msg := ShutdownMessage()
	require.True(t, msg.IsValid())
	require.Equal(t, StatusWorkerShutdown, msg.Status)
	require.Equal(t, uint64(0), msg.TaskID)
	require.False(t, msg.IsSuccess())
	require.False(t, msg.IsError())
}

func TestZeroCopyBytesPayload(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	msg := BytesData(123, payload)

	ptr, length := msg.Ref()
	require.Equal(t, uintptr(unsafe.Pointer(unsafe.SliceData(payload))), ptr)
	require.Equal(t, len(payload), length)

	view, ok := msg.DataPointer()
	require.True(t, ok)
	// Same backing memory, not a copy.
	require.Same(t, unsafe.SliceData(payload), unsafe.SliceData(view))
	require.Equal(t, payload, view)
}

func TestEmptyReferencePayload(t *testing.T) {
	msg := BytesData(1, nil)
	ptr, length := msg.Ref()
	require.Equal(t, uintptr(0), ptr)
	require.Equal(t, 0, length)
	_, ok := msg.DataPointer()
	require.False(t, ok)
}

func TestValidityCheck(t *testing.T) {
	msg := NoData(1)
	msg.Magic = 0xBADC0FFE
	require.False(t, msg.IsValid())

	msg = NoData(1)
	msg.Version = ProtocolVersion + 1
	require.False(t, msg.IsValid())
}
