package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeFixedSize(t *testing.T) {
	payload := []byte("zero copy payload that is much longer than the message itself..")
	messages := []Message{
		NoData(1),
		BoolData(2, true),
		U64Data(3, 42),
		BytesData(4, payload),
		StringData(5, StatusSuccessWithData, "text"),
		ErrorMessage(6, StatusUnknownError, "boom"),
		ShutdownMessage(),
	}
	for _, msg := range messages {
		raw := Serialize(&msg)
		require.Len(t, raw, MessageSize, "payload type %d", msg.Type)
	}
}

func TestRoundTripAllVariants(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	messages := []Message{
		NoData(10),
		BoolData(11, true),
		BoolData(12, false),
		U64Data(13, 0xDEADBEEF12345678),
		BytesData(14, payload),
		StringData(15, StatusSuccessWithData, "round trip"),
		ErrorMessage(16, StatusUnknownError, "failure cause"),
		ShutdownMessage(),
	}
	for _, msg := range messages {
		raw := Serialize(&msg)
		got, ok := Deserialize(raw)
		require.True(t, ok)
		require.Equal(t, msg, got, "payload type %d", msg.Type)
	}
}

func TestRoundTripPointerWords(t *testing.T) {
	payload := []byte("referenced, never copied")
	msg := BytesData(77, payload)

	raw := Serialize(&msg)
	got, ok := Deserialize(raw)
	require.True(t, ok)

	wantPtr, wantLen := msg.Ref()
	gotPtr, gotLen := got.Ref()
	require.Equal(t, wantPtr, gotPtr)
	require.Equal(t, wantLen, gotLen)

	view, ok := got.DataPointer()
	require.True(t, ok)
	require.Equal(t, payload, view)
}

func TestDeserializeShortInput(t *testing.T) {
	msg := NoData(1)
	raw := Serialize(&msg)
	for _, n := range []int{0, 1, 15, 31} {
		_, ok := Deserialize(raw[:n])
		require.False(t, ok, "length %d", n)
	}
}

func TestDeserializeBadHeader(t *testing.T) {
	msg := NoData(1)

	raw := Serialize(&msg)
	raw[0] ^= 0xFF // corrupt magic
	_, ok := Deserialize(raw)
	require.False(t, ok)

	raw = Serialize(&msg)
	raw[4] = ProtocolVersion + 1 // wrong version
	_, ok = Deserialize(raw)
	require.False(t, ok)
}
