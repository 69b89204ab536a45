package facade_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ffi/core/protocol"
	"github.com/momentics/hioload-ffi/dispatch"
	"github.com/momentics/hioload-ffi/facade"
)

func recvMsg(t *testing.T, events <-chan []byte) protocol.Message {
	t.Helper()
	select {
	case raw := <-events:
		msg, ok := protocol.Deserialize(raw)
		require.True(t, ok)
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for message")
		return protocol.Message{}
	}
}

func TestBridgeRuntimeVariant(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Threads = 2
	b := facade.New(cfg, dispatch.DefaultCommandHandler{})

	// The async runtime init reports first.
	msg := recvMsg(t, b.Events())
	require.Equal(t, protocol.PayloadBool, msg.Type)
	require.True(t, msg.Bool())

	taskID := b.Submit(dispatch.CommandPing, nil, nil)
	msg = recvMsg(t, b.Events())
	require.Equal(t, taskID, msg.TaskID)
	require.True(t, msg.IsSuccess())
	require.True(t, msg.Bool())

	stats, ok := b.MemoryStats()
	require.True(t, ok)
	require.Len(t, stats.Pools, 6)

	require.True(t, b.Shutdown())
	msg = recvMsg(t, b.Events())
	require.Equal(t, protocol.StatusWorkerShutdown, msg.Status)
}

func TestBridgeStrictFIFOVariant(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.StrictFIFO = true
	b := facade.New(cfg, dispatch.DefaultCommandHandler{})

	first := b.Submit(dispatch.CommandCalc, nil, nil)
	second := b.Submit(dispatch.CommandNoData, nil, nil)

	msg := recvMsg(t, b.Events())
	require.Equal(t, first, msg.TaskID)
	require.Equal(t, uint64(42), msg.U64())

	msg = recvMsg(t, b.Events())
	require.Equal(t, second, msg.TaskID)
	require.Equal(t, protocol.StatusSuccess, msg.Status)

	require.True(t, b.Shutdown())
	msg = recvMsg(t, b.Events())
	require.Equal(t, protocol.StatusWorkerShutdown, msg.Status)
}
