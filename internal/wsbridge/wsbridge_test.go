package wsbridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/framekit/frame-ux-sdk-go/internal/config"
	uxerrors "github.com/framekit/frame-ux-sdk-go/internal/errors"
)

// testHost is a minimal WebSocket host shell for bridge tests.
type testHost struct {
	t        *testing.T
	server   *httptest.Server
	upgrader websocket.Upgrader

	mu       sync.Mutex
	conn     *websocket.Conn
	received []map[string]any
	gotConn  chan struct{}
}

func newTestHost(t *testing.T) *testHost {
	t.Helper()

	h := &testHost{t: t, gotConn: make(chan struct{})}
	h.server = httptest.NewServer(http.HandlerFunc(h.handle))

	t.Cleanup(h.server.Close)

	return h
}

func (h *testHost) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.conn = conn
	h.mu.Unlock()

	close(h.gotConn)

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg map[string]any
		if json.Unmarshal(frame, &msg) == nil {
			h.mu.Lock()
			h.received = append(h.received, msg)
			h.mu.Unlock()
		}
	}
}

func (h *testHost) url() string {
	return "ws" + strings.TrimPrefix(h.server.URL, "http")
}

func (h *testHost) send(t *testing.T, payload string) {
	t.Helper()

	select {
	case <-h.gotConn:
	case <-time.After(time.Second):
		t.Fatal("no bridge connection")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	require.NoError(t, h.conn.WriteMessage(websocket.TextMessage, []byte(payload)))
}

func (h *testHost) receivedMessages() []map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]map[string]any, len(h.received))
	copy(out, h.received)

	return out
}

func startBridge(t *testing.T, host *testHost) *Bridge {
	t.Helper()

	bridge := New(slog.Default(), &config.BridgeConfig{
		URL:              host.url(),
		HandshakeTimeout: 2 * time.Second,
	})

	require.NoError(t, bridge.Start(context.Background()))

	t.Cleanup(func() { _ = bridge.Close() })

	return bridge
}

func TestBridge_SendMessage(t *testing.T) {
	host := newTestHost(t)
	bridge := startBridge(t, host)

	require.True(t, bridge.IsReady())

	err := bridge.SendMessage(context.Background(), []byte(`{"msg":"ux.add-backdrop"}`))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		msgs := host.receivedMessages()

		return len(msgs) == 1 && msgs[0]["msg"] == "ux.add-backdrop"
	}, time.Second, 10*time.Millisecond)
}

func TestBridge_ReadMessages(t *testing.T) {
	host := newTestHost(t)
	bridge := startBridge(t, host)

	messages, _ := bridge.ReadMessages(context.Background())

	host.send(t, `{"msg":"ux.hide-alert","data":{"id":"a1"}}`)

	select {
	case msg := <-messages:
		require.Equal(t, "ux.hide-alert", msg["msg"])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for inbound message")
	}
}

func TestBridge_ReadMessages_SkipsUndecodableFrames(t *testing.T) {
	host := newTestHost(t)
	bridge := startBridge(t, host)

	messages, _ := bridge.ReadMessages(context.Background())

	host.send(t, `not json`)
	host.send(t, `{"msg":"ux.hide-alert","data":{"id":"a2"}}`)

	select {
	case msg := <-messages:
		data, ok := msg["data"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "a2", data["id"])
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for inbound message")
	}
}

func TestBridge_SendBeforeStart(t *testing.T) {
	bridge := New(slog.Default(), &config.BridgeConfig{URL: "ws://localhost:1/ux"})

	err := bridge.SendMessage(context.Background(), []byte(`{}`))
	require.ErrorIs(t, err, uxerrors.ErrTransportNotConnected)
}

func TestBridge_StartFailure(t *testing.T) {
	bridge := New(slog.Default(), &config.BridgeConfig{
		URL:              "ws://127.0.0.1:1/ux",
		HandshakeTimeout: 500 * time.Millisecond,
	})

	err := bridge.Start(context.Background())
	require.Error(t, err)

	var connErr *uxerrors.BridgeConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, "ws://127.0.0.1:1/ux", connErr.URL)
}

func TestBridge_CloseIsIdempotent(t *testing.T) {
	host := newTestHost(t)
	bridge := startBridge(t, host)

	require.NoError(t, bridge.Close())
	require.NoError(t, bridge.Close())
	require.False(t, bridge.IsReady())
}
