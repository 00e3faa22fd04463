package uxsdk

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubTransport is an in-memory transport for public API tests.
type stubTransport struct {
	mu      sync.Mutex
	sent    []map[string]any
	msgChan chan map[string]any
	errChan chan error
	started bool
}

func newStubTransport() *stubTransport {
	return &stubTransport{
		msgChan: make(chan map[string]any, 16),
		errChan: make(chan error, 1),
	}
}

func (s *stubTransport) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = true

	return nil
}

func (s *stubTransport) ReadMessages(_ context.Context) (<-chan map[string]any, <-chan error) {
	return s.msgChan, s.errChan
}

func (s *stubTransport) SendMessage(_ context.Context, data []byte) error {
	var env map[string]any
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, env)

	return nil
}

func (s *stubTransport) Close() error { return nil }

func (s *stubTransport) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

func (s *stubTransport) sentEnvelopes() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, len(s.sent))
	copy(out, s.sent)

	return out
}

func TestClient_PublicAPI_RoundTrip(t *testing.T) {
	transport := newStubTransport()

	client := NewClient()
	require.NoError(t, client.Start(context.Background(), WithTransport(transport), WithLogger(NopLogger())))

	defer client.Close()

	done := make(chan error, 1)

	go func() {
		done <- client.ShowConfirmationModal(context.Background(), ConfirmationSettings{
			Header:        "Unsaved changes",
			Body:          "Discard your changes?",
			ButtonConfirm: "Discard",
			ButtonDismiss: "Keep editing",
		})
	}()

	require.Eventually(t, func() bool {
		return len(transport.sentEnvelopes()) == 1
	}, time.Second, 5*time.Millisecond)

	transport.msgChan <- map[string]any{
		"msg":  "ux.hide-confirmation-modal",
		"data": map[string]any{"confirmed": true},
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("confirmation never settled")
	}
}

func TestClient_PublicAPI_AlertDismissKey(t *testing.T) {
	transport := newStubTransport()

	client := NewClient()
	require.NoError(t, client.Start(context.Background(), WithTransport(transport)))

	defer client.Close()

	result := make(chan string, 1)

	go func() {
		key, err := client.ShowAlert(context.Background(), AlertSettings{
			Text:  "Done. {view}",
			Type:  AlertSuccess,
			Links: map[string]AlertLink{"view": {URL: "/result", DismissKey: "view"}},
		})
		require.NoError(t, err)

		result <- key
	}()

	require.Eventually(t, func() bool {
		return len(transport.sentEnvelopes()) == 1
	}, time.Second, 5*time.Millisecond)

	sent := transport.sentEnvelopes()[0]
	id := sent["data"].(map[string]any)["id"].(string)

	transport.msgChan <- map[string]any{
		"msg":  "ux.hide-alert",
		"data": map[string]any{"id": id, "dismissKey": "view"},
	}

	select {
	case key := <-result:
		require.Equal(t, "view", key)
	case <-time.After(time.Second):
		t.Fatal("alert never settled")
	}
}

func TestClient_PublicAPI_ContextAndStyles(t *testing.T) {
	transport := newStubTransport()
	doc := NewMemDocument()

	client := NewClient()
	require.NoError(t, client.Start(context.Background(),
		WithTransport(transport),
		WithDocument(doc),
	))

	defer client.Close()

	transport.msgChan <- map[string]any{
		"msg": "lifecycle.context-update",
		"data": map[string]any{
			"currentLocale": "en",
			"currentTheme":  "horizon",
			"splitView":     true,
			"cssVariables":  map[string]any{"--brand-color": "#123456"},
		},
	}

	require.Eventually(t, func() bool {
		return client.CurrentLocale() == "en"
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, "horizon", client.CurrentTheme())
	require.True(t, client.IsSplitView())

	client.ApplyCSSVariables()
	client.ApplyCSSVariables()

	require.Len(t, doc.Styles(StyleMarker), 1)
}
