// Package wsbridge implements the host shell transport over WebSocket.
//
// The bridge dials the host's UX endpoint, decodes inbound JSON frames into
// envelope maps for the dispatcher, and writes outbound frames with a
// deadline. It satisfies config.Transport.
package wsbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/framekit/frame-ux-sdk-go/internal/config"
	"github.com/framekit/frame-ux-sdk-go/internal/errors"
)

const (
	// writeTimeout bounds a single outbound frame write.
	writeTimeout = 10 * time.Second

	// pongWait is how long we wait for a pong before the read fails.
	pongWait = 60 * time.Second

	// pingInterval must be shorter than pongWait.
	pingInterval = 30 * time.Second

	// messageBufferSize buffers decoded inbound frames for the dispatcher.
	messageBufferSize = 32
)

// Compile-time check that *Bridge implements the transport contract.
var _ config.Transport = (*Bridge)(nil)

// Bridge is a WebSocket connection to the host shell.
type Bridge struct {
	log *slog.Logger
	cfg *config.BridgeConfig

	mu    sync.Mutex
	conn  *websocket.Conn
	ready bool

	writeMu sync.Mutex

	closeOnce sync.Once
	done      chan struct{}
}

// New creates an unconnected bridge. Call Start to dial the host.
func New(log *slog.Logger, cfg *config.BridgeConfig) *Bridge {
	return &Bridge{
		log:  log.With("component", "wsbridge"),
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// Start dials the host shell endpoint.
func (b *Bridge) Start(ctx context.Context) error {
	if err := b.cfg.Validate(); err != nil {
		return err
	}

	handshakeTimeout := b.cfg.HandshakeTimeout
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}

	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}

	header := http.Header{}
	if b.cfg.Origin != "" {
		header.Set("Origin", b.cfg.Origin)
	}

	b.log.Debug("Dialing host shell", "url", b.cfg.URL)

	conn, _, err := dialer.DialContext(ctx, b.cfg.URL, header) //nolint:bodyclose // gorilla owns the response body
	if err != nil {
		return &errors.BridgeConnectionError{URL: b.cfg.URL, Err: err}
	}

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	b.mu.Lock()
	b.conn = conn
	b.ready = true
	b.mu.Unlock()

	go b.pingLoop(conn)

	b.log.Info("Connected to host shell", "url", b.cfg.URL)

	return nil
}

// IsReady returns true once the bridge is connected and not yet closed.
func (b *Bridge) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.ready
}

// ReadMessages starts the read pump and returns its channels.
//
// Both channels are closed when the connection fails or the bridge closes.
func (b *Bridge) ReadMessages(ctx context.Context) (<-chan map[string]any, <-chan error) {
	msgChan := make(chan map[string]any, messageBufferSize)
	errChan := make(chan error, 1)

	b.mu.Lock()
	conn := b.conn
	b.mu.Unlock()

	if conn == nil {
		errChan <- errors.ErrTransportNotConnected
		close(msgChan)
		close(errChan)

		return msgChan, errChan
	}

	go b.readPump(ctx, conn, msgChan, errChan)

	return msgChan, errChan
}

func (b *Bridge) readPump(
	ctx context.Context,
	conn *websocket.Conn,
	msgChan chan map[string]any,
	errChan chan error,
) {
	defer close(msgChan)
	defer close(errChan)
	defer b.log.Debug("Bridge read pump stopped")

	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		errChan <- fmt.Errorf("set read deadline: %w", err)

		return
	}

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-b.done:
				// Expected during shutdown.
			default:
				errChan <- fmt.Errorf("read frame: %w", err)
			}

			return
		}

		var msg map[string]any
		if err := json.Unmarshal(frame, &msg); err != nil {
			b.log.Warn("Dropping undecodable frame", "error",
				&errors.EnvelopeDecodeError{Raw: string(frame), Err: err})

			continue
		}

		select {
		case msgChan <- msg:
		case <-b.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// SendMessage writes one JSON frame to the host. Safe for concurrent use.
func (b *Bridge) SendMessage(_ context.Context, data []byte) error {
	b.mu.Lock()
	conn := b.conn
	ready := b.ready
	b.mu.Unlock()

	if conn == nil || !ready {
		return errors.ErrTransportNotConnected
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	return nil
}

// pingLoop keeps the connection alive until the bridge closes.
func (b *Bridge) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.writeMu.Lock()

			err := conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err == nil {
				err = conn.WriteMessage(websocket.PingMessage, nil)
			}

			b.writeMu.Unlock()

			if err != nil {
				b.log.Debug("Ping failed", "error", err)

				return
			}

		case <-b.done:
			return
		}
	}
}

// Close terminates the connection. Safe to call multiple times.
func (b *Bridge) Close() error {
	var err error

	b.closeOnce.Do(func() {
		close(b.done)

		b.mu.Lock()
		conn := b.conn
		b.ready = false
		b.mu.Unlock()

		if conn == nil {
			return
		}

		b.writeMu.Lock()

		deadline := time.Now().Add(writeTimeout)
		if werr := conn.SetWriteDeadline(deadline); werr == nil {
			// Best effort close handshake.
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		}

		b.writeMu.Unlock()

		err = conn.Close()
	})

	return err
}
