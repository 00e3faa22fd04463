// Package errors defines the error types and sentinel errors used across the SDK.
package errors

import (
	"errors"
	"fmt"
)

// UXError is the base interface for all SDK errors.
type UXError interface {
	error
	IsUXError() bool
}

// Compile-time verification that all error types implement UXError.
var (
	_ UXError = (*BridgeConnectionError)(nil)
	_ UXError = (*EnvelopeDecodeError)(nil)
	_ UXError = (*ConfigError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrClientNotConnected indicates the client has not been started.
	ErrClientNotConnected = errors.New("client not connected")

	// ErrClientAlreadyConnected indicates Start was called twice.
	ErrClientAlreadyConnected = errors.New("client already connected")

	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.New("client closed: clients are single-use, create a new one with NewClient()")

	// ErrNoTransport indicates no transport was configured and no bridge URL was given.
	ErrNoTransport = errors.New("no transport configured: use WithTransport or WithBridgeURL")

	// ErrTransportNotConnected indicates the transport is not connected.
	ErrTransportNotConnected = errors.New("transport not connected")

	// ErrDispatcherStopped indicates the message dispatcher has stopped.
	// Pending correlated requests are failed with this error on shutdown.
	ErrDispatcherStopped = errors.New("message dispatcher stopped")

	// ErrConfirmationDismissed indicates the user dismissed a confirmation modal.
	ErrConfirmationDismissed = errors.New("confirmation modal dismissed")
)

// BridgeConnectionError indicates the WebSocket bridge to the host shell
// could not be established.
type BridgeConnectionError struct {
	URL string
	Err error
}

func (e *BridgeConnectionError) Error() string {
	return fmt.Sprintf("connect to host shell at %s: %v", e.URL, e.Err)
}

func (e *BridgeConnectionError) Unwrap() error { return e.Err }

// IsUXError implements the UXError interface.
func (e *BridgeConnectionError) IsUXError() bool { return true }

// EnvelopeDecodeError indicates an inbound message could not be decoded
// as a message envelope.
type EnvelopeDecodeError struct {
	Raw string
	Err error
}

func (e *EnvelopeDecodeError) Error() string {
	raw := e.Raw
	if len(raw) > 120 {
		raw = raw[:120] + "..."
	}

	return fmt.Sprintf("decode envelope %q: %v", raw, e.Err)
}

func (e *EnvelopeDecodeError) Unwrap() error { return e.Err }

// IsUXError implements the UXError interface.
func (e *EnvelopeDecodeError) IsUXError() bool { return true }

// ConfigError indicates invalid or unreadable SDK configuration.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config field %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// IsUXError implements the UXError interface.
func (e *ConfigError) IsUXError() bool { return true }
