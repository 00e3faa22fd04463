package uxsdk

import "github.com/framekit/frame-ux-sdk-go/internal/errors"

// Re-export error types from internal package

// UXError is the base interface for all SDK errors.
type UXError = errors.UXError

// BridgeConnectionError indicates the WebSocket bridge to the host shell
// could not be established.
type BridgeConnectionError = errors.BridgeConnectionError

// EnvelopeDecodeError indicates an inbound message could not be decoded as
// a message envelope.
type EnvelopeDecodeError = errors.EnvelopeDecodeError

// ConfigError indicates invalid or unreadable SDK configuration.
type ConfigError = errors.ConfigError

// Re-export sentinel errors from internal package.
var (
	// ErrClientNotConnected indicates the client has not been started.
	ErrClientNotConnected = errors.ErrClientNotConnected

	// ErrClientAlreadyConnected indicates Start was called twice.
	ErrClientAlreadyConnected = errors.ErrClientAlreadyConnected

	// ErrClientClosed indicates the client has been closed and cannot be reused.
	ErrClientClosed = errors.ErrClientClosed

	// ErrNoTransport indicates no transport was configured.
	ErrNoTransport = errors.ErrNoTransport

	// ErrTransportNotConnected indicates the transport is not connected.
	ErrTransportNotConnected = errors.ErrTransportNotConnected

	// ErrDispatcherStopped indicates the message dispatcher has stopped;
	// pending correlated requests are failed with this error.
	ErrDispatcherStopped = errors.ErrDispatcherStopped

	// ErrConfirmationDismissed indicates the user dismissed a confirmation modal.
	ErrConfirmationDismissed = errors.ErrConfirmationDismissed
)
