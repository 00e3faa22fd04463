// Package config holds SDK configuration: the options struct filled by the
// public functional options, the transport contract, and the YAML bridge
// configuration file.
package config

import "log/slog"

// Document is the style-injection surface, re-declared here to avoid an
// import cycle with the styles package consumer.
type Document interface {
	RemoveStyles(marker string)
	AppendStyle(marker, css string)
}

// Options configures the behavior of the UX client.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Transport overrides the default WebSocket bridge.
	Transport Transport

	// BridgeURL is the host shell WebSocket endpoint. Used when no
	// Transport is injected.
	BridgeURL string

	// BridgeConfigPath points to a YAML bridge configuration file. Used
	// when neither Transport nor BridgeURL is set.
	BridgeConfigPath string

	// Origin is sent as the Origin header when dialing the bridge.
	Origin string

	// Document is the surface CSS variables are applied to.
	// Defaults to an in-memory document.
	Document Document
}
