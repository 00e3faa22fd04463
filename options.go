package uxsdk

import (
	"log/slog"

	"github.com/framekit/frame-ux-sdk-go/internal/config"
)

// Option configures the client using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a config.Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithTransport injects a custom transport, replacing the default WebSocket
// bridge. Useful for tests and in-process hosts.
func WithTransport(transport Transport) Option {
	return func(o *config.Options) {
		o.Transport = transport
	}
}

// WithBridgeURL sets the host shell WebSocket endpoint,
// e.g. "ws://localhost:4200/ux".
func WithBridgeURL(url string) Option {
	return func(o *config.Options) {
		o.BridgeURL = url
	}
}

// WithBridgeConfigFile loads the bridge settings from a YAML file. Ignored
// when WithTransport or WithBridgeURL is also given.
func WithBridgeConfigFile(path string) Option {
	return func(o *config.Options) {
		o.BridgeConfigPath = path
	}
}

// WithOrigin sets the Origin header sent when dialing the bridge.
func WithOrigin(origin string) Option {
	return func(o *config.Options) {
		o.Origin = origin
	}
}

// WithDocument sets the surface CSS variables are applied to.
// Defaults to an in-memory document.
func WithDocument(doc Document) Option {
	return func(o *config.Options) {
		o.Document = doc
	}
}
