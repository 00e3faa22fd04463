package uxsdk

import "github.com/framekit/frame-ux-sdk-go/internal/config"

// Transport defines the interface for host shell communication.
// Implement this to provide custom transports for testing, mocking, or
// alternative embeddings (e.g. an in-process host).
//
// The default implementation is the WebSocket bridge dialed from
// WithBridgeURL or WithBridgeConfigFile. Custom transports can be injected
// via WithTransport.
type Transport = config.Transport
