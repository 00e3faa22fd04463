package uxsdk

import (
	"github.com/framekit/frame-ux-sdk-go/internal/config"
	"github.com/framekit/frame-ux-sdk-go/internal/lifecycle"
	"github.com/framekit/frame-ux-sdk-go/internal/message"
	"github.com/framekit/frame-ux-sdk-go/internal/styles"
)

// Re-export types from internal packages

// ===== Settings =====

// ConfirmationSettings configures a confirmation modal shown by the host.
type ConfirmationSettings = message.ConfirmationSettings

// AlertSettings configures an alert shown by the host.
type AlertSettings = message.AlertSettings

// AlertLink is one inline link inside an alert text.
type AlertLink = message.AlertLink

// AlertType classifies an alert for host-side styling.
type AlertType = message.AlertType

const (
	// AlertInfo is a neutral informational alert.
	AlertInfo = message.AlertInfo
	// AlertSuccess signals a completed action.
	AlertSuccess = message.AlertSuccess
	// AlertWarning signals a recoverable problem.
	AlertWarning = message.AlertWarning
	// AlertError signals a failed action.
	AlertError = message.AlertError
)

// MinCloseAfter is the smallest auto-close duration the host accepts for
// alerts; shorter durations are dropped with a warning.
const MinCloseAfter = message.MinCloseAfter

// ===== Ambient context =====

// ContextSnapshot is one consistent view of the ambient context the host
// shares with the frame.
type ContextSnapshot = lifecycle.Snapshot

// ===== Styles =====

// Document is the surface style blocks are injected into.
type Document = config.Document

// MemDocument is an in-memory Document, the default surface.
type MemDocument = styles.MemDocument

// NewMemDocument creates an empty in-memory document.
func NewMemDocument() *MemDocument {
	return styles.NewMemDocument()
}

// StyleMarker tags style blocks injected by this SDK.
const StyleMarker = styles.Marker

// ===== Bridge configuration =====

// BridgeConfig describes the WebSocket bridge to the host shell.
type BridgeConfig = config.BridgeConfig

// LoadBridgeConfig reads a BridgeConfig from a YAML file.
func LoadBridgeConfig(path string) (*BridgeConfig, error) {
	return config.LoadBridgeConfig(path)
}
