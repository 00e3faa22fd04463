package uxsdk

import "context"

// Client is the stateful interface to the host shell's UX chrome.
//
// Lifecycle: clients are single-use. After Close(), create a new client with
// NewClient().
//
// Example usage:
//
//	client := uxsdk.NewClient()
//	defer client.Close()
//
//	err := client.Start(ctx,
//	    uxsdk.WithBridgeURL("ws://localhost:4200/ux"),
//	    uxsdk.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.ShowConfirmationModal(ctx, uxsdk.ConfirmationSettings{Body: "Sure?"}); err != nil {
//	    // dismissed or failed
//	}
type Client interface {
	// Start connects to the host shell. Must be called before any other
	// method. Returns a BridgeConnectionError if the bridge cannot be
	// dialed, ErrNoTransport if no transport is configured.
	Start(ctx context.Context, opts ...Option) error

	// ShowConfirmationModal opens a confirmation modal and blocks until the
	// user settles it: nil on confirm, ErrConfirmationDismissed on dismiss.
	// At most one confirmation can be outstanding; reissuing abandons the
	// previous caller (it keeps waiting on its own context).
	ShowConfirmationModal(ctx context.Context, settings ConfirmationSettings) error

	// ShowAlert displays an alert and blocks until it is dismissed.
	// Returns the generated alert id, or the dismiss key of the inline
	// link the user activated. Auto-close durations under 100ms are
	// dropped with a warning.
	ShowAlert(ctx context.Context, settings AlertSettings) (string, error)

	// ShowLoadingIndicator asks the host to show its loading indicator.
	ShowLoadingIndicator(ctx context.Context) error

	// HideLoadingIndicator asks the host to hide its loading indicator.
	HideLoadingIndicator(ctx context.Context) error

	// CloseCurrentModal asks the host to close the modal this frame runs in.
	CloseCurrentModal(ctx context.Context) error

	// AddBackdrop asks the host to put a backdrop behind the frame.
	AddBackdrop(ctx context.Context) error

	// RemoveBackdrop asks the host to remove the backdrop.
	RemoveBackdrop(ctx context.Context) error

	// SetDirtyStatus reports whether the frame holds unsaved changes, so
	// the host can guard navigation.
	SetDirtyStatus(ctx context.Context, dirty bool) error

	// SetCurrentLocale asks the host to switch the active locale.
	SetCurrentLocale(ctx context.Context, locale string) error

	// CurrentLocale returns the cached locale, or "" before the host has
	// shared context.
	CurrentLocale() string

	// CurrentTheme returns the cached theme, or "" before the host has
	// shared context.
	CurrentTheme() string

	// CSSVariables returns a copy of the host's CSS custom-property map.
	// Never nil.
	CSSVariables() map[string]string

	// IsSplitView reports whether the frame runs inside a split view.
	IsSplitView() bool

	// IsModal reports whether the frame runs inside a modal.
	IsModal() bool

	// IsDrawer reports whether the frame runs inside a drawer.
	IsDrawer() bool

	// ApplyCSSVariables renders the cached CSS custom properties into the
	// configured document surface, replacing any previously injected block.
	ApplyCSSVariables()

	// Close disconnects from the host and fails all pending correlated
	// requests with ErrDispatcherStopped. Safe to call multiple times.
	Close() error
}

// NewClient creates a new UX client.
//
// The client is not connected after creation. Call Start() with options to
// connect.
func NewClient() Client {
	return newClientImpl()
}
