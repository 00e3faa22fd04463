package uxsdk

import (
	"context"

	"github.com/framekit/frame-ux-sdk-go/internal/client"
)

// clientWrapper wraps the internal client to adapt it to the public interface.
type clientWrapper struct {
	impl *client.Client
}

// Compile-time check that *clientWrapper implements the Client interface.
var _ Client = (*clientWrapper)(nil)

// newClientImpl creates the internal client implementation.
func newClientImpl() Client {
	return &clientWrapper{impl: client.New()}
}

// Start connects to the host shell.
func (c *clientWrapper) Start(ctx context.Context, opts ...Option) error {
	return c.impl.Start(ctx, applyOptions(opts))
}

// ShowConfirmationModal opens a confirmation modal and blocks until settled.
func (c *clientWrapper) ShowConfirmationModal(ctx context.Context, settings ConfirmationSettings) error {
	return c.impl.ShowConfirmationModal(ctx, settings)
}

// ShowAlert displays an alert and blocks until it is dismissed.
func (c *clientWrapper) ShowAlert(ctx context.Context, settings AlertSettings) (string, error) {
	return c.impl.ShowAlert(ctx, settings)
}

// ShowLoadingIndicator asks the host to show its loading indicator.
func (c *clientWrapper) ShowLoadingIndicator(ctx context.Context) error {
	return c.impl.ShowLoadingIndicator(ctx)
}

// HideLoadingIndicator asks the host to hide its loading indicator.
func (c *clientWrapper) HideLoadingIndicator(ctx context.Context) error {
	return c.impl.HideLoadingIndicator(ctx)
}

// CloseCurrentModal asks the host to close the modal this frame runs in.
func (c *clientWrapper) CloseCurrentModal(ctx context.Context) error {
	return c.impl.CloseCurrentModal(ctx)
}

// AddBackdrop asks the host to put a backdrop behind the frame.
func (c *clientWrapper) AddBackdrop(ctx context.Context) error {
	return c.impl.AddBackdrop(ctx)
}

// RemoveBackdrop asks the host to remove the backdrop.
func (c *clientWrapper) RemoveBackdrop(ctx context.Context) error {
	return c.impl.RemoveBackdrop(ctx)
}

// SetDirtyStatus reports whether the frame holds unsaved changes.
func (c *clientWrapper) SetDirtyStatus(ctx context.Context, dirty bool) error {
	return c.impl.SetDirtyStatus(ctx, dirty)
}

// SetCurrentLocale asks the host to switch the active locale.
func (c *clientWrapper) SetCurrentLocale(ctx context.Context, locale string) error {
	return c.impl.SetCurrentLocale(ctx, locale)
}

// CurrentLocale returns the cached locale.
func (c *clientWrapper) CurrentLocale() string {
	return c.impl.CurrentLocale()
}

// CurrentTheme returns the cached theme.
func (c *clientWrapper) CurrentTheme() string {
	return c.impl.CurrentTheme()
}

// CSSVariables returns a copy of the host's CSS custom-property map.
func (c *clientWrapper) CSSVariables() map[string]string {
	return c.impl.CSSVariables()
}

// IsSplitView reports whether the frame runs inside a split view.
func (c *clientWrapper) IsSplitView() bool {
	return c.impl.IsSplitView()
}

// IsModal reports whether the frame runs inside a modal.
func (c *clientWrapper) IsModal() bool {
	return c.impl.IsModal()
}

// IsDrawer reports whether the frame runs inside a drawer.
func (c *clientWrapper) IsDrawer() bool {
	return c.impl.IsDrawer()
}

// ApplyCSSVariables renders the cached CSS custom properties into the
// configured document surface.
func (c *clientWrapper) ApplyCSSVariables() {
	c.impl.ApplyCSSVariables()
}

// Close disconnects from the host shell.
func (c *clientWrapper) Close() error {
	return c.impl.Close()
}
