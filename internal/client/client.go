// Package client implements the UX client behind the public API.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/framekit/frame-ux-sdk-go/internal/config"
	"github.com/framekit/frame-ux-sdk-go/internal/errors"
	"github.com/framekit/frame-ux-sdk-go/internal/lifecycle"
	"github.com/framekit/frame-ux-sdk-go/internal/message"
	"github.com/framekit/frame-ux-sdk-go/internal/protocol"
	"github.com/framekit/frame-ux-sdk-go/internal/styles"
	"github.com/framekit/frame-ux-sdk-go/internal/wsbridge"
)

// confirmationKey is the pending-table key for the confirmation modal.
// The kind allows at most one outstanding request, so the message kind
// itself is the key.
const confirmationKey = message.KindShowConfirmationModal

// Client drives the host shell's UX chrome from inside an embedded frame.
//
// Correlated requests (confirmation modals, alerts) block until the host
// settles them; the caller's context is the only timeout policy. Everything
// else is fire-and-forget sends or reads of the cached ambient context.
type Client struct {
	log        *slog.Logger
	transport  config.Transport
	dispatcher *protocol.Dispatcher
	store      *lifecycle.Store
	document   config.Document
	options    *config.Options

	// Pending correlated requests. Confirmations hold at most one entry;
	// alerts are keyed by generated id and may hold many.
	confirmations *protocol.Table[struct{}]
	alerts        *protocol.Table[string]

	// Errgroup for goroutine management
	eg *errgroup.Group

	// Lifecycle management
	mu        sync.Mutex
	connected bool
	closed    bool
	closeOnce sync.Once
}

// New creates a new UX client.
//
// The client is not connected after creation. Call Start() with options to connect.
func New() *Client {
	return &Client{
		store:         lifecycle.NewStore(),
		document:      styles.NewMemDocument(),
		confirmations: protocol.NewTable[struct{}](),
		alerts:        protocol.NewTable[string](),
	}
}

// initializeCore sets up logging, the document surface, and the transport.
func (c *Client) initializeCore(ctx context.Context, options *config.Options) error {
	if options == nil {
		options = &config.Options{}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.log = log.With("component", "client")
	c.options = options

	if options.Document != nil {
		c.document = options.Document
	}

	transport, err := c.buildTransport(log, options)
	if err != nil {
		return err
	}

	if err := transport.Start(ctx); err != nil {
		return fmt.Errorf("start transport: %w", err)
	}

	c.transport = transport

	return nil
}

// buildTransport picks the injected transport or dials the WebSocket bridge.
func (c *Client) buildTransport(log *slog.Logger, options *config.Options) (config.Transport, error) {
	if options.Transport != nil {
		c.log.Debug("Using injected custom transport")

		return options.Transport, nil
	}

	switch {
	case options.BridgeURL != "":
		cfg := &config.BridgeConfig{URL: options.BridgeURL, Origin: options.Origin}

		return wsbridge.New(log, cfg), nil

	case options.BridgeConfigPath != "":
		cfg, err := config.LoadBridgeConfig(options.BridgeConfigPath)
		if err != nil {
			return nil, err
		}

		if cfg.Origin == "" {
			cfg.Origin = options.Origin
		}

		return wsbridge.New(log, cfg), nil

	default:
		return nil, errors.ErrNoTransport
	}
}

// Start connects to the host shell and begins routing inbound events.
func (c *Client) Start(ctx context.Context, options *config.Options) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrClientClosed
	}

	if c.connected {
		return errors.ErrClientAlreadyConnected
	}

	if err := c.initializeCore(ctx, options); err != nil {
		return err
	}

	c.log.Info("Starting dispatcher")

	c.dispatcher = protocol.NewDispatcher(c.log, c.transport)

	// Settlement and lifecycle subscriptions must exist before the read
	// loop starts so a fast host cannot slip an event past us.
	c.dispatcher.Subscribe(message.KindHideConfirmationModal, c.onConfirmationSettled)
	c.dispatcher.Subscribe(message.KindHideAlert, c.onAlertSettled)
	c.dispatcher.Subscribe(message.KindContextUpdate, c.onContextUpdate)
	c.dispatcher.Subscribe(message.KindLocaleChanged, c.onLocaleChanged)

	if err := c.dispatcher.Start(ctx); err != nil {
		return fmt.Errorf("start dispatcher: %w", err)
	}

	// Errgroup with background context: the caller's ctx may carry an
	// initialization timeout, but the client stays connected until Close().
	c.eg, _ = errgroup.WithContext(context.Background())

	dispatcher := c.dispatcher

	c.eg.Go(func() error {
		// When the dispatcher stops, no settlement can ever arrive; fail
		// every pending request instead of leaving waiters hung.
		<-dispatcher.Done()

		failure := errors.ErrDispatcherStopped
		if fatal := dispatcher.FatalError(); fatal != nil {
			failure = fmt.Errorf("%w: %w", errors.ErrDispatcherStopped, fatal)
		}

		c.confirmations.FailAll(failure)
		c.alerts.FailAll(failure)

		return dispatcher.FatalError()
	})

	c.connected = true
	c.log.Info("Client started successfully")

	return nil
}

// ensureConnected checks the client lifecycle state.
func (c *Client) ensureConnected() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrClientClosed
	}

	if !c.connected {
		return errors.ErrClientNotConnected
	}

	return nil
}

// ===== Correlated requests =====

// ShowConfirmationModal asks the host to open a confirmation modal and
// blocks until the user settles it.
//
// Returns nil when the user confirms and ErrConfirmationDismissed when they
// dismiss. At most one confirmation can be outstanding: reissuing before
// settlement abandons the previous caller, which then waits on its own
// context (the host settles only the latest modal).
func (c *Client) ShowConfirmationModal(ctx context.Context, settings message.ConfirmationSettings) error {
	if err := c.ensureConnected(); err != nil {
		return err
	}

	outcome, replaced := c.confirmations.Await(confirmationKey)
	if replaced {
		c.log.Warn("Confirmation modal reissued before settlement, abandoning previous request")
	}

	if err := c.dispatcher.Send(ctx, message.KindShowConfirmationModal, settings.Payload()); err != nil {
		// The key is shared between reissues, so only remove the entry if
		// it is still ours; a later caller may have replaced it already.
		c.confirmations.DropIf(confirmationKey, outcome)

		return err
	}

	select {
	case out := <-outcome:
		return out.Err

	case <-ctx.Done():
		c.confirmations.DropIf(confirmationKey, outcome)

		return ctx.Err()
	}
}

// ShowAlert asks the host to display an alert and blocks until it is
// dismissed.
//
// Each call generates a fresh alert id, so any number of alerts can be
// outstanding at once. The returned value is the alert id, or the dismiss
// key of the inline link the user activated when the settlement event
// carries one.
//
// An auto-close duration below 100ms is dropped with a warning; the alert
// is then dismissed manually only.
func (c *Client) ShowAlert(ctx context.Context, settings message.AlertSettings) (string, error) {
	if err := c.ensureConnected(); err != nil {
		return "", err
	}

	closeAfter, ok := settings.SanitizeCloseAfter()
	if !ok {
		c.log.Warn("Alert closeAfter below minimum, dropped",
			"close_after", settings.CloseAfter,
			"minimum", message.MinCloseAfter,
		)
	}

	id := ulid.Make().String()

	outcome, _ := c.alerts.Await(id)

	if err := c.dispatcher.Send(ctx, message.KindShowAlert, settings.Payload(id, closeAfter)); err != nil {
		c.alerts.Drop(id)

		return "", err
	}

	c.log.Debug("Alert shown, waiting for settlement", "alert_id", id)

	select {
	case out := <-outcome:
		return out.Value, out.Err

	case <-ctx.Done():
		c.alerts.Drop(id)

		return "", ctx.Err()
	}
}

// ===== Settlement handlers (run on the dispatcher read loop) =====

func (c *Client) onConfirmationSettled(env protocol.Envelope) {
	if err := message.ValidateSettlement(env.Msg, env.Data); err != nil {
		c.log.Warn("Ignoring invalid settlement event", "msg", env.Msg, "error", err)

		return
	}

	result := message.ParseConfirmationResult(env.Data)

	var settleErr error
	if !result.Confirmed {
		settleErr = errors.ErrConfirmationDismissed
	}

	if !c.confirmations.Settle(confirmationKey, struct{}{}, settleErr) {
		c.log.Warn("No pending confirmation for settlement event")
	}
}

func (c *Client) onAlertSettled(env protocol.Envelope) {
	if err := message.ValidateSettlement(env.Msg, env.Data); err != nil {
		c.log.Warn("Ignoring invalid settlement event", "msg", env.Msg, "error", err)

		return
	}

	result, ok := message.ParseAlertResult(env.Data)
	if !ok {
		c.log.Warn("Alert settlement event missing id")

		return
	}

	if !c.alerts.Settle(result.ID, result.Value(), nil) {
		c.log.Warn("No pending alert for settlement event", "alert_id", result.ID)
	}
}

func (c *Client) onContextUpdate(env protocol.Envelope) {
	c.store.Apply(lifecycle.SnapshotFromPayload(env.Data))
	c.log.Debug("Ambient context updated", "locale", c.store.CurrentLocale())
}

func (c *Client) onLocaleChanged(env protocol.Envelope) {
	if err := message.ValidateSettlement(env.Msg, env.Data); err != nil {
		c.log.Warn("Ignoring invalid locale event", "error", err)

		return
	}

	locale, _ := env.Data["currentLocale"].(string)
	c.store.SetLocale(locale)
}

// ===== Fire-and-forget operations =====

// send issues one fire-and-forget envelope.
func (c *Client) send(ctx context.Context, kind string, data map[string]any) error {
	if err := c.ensureConnected(); err != nil {
		return err
	}

	return c.dispatcher.Send(ctx, kind, data)
}

// ShowLoadingIndicator asks the host to show its loading indicator.
func (c *Client) ShowLoadingIndicator(ctx context.Context) error {
	return c.send(ctx, message.KindShowLoadingIndicator, nil)
}

// HideLoadingIndicator asks the host to hide its loading indicator.
func (c *Client) HideLoadingIndicator(ctx context.Context) error {
	return c.send(ctx, message.KindHideLoadingIndicator, nil)
}

// CloseCurrentModal asks the host to close the modal this frame runs in.
func (c *Client) CloseCurrentModal(ctx context.Context) error {
	return c.send(ctx, message.KindCloseModal, nil)
}

// AddBackdrop asks the host to put a backdrop behind the frame.
func (c *Client) AddBackdrop(ctx context.Context) error {
	return c.send(ctx, message.KindAddBackdrop, nil)
}

// RemoveBackdrop asks the host to remove the backdrop.
func (c *Client) RemoveBackdrop(ctx context.Context) error {
	return c.send(ctx, message.KindRemoveBackdrop, nil)
}

// SetDirtyStatus reports whether the frame holds unsaved changes.
func (c *Client) SetDirtyStatus(ctx context.Context, dirty bool) error {
	return c.send(ctx, message.KindSetDirtyStatus, map[string]any{"dirty": dirty})
}

// SetCurrentLocale asks the host to switch the active locale. The cached
// locale updates when the host announces the change back.
func (c *Client) SetCurrentLocale(ctx context.Context, locale string) error {
	return c.send(ctx, message.KindSetCurrentLocale, map[string]any{"locale": locale})
}

// ===== Ambient context reads =====

// CurrentLocale returns the active locale, or "" before the first context
// event.
func (c *Client) CurrentLocale() string {
	return c.store.CurrentLocale()
}

// CurrentTheme returns the active theme, or "" before the first context
// event.
func (c *Client) CurrentTheme() string {
	return c.store.CurrentTheme()
}

// CSSVariables returns a copy of the host's CSS custom-property map.
func (c *Client) CSSVariables() map[string]string {
	return c.store.CSSVariables()
}

// IsSplitView reports whether the frame runs inside a split view.
func (c *Client) IsSplitView() bool {
	return c.store.SplitView()
}

// IsModal reports whether the frame runs inside a modal.
func (c *Client) IsModal() bool {
	return c.store.Modal()
}

// IsDrawer reports whether the frame runs inside a drawer.
func (c *Client) IsDrawer() bool {
	return c.store.Drawer()
}

// ApplyCSSVariables renders the cached CSS custom properties into the
// document surface, replacing any previously injected block.
func (c *Client) ApplyCSSVariables() {
	styles.Apply(documentAdapter{c.document}, c.store.CSSVariables())
}

// documentAdapter bridges config.Document to styles.Document.
type documentAdapter struct {
	doc config.Document
}

func (a documentAdapter) RemoveStyles(marker string)     { a.doc.RemoveStyles(marker) }
func (a documentAdapter) AppendStyle(marker, css string) { a.doc.AppendStyle(marker, css) }

// PendingAlerts reports the number of alerts awaiting settlement.
func (c *Client) PendingAlerts() int {
	return c.alerts.Len()
}

// Close disconnects from the host shell and fails all pending requests.
//
// Clients are single-use; create a new one with New() to reconnect.
// It's safe to call Close multiple times.
func (c *Client) Close() error {
	var closeErr error

	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		wasConnected := c.connected
		c.connected = false
		c.mu.Unlock()

		if !wasConnected {
			return
		}

		c.log.Info("Closing client")

		if c.dispatcher != nil {
			c.dispatcher.Stop()
		}

		if c.transport != nil {
			closeErr = c.transport.Close()
		}

		if c.eg != nil {
			if err := c.eg.Wait(); err != nil && closeErr == nil {
				closeErr = err
			}
		}

		c.log.Info("Client closed")
	})

	return closeErr
}
