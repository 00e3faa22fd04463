// Package uxsdk lets an embedded micro-frontend frame drive the UX chrome of
// its host shell: loading indicators, modals, backdrops, alerts, locale,
// theme, and dirty-state tracking.
//
// The SDK talks to the host over a message transport (a WebSocket bridge by
// default). Most operations are fire-and-forget notifications; confirmation
// modals and alerts are correlated requests that block until the host
// reports how the user settled them. The host also pushes ambient context
// (locale, theme, CSS variables, placement flags) which the SDK caches for
// synchronous reads.
//
// # Basic Usage
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
//	// Fire-and-forget chrome control.
//	_ = client.ShowLoadingIndicator(ctx)
//	_ = client.HideLoadingIndicator(ctx)
//
//	// Correlated request: blocks until the user decides.
//	err = client.ShowConfirmationModal(ctx, uxsdk.ConfirmationSettings{
//	    Header:        "Unsaved changes",
//	    Body:          "Discard your changes?",
//	    ButtonConfirm: "Discard",
//	    ButtonDismiss: "Keep editing",
//	})
//	if errors.Is(err, uxsdk.ErrConfirmationDismissed) {
//	    // user kept editing
//	}
//
// # Alerts
//
// Any number of alerts can be outstanding at once; each gets a generated id.
// The returned value is that id, or the dismiss key of the inline link the
// user activated:
//
//	key, err := client.ShowAlert(ctx, uxsdk.AlertSettings{
//	    Text:       "Deployment finished. {undo}",
//	    Type:       uxsdk.AlertSuccess,
//	    Links:      map[string]uxsdk.AlertLink{"undo": {URL: "/rollback", DismissKey: "undo"}},
//	    CloseAfter: 5 * time.Second,
//	})
//
// # Timeouts
//
// The SDK never times a correlated request out on its own: pass a context
// with a deadline if the caller needs one. Closing the client fails all
// pending requests with ErrDispatcherStopped.
package uxsdk
