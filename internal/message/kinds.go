// Package message defines the message kinds and payload types exchanged with
// the host shell, plus payload sanitization and validation.
package message

import "time"

// Outbound message kinds sent to the host shell.
const (
	// KindShowLoadingIndicator asks the host to show its loading indicator.
	KindShowLoadingIndicator = "ux.show-loading-indicator"

	// KindHideLoadingIndicator asks the host to hide its loading indicator.
	KindHideLoadingIndicator = "ux.hide-loading-indicator"

	// KindCloseModal asks the host to close the modal this frame runs in.
	KindCloseModal = "ux.close-modal"

	// KindAddBackdrop asks the host to put a backdrop behind the frame.
	KindAddBackdrop = "ux.add-backdrop"

	// KindRemoveBackdrop asks the host to remove the backdrop.
	KindRemoveBackdrop = "ux.remove-backdrop"

	// KindSetDirtyStatus reports unsaved changes to the host.
	KindSetDirtyStatus = "ux.set-dirty-status"

	// KindSetCurrentLocale asks the host to switch the active locale.
	KindSetCurrentLocale = "ux.set-current-locale"

	// KindShowConfirmationModal asks the host to open a confirmation modal.
	KindShowConfirmationModal = "ux.show-confirmation-modal"

	// KindShowAlert asks the host to display an alert.
	KindShowAlert = "ux.show-alert"
)

// Inbound message kinds received from the host shell.
const (
	// KindHideConfirmationModal settles an open confirmation modal.
	// Data: {"confirmed": bool}.
	KindHideConfirmationModal = "ux.hide-confirmation-modal"

	// KindHideAlert settles an open alert. Data: {"id": string} plus an
	// optional "dismissKey" naming the inline link the user activated.
	KindHideAlert = "ux.hide-alert"

	// KindContextUpdate carries a fresh ambient context snapshot from the
	// host (locale, theme, CSS variables, placement flags).
	KindContextUpdate = "lifecycle.context-update"

	// KindLocaleChanged announces a locale change made by the host itself.
	// Data: {"currentLocale": string}.
	KindLocaleChanged = "lifecycle.current-locale-changed"
)

// MinCloseAfter is the smallest auto-close duration the host accepts for
// alerts. Shorter durations are dropped and the alert becomes
// manual-dismiss only.
const MinCloseAfter = 100 * time.Millisecond
