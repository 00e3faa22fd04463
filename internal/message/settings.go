package message

import "time"

// AlertType classifies an alert for host-side styling.
type AlertType string

const (
	// AlertInfo is a neutral informational alert.
	AlertInfo AlertType = "info"
	// AlertSuccess signals a completed action.
	AlertSuccess AlertType = "success"
	// AlertWarning signals a recoverable problem.
	AlertWarning AlertType = "warning"
	// AlertError signals a failed action.
	AlertError AlertType = "error"
)

// ConfirmationSettings configures a confirmation modal shown by the host.
type ConfirmationSettings struct {
	// Type styles the modal ("confirmation", "success", "warning", "error").
	Type string `json:"type,omitempty"`

	// Header is the modal title.
	Header string `json:"header,omitempty"`

	// Body is the modal text.
	Body string `json:"body,omitempty"`

	// ButtonConfirm labels the confirm button.
	ButtonConfirm string `json:"buttonConfirm,omitempty"`

	// ButtonDismiss labels the dismiss button.
	ButtonDismiss string `json:"buttonDismiss,omitempty"`
}

// Payload builds the outbound data payload for the confirmation modal.
func (s ConfirmationSettings) Payload() map[string]any {
	data := make(map[string]any, 5)

	if s.Type != "" {
		data["type"] = s.Type
	}

	if s.Header != "" {
		data["header"] = s.Header
	}

	if s.Body != "" {
		data["body"] = s.Body
	}

	if s.ButtonConfirm != "" {
		data["buttonConfirm"] = s.ButtonConfirm
	}

	if s.ButtonDismiss != "" {
		data["buttonDismiss"] = s.ButtonDismiss
	}

	return data
}

// AlertLink is one inline link inside an alert text.
//
// The text references links by placeholder key; when the user activates a
// link carrying a DismissKey, the settlement event reports that key instead
// of the alert id.
type AlertLink struct {
	// URL is the link target.
	URL string `json:"url"`

	// DismissKey, when set, dismisses the alert and becomes the
	// settlement value.
	DismissKey string `json:"dismissKey,omitempty"`
}

// AlertSettings configures an alert shown by the host.
type AlertSettings struct {
	// Text is the alert body. Placeholders of the form {key} reference
	// entries in Links.
	Text string `json:"text"`

	// Type classifies the alert.
	Type AlertType `json:"type,omitempty"`

	// Links maps placeholder keys to inline links.
	Links map[string]AlertLink `json:"links,omitempty"`

	// CloseAfter auto-dismisses the alert after this duration. Durations
	// below MinCloseAfter are dropped with a warning and the alert stays
	// until dismissed manually.
	CloseAfter time.Duration `json:"-"`
}

// SanitizeCloseAfter validates the auto-close duration.
//
// It returns the duration to put on the wire and false when an undersized
// duration was dropped, so the caller can surface a warning. A zero
// duration means no auto-close and is always valid.
func (s AlertSettings) SanitizeCloseAfter() (time.Duration, bool) {
	if s.CloseAfter == 0 {
		return 0, true
	}

	if s.CloseAfter < MinCloseAfter {
		return 0, false
	}

	return s.CloseAfter, true
}

// Payload builds the outbound data payload for the alert, embedding the
// generated request id and the sanitized auto-close duration in
// milliseconds.
func (s AlertSettings) Payload(id string, closeAfter time.Duration) map[string]any {
	data := map[string]any{
		"id":   id,
		"text": s.Text,
	}

	if s.Type != "" {
		data["type"] = string(s.Type)
	}

	if len(s.Links) > 0 {
		links := make(map[string]any, len(s.Links))
		for key, link := range s.Links {
			entry := map[string]any{"url": link.URL}
			if link.DismissKey != "" {
				entry["dismissKey"] = link.DismissKey
			}

			links[key] = entry
		}

		data["links"] = links
	}

	if closeAfter > 0 {
		data["closeAfter"] = closeAfter.Milliseconds()
	}

	return data
}

// ConfirmationResult is the decoded settlement payload for a confirmation
// modal.
type ConfirmationResult struct {
	Confirmed bool
}

// ParseConfirmationResult decodes the data payload of a
// KindHideConfirmationModal envelope. A missing confirmed field counts as a
// dismissal.
func ParseConfirmationResult(data map[string]any) ConfirmationResult {
	confirmed, _ := data["confirmed"].(bool)

	return ConfirmationResult{Confirmed: confirmed}
}

// AlertResult is the decoded settlement payload for an alert.
type AlertResult struct {
	// ID is the request id the settlement refers to.
	ID string

	// DismissKey names the inline link the user activated, when any.
	DismissKey string
}

// Value returns the settlement value for the waiting caller: the dismiss
// key when present, the request id otherwise.
func (r AlertResult) Value() string {
	if r.DismissKey != "" {
		return r.DismissKey
	}

	return r.ID
}

// ParseAlertResult decodes the data payload of a KindHideAlert envelope.
// Returns false when the payload carries no alert id.
func ParseAlertResult(data map[string]any) (AlertResult, bool) {
	id, ok := data["id"].(string)
	if !ok || id == "" {
		return AlertResult{}, false
	}

	dismissKey, _ := data["dismissKey"].(string)

	return AlertResult{ID: id, DismissKey: dismissKey}, true
}
