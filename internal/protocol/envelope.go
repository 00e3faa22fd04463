package protocol

import "encoding/json"

// Envelope is the wire frame exchanged with the host shell.
//
// Wire format:
//
//	{
//	  "msg": "ux.show-alert",
//	  "data": {
//	    "id": "01J3ZK...",
//	    "text": "Saved."
//	  }
//	}
//
// The msg field discriminates the message kind; the data payload shape is
// kind-specific.
type Envelope struct {
	// Msg discriminates the message kind.
	Msg string `json:"msg"`

	// Data carries the kind-specific payload. May be nil for kinds that
	// need no payload (e.g. hiding the loading indicator).
	Data map[string]any `json:"data,omitempty"`
}

// Encode marshals the envelope for the transport.
func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// EnvelopeFromMap builds an Envelope from a decoded transport message.
// Returns false if the map carries no msg discriminator.
func EnvelopeFromMap(m map[string]any) (Envelope, bool) {
	msg, ok := m["msg"].(string)
	if !ok || msg == "" {
		return Envelope{}, false
	}

	data, _ := m["data"].(map[string]any)

	return Envelope{Msg: msg, Data: data}, true
}
