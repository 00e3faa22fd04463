// Package protocol implements the message dispatcher that connects the SDK
// to the host shell transport.
//
// The dispatcher owns a single read loop over the transport, decodes inbound
// envelopes, and delivers them to subscribed handlers by message kind. It also
// provides the generic pending-request table used to correlate an outbound
// request with exactly one inbound settlement event.
//
// This package is internal; the public API in the root package wraps it.
package protocol
