package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBridgeConnectionError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := &BridgeConnectionError{URL: "ws://localhost:4200/ux", Err: cause}

	require.Contains(t, err.Error(), "ws://localhost:4200/ux")
	require.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
	require.True(t, err.IsUXError())
}

func TestEnvelopeDecodeError_TruncatesRaw(t *testing.T) {
	err := &EnvelopeDecodeError{
		Raw: strings.Repeat("x", 500),
		Err: stderrors.New("unexpected end of JSON input"),
	}

	require.Less(t, len(err.Error()), 200)
	require.Contains(t, err.Error(), "...")
}

func TestConfigError(t *testing.T) {
	cause := stderrors.New("must not be empty")

	withField := &ConfigError{Field: "url", Err: cause}
	require.Contains(t, withField.Error(), "url")
	require.ErrorIs(t, withField, cause)

	withoutField := &ConfigError{Err: cause}
	require.Contains(t, withoutField.Error(), "config:")
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrClientNotConnected,
		ErrClientAlreadyConnected,
		ErrClientClosed,
		ErrNoTransport,
		ErrTransportNotConnected,
		ErrDispatcherStopped,
		ErrConfirmationDismissed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}

			require.NotErrorIs(t, a, b)
		}
	}
}
