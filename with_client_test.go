package uxsdk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithClient_RunsCallbackAndCleansUp(t *testing.T) {
	transport := newStubTransport()

	var received Client

	err := WithClient(context.Background(), func(c Client) error {
		received = c

		return c.ShowLoadingIndicator(context.Background())
	}, WithTransport(transport))

	require.NoError(t, err)
	require.NotNil(t, received)
	require.Len(t, transport.sentEnvelopes(), 1)

	// Client is closed after the callback returns.
	require.ErrorIs(t,
		received.ShowLoadingIndicator(context.Background()),
		ErrClientClosed,
	)
}

func TestWithClient_CallbackErrorPropagates(t *testing.T) {
	transport := newStubTransport()
	callbackErr := errors.New("callback failed")

	err := WithClient(context.Background(), func(Client) error {
		return callbackErr
	}, WithTransport(transport))

	require.ErrorIs(t, err, callbackErr)
}

func TestWithClient_StartFailurePropagates(t *testing.T) {
	err := WithClient(context.Background(), func(Client) error {
		t.Fatal("callback must not run when start fails")

		return nil
	})

	require.ErrorIs(t, err, ErrNoTransport)
}

func TestWithClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithClient(ctx, func(Client) error {
		return nil
	}, WithTransport(newStubTransport()))

	require.ErrorIs(t, err, context.Canceled)
}
