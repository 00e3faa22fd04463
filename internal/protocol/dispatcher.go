package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Transport defines the minimal interface needed for dispatcher operations.
//
// This interface is satisfied by the WebSocket bridge but allows for testing
// with mock transports.
type Transport interface {
	ReadMessages(ctx context.Context) (<-chan map[string]any, <-chan error)
	SendMessage(ctx context.Context, data []byte) error
}

// Handler receives an inbound envelope for a subscribed message kind.
//
// Handlers run on the dispatcher's read loop, so inbound events are
// observed in delivery order. Handlers must not block.
type Handler func(env Envelope)

// subscription is one registered listener for a message kind.
type subscription struct {
	id      string
	kind    string
	handler Handler
	once    bool
}

// Dispatcher routes inbound envelopes from the host shell to subscribers
// and sends outbound envelopes through the transport.
//
// The Dispatcher handles:
//   - Sending outbound envelopes (fire-and-forget from its perspective)
//   - Decoding inbound transport messages into envelopes
//   - Delivering envelopes to subscribers by message kind, in order
//   - One-shot subscriptions that remove themselves before first delivery
//
// The Dispatcher must be started with Start() before use and manages its
// own goroutine for reading and routing messages.
type Dispatcher struct {
	log       *slog.Logger
	transport Transport

	// Subscription registry, keyed by message kind
	subsMu sync.RWMutex
	subs   map[string][]*subscription

	// Fatal error handling - stores error and broadcasts via done channel
	errMu    sync.RWMutex
	fatalErr error

	// Lifecycle management
	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// NewDispatcher creates a new dispatcher over the given transport.
//
// The logger receives debug, info, and warn messages during routing. The
// transport must be connected before calling Start().
func NewDispatcher(log *slog.Logger, transport Transport) *Dispatcher {
	return &Dispatcher{
		log:       log.With("component", "dispatcher"),
		transport: transport,
		subs:      make(map[string][]*subscription, 8),
		done:      make(chan struct{}),
	}
}

// closeDone safely closes the done channel exactly once.
func (d *Dispatcher) closeDone() {
	d.closeOnce.Do(func() {
		close(d.done)
	})
}

// SetFatalError stores a fatal error and broadcasts to all waiters by closing done.
func (d *Dispatcher) SetFatalError(err error) {
	d.errMu.Lock()

	if d.fatalErr == nil {
		d.fatalErr = err
	}

	d.errMu.Unlock()

	d.closeDone()
}

// FatalError returns the fatal error if one occurred.
func (d *Dispatcher) FatalError() error {
	d.errMu.RLock()
	defer d.errMu.RUnlock()

	return d.fatalErr
}

// Done returns a channel that is closed when the dispatcher stops.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Start begins reading messages from the transport and routing envelopes.
//
// This method spawns a goroutine that reads from the transport and delivers
// envelopes to subscribers. The goroutine stops when the context is
// cancelled or the transport is closed.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.log.Debug("Starting dispatcher")

	messages, errs := d.transport.ReadMessages(ctx)

	d.wg.Add(1)

	go d.readLoop(ctx, messages, errs)

	d.log.Info("Dispatcher started")

	return nil
}

// Stop gracefully shuts down the dispatcher.
//
// This method signals the read loop to stop and waits for completion.
// It's safe to call Stop multiple times.
func (d *Dispatcher) Stop() {
	d.log.Debug("Stopping dispatcher")

	d.closeDone()
	d.wg.Wait()
	d.log.Info("Dispatcher stopped")
}

// Send encodes and sends one envelope to the host shell.
//
// Delivery is fire-and-forget: the transport is assumed reliable and
// ordered relative to other sends from the same caller, and no reply is
// awaited. Correlated callers register their pending entry before calling
// Send so a fast round trip cannot be missed.
func (d *Dispatcher) Send(ctx context.Context, msg string, data map[string]any) error {
	env := &Envelope{Msg: msg, Data: data}

	payload, err := env.Encode()
	if err != nil {
		d.log.Error("Failed to encode envelope", "msg", msg, "error", err)

		return fmt.Errorf("encode envelope: %w", err)
	}

	if err := d.transport.SendMessage(ctx, payload); err != nil {
		d.log.Error("Failed to send envelope", "msg", msg, "error", err)

		return fmt.Errorf("send envelope: %w", err)
	}

	d.log.Debug("Envelope sent", "msg", msg)

	return nil
}

// Subscribe registers a handler for a message kind and returns its listener id.
//
// Multiple handlers may be subscribed to the same kind; they are invoked in
// subscription order.
func (d *Dispatcher) Subscribe(kind string, handler Handler) string {
	return d.subscribe(kind, handler, false)
}

// SubscribeOnce registers a handler that is removed before its first
// invocation, so it fires at most once.
func (d *Dispatcher) SubscribeOnce(kind string, handler Handler) string {
	return d.subscribe(kind, handler, true)
}

func (d *Dispatcher) subscribe(kind string, handler Handler, once bool) string {
	sub := &subscription{
		id:      uuid.NewString(),
		kind:    kind,
		handler: handler,
		once:    once,
	}

	d.subsMu.Lock()
	d.subs[kind] = append(d.subs[kind], sub)
	d.subsMu.Unlock()

	d.log.Debug("Subscription added", "kind", kind, "listener_id", sub.id, "once", once)

	return sub.id
}

// Unsubscribe removes a listener by id. Unknown ids are a no-op.
func (d *Dispatcher) Unsubscribe(listenerID string) {
	d.subsMu.Lock()
	defer d.subsMu.Unlock()

	for kind, subs := range d.subs {
		for i, sub := range subs {
			if sub.id != listenerID {
				continue
			}

			d.subs[kind] = append(subs[:i:i], subs[i+1:]...)
			d.log.Debug("Subscription removed", "kind", kind, "listener_id", listenerID)

			return
		}
	}
}

// readLoop reads messages from the transport and routes envelopes.
func (d *Dispatcher) readLoop(
	ctx context.Context,
	messages <-chan map[string]any,
	errs <-chan error,
) {
	defer d.wg.Done()
	defer d.log.Debug("Dispatcher read loop stopped")

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				d.log.Debug("Message channel closed")
				d.closeDone()

				return
			}

			d.dispatch(msg)

		case err, ok := <-errs:
			if !ok {
				d.log.Debug("Error channel closed")
				d.closeDone()

				return
			}

			if err != nil {
				d.log.Debug("Transport error in dispatcher", "error", err)
				d.SetFatalError(err)

				return
			}

		case <-d.done:
			d.log.Debug("Dispatcher stop signal received")

			return

		case <-ctx.Done():
			d.log.Debug("Context cancelled in dispatcher read loop")
			d.closeDone()

			return
		}
	}
}

// dispatch decodes one transport message and delivers it to subscribers.
func (d *Dispatcher) dispatch(msg map[string]any) {
	env, ok := EnvelopeFromMap(msg)
	if !ok {
		d.log.Warn("Inbound message missing msg discriminator")

		return
	}

	// Claim the subscriber list for this kind; one-shot subscriptions are
	// removed before their handler runs.
	d.subsMu.Lock()

	subs := d.subs[env.Msg]
	if len(subs) == 0 {
		d.subsMu.Unlock()
		d.log.Debug("No subscribers for message kind", "msg", env.Msg)

		return
	}

	invoked := make([]*subscription, len(subs))
	copy(invoked, subs)

	remaining := subs[:0:0]

	for _, sub := range subs {
		if !sub.once {
			remaining = append(remaining, sub)
		}
	}

	d.subs[env.Msg] = remaining
	d.subsMu.Unlock()

	d.log.Debug("Dispatching envelope", "msg", env.Msg, "subscribers", len(invoked))

	for _, sub := range invoked {
		sub.handler(env)
	}
}
