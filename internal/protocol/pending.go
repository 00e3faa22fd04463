package protocol

import "sync"

// Outcome is the settlement result delivered for a pending request.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Table tracks outstanding correlated requests by key.
//
// A key holds at most one entry. Settling removes the entry before the
// outcome is delivered, so a handler running during settlement never
// observes a stale entry. Settlement channels are buffered, so Settle
// never blocks on a waiter that has already given up.
//
// Keys are message kinds for single-instance request kinds, or generated
// request ids for kinds that allow multiple outstanding requests.
type Table[T any] struct {
	mu      sync.Mutex
	entries map[string]chan Outcome[T]
}

// NewTable creates an empty pending-request table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{entries: make(map[string]chan Outcome[T], 4)}
}

// Await registers a pending request under key and returns the channel its
// outcome will be delivered on.
//
// If an entry already exists for the key, it is replaced and replaced=true
// is returned. The displaced waiter's channel never receives an outcome;
// the caller decides whether that is a warning condition.
func (t *Table[T]) Await(key string) (<-chan Outcome[T], bool) {
	ch := make(chan Outcome[T], 1)

	t.mu.Lock()
	_, replaced := t.entries[key]
	t.entries[key] = ch
	t.mu.Unlock()

	return ch, replaced
}

// Settle removes the entry for key and delivers the outcome to its waiter.
// Returns false if no entry was pending for the key (duplicate or late
// settlement events are ignored by the caller).
func (t *Table[T]) Settle(key string, value T, err error) bool {
	t.mu.Lock()

	ch, ok := t.entries[key]
	if ok {
		delete(t.entries, key)
	}

	t.mu.Unlock()

	if !ok {
		return false
	}

	ch <- Outcome[T]{Value: value, Err: err}

	return true
}

// Drop removes the entry for key without settling it. Used when a waiter
// abandons its request (context cancellation).
func (t *Table[T]) Drop(key string) {
	t.mu.Lock()
	delete(t.entries, key)
	t.mu.Unlock()
}

// DropIf removes the entry for key only when it still belongs to the waiter
// holding ch. An abandoned waiter giving up on a key that allows replacement
// must not delete the entry a later request has installed under the same key.
func (t *Table[T]) DropIf(key string, ch <-chan Outcome[T]) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cur, ok := t.entries[key]; ok && cur == ch {
		delete(t.entries, key)
	}
}

// FailAll settles every pending entry with err and empties the table.
// Called on dispatcher shutdown so no waiter is left hanging.
func (t *Table[T]) FailAll(err error) {
	t.mu.Lock()
	entries := t.entries
	t.entries = make(map[string]chan Outcome[T], 4)
	t.mu.Unlock()

	var zero T
	for _, ch := range entries {
		ch <- Outcome[T]{Value: zero, Err: err}
	}
}

// Len reports the number of outstanding requests.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
