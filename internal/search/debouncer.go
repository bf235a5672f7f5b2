// Package search runs live searches with a debounce delay and
// abort-on-new-request semantics.
package search

import (
	"context"
	"sync"
	"time"
)

const DefaultDelay = 300 * time.Millisecond

type FetchFunc[T any] func(ctx context.Context, query string) (T, error)

type Result[T any] struct {
	Query string
	Value T
	Err   error
}

type Option[T any] func(*Debouncer[T])

// WithDropHook is called with the query of every result that was discarded
// because a newer submission superseded it.
func WithDropHook[T any](fn func(query string)) Option[T] {
	return func(d *Debouncer[T]) { d.onDrop = fn }
}

// Debouncer waits for input to settle before fetching. When a fetch starts,
// any fetch still in flight is cancelled, and only results for the most
// recent submission are delivered.
type Debouncer[T any] struct {
	delay   time.Duration
	fetch   FetchFunc[T]
	deliver func(Result[T])
	onDrop  func(query string)

	mu       sync.Mutex
	seq      uint64
	timer    *time.Timer
	inflight context.CancelFunc
	closed   bool

	deliverMu sync.Mutex
}

func NewDebouncer[T any](delay time.Duration, fetch FetchFunc[T], deliver func(Result[T]), opts ...Option[T]) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	d := &Debouncer[T]{
		delay:   delay,
		fetch:   fetch,
		deliver: deliver,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit restarts the debounce timer for query.
func (d *Debouncer[T]) Submit(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.run(seq, query) })
}

func (d *Debouncer[T]) run(seq uint64, query string) {
	d.mu.Lock()
	if d.closed || seq != d.seq {
		d.mu.Unlock()
		return
	}
	if d.inflight != nil {
		d.inflight()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.inflight = cancel
	d.mu.Unlock()

	value, err := d.fetch(ctx, query)

	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	current := !d.closed && seq == d.seq && ctx.Err() == nil
	if current {
		d.inflight = nil
	}
	d.mu.Unlock()
	cancel()

	if !current {
		if d.onDrop != nil {
			d.onDrop(query)
		}
		return
	}
	d.deliver(Result[T]{Query: query, Value: value, Err: err})
}

// Close stops the timer and cancels any fetch in flight. Nothing is delivered
// once Close returns. It must not be called from the deliver callback.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.inflight != nil {
		d.inflight()
		d.inflight = nil
	}
	d.mu.Unlock()

	// Wait out a delivery that passed its check before closed was set.
	d.deliverMu.Lock()
	d.deliverMu.Unlock()
}
