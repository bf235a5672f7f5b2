package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu      sync.Mutex
	results []Result[string]
	got     chan struct{}
}

func newCollector() *collector {
	return &collector{got: make(chan struct{}, 16)}
}

func (c *collector) deliver(r Result[string]) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	c.got <- struct{}{}
}

func (c *collector) snapshot() []Result[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result[string](nil), c.results...)
}

func (c *collector) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.got:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func echo(ctx context.Context, q string) (string, error) {
	return "results for " + q, nil
}

func TestDebouncer_CoalescesRapidInput(t *testing.T) {
	var calls atomic.Int32
	fetch := func(ctx context.Context, q string) (string, error) {
		calls.Add(1)
		return echo(ctx, q)
	}

	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, fetch, c.deliver)
	defer d.Close()

	d.Submit("d")
	d.Submit("dr")
	d.Submit("dra")
	d.Submit("drag")
	d.Submit("dragon")
	c.wait(t)

	time.Sleep(60 * time.Millisecond)
	res := c.snapshot()
	require.Len(t, res, 1)
	assert.Equal(t, "dragon", res[0].Query)
	assert.Equal(t, "results for dragon", res[0].Value)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_CancelsInFlightAndDropsStale(t *testing.T) {
	slowStarted := make(chan struct{})
	var slowCancelled atomic.Bool
	var dropped atomic.Int32

	fetch := func(ctx context.Context, q string) (string, error) {
		if q == "slow" {
			close(slowStarted)
			<-ctx.Done()
			slowCancelled.Store(true)
			return "", ctx.Err()
		}
		return echo(ctx, q)
	}

	c := newCollector()
	d := NewDebouncer(10*time.Millisecond, fetch, c.deliver,
		WithDropHook[string](func(string) { dropped.Add(1) }))
	defer d.Close()

	d.Submit("slow")
	<-slowStarted
	d.Submit("fast")
	c.wait(t)

	require.Eventually(t, func() bool { return dropped.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.True(t, slowCancelled.Load())

	res := c.snapshot()
	require.Len(t, res, 1)
	assert.Equal(t, "fast", res[0].Query)
}

func TestDebouncer_DeliversErrors(t *testing.T) {
	fetch := func(ctx context.Context, q string) (string, error) {
		return "", assert.AnError
	}
	c := newCollector()
	d := NewDebouncer(5*time.Millisecond, fetch, c.deliver)
	defer d.Close()

	d.Submit("x")
	c.wait(t)
	assert.ErrorIs(t, c.snapshot()[0].Err, assert.AnError)
}

func TestDebouncer_CloseStopsEverything(t *testing.T) {
	c := newCollector()
	d := NewDebouncer(20*time.Millisecond, echo, c.deliver)

	d.Submit("never")
	d.Close()
	d.Submit("after close")

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, c.snapshot())
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, echo, func(Result[string]) {})
	assert.Equal(t, DefaultDelay, d.delay)
}
