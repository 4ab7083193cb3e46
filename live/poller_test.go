package live

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPollerFetchesImmediatelyAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	p := NewPoller(time.Millisecond, func(context.Context) (int, error) {
		return int(calls.Add(1)), nil
	})

	var seqs []uint64
	err := p.Run(ctx, func(r Result[int]) {
		seqs = append(seqs, r.Seq)
		assert.Equal(t, int(r.Seq), r.Value)
		if r.Seq == 3 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []uint64{1, 2, 3}, seqs)
}

func TestPollerNeverOverlapsFetches(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	var inFlight, maxInFlight, calls atomic.Int32
	p := NewPoller(time.Millisecond, func(ctx context.Context) (struct{}, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			cur := maxInFlight.Load()
			if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
				break
			}
		}
		calls.Add(1)
		select {
		case <-time.After(10 * time.Millisecond):
		case <-ctx.Done():
		}
		return struct{}{}, nil
	})

	err := p.Run(ctx, func(Result[struct{}]) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Greater(t, calls.Load(), int32(1))
}

func TestPollerReportsErrorsAndKeepsGoing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("boom")
	var calls atomic.Int32
	p := NewPoller(time.Millisecond, func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", boom
		}
		return "ok", nil
	})

	var got []Result[string]
	err := p.Run(ctx, func(r Result[string]) {
		got = append(got, r)
		if len(got) == 2 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, got, 2)
	assert.ErrorIs(t, got[0].Err, boom)
	assert.NoError(t, got[1].Err)
	assert.Equal(t, "ok", got[1].Value)
	assert.False(t, got[1].Fetched.IsZero())
}

func TestPollerTriggerRefreshesBeforeTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPoller(time.Hour, func(context.Context) (int, error) { return 0, nil })
	results := make(chan uint64, 4)
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx, func(r Result[int]) { results <- r.Seq })
	}()

	select {
	case seq := <-results:
		assert.Equal(t, uint64(1), seq)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial fetch")
	}

	p.Trigger()
	p.Trigger()

	select {
	case seq := <-results:
		assert.Equal(t, uint64(2), seq)
	case <-time.After(2 * time.Second):
		t.Fatal("trigger did not refresh")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPollerDropsResultOfCancelledFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(time.Hour, func(ctx context.Context) (int, error) {
		cancel()
		<-ctx.Done()
		return 0, ctx.Err()
	})

	called := false
	err := p.Run(ctx, func(Result[int]) { called = true })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
