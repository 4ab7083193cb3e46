// Package live re-issues a fetch on a fixed interval for the "live" mat schedule.
package live

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultInterval = 20 * time.Second

// Result is one fetch outcome. Seq increases by one per fetch, starting at 1.
type Result[T any] struct {
	Seq     uint64
	Value   T
	Err     error
	Fetched time.Time
}

// Poller fetches immediately and then every Interval until its context ends.
// Fetches run on the Run goroutine one at a time, so a slow fetch delays the next one
// instead of racing it. Ticks and triggers that arrive during a fetch collapse into one.
type Poller[T any] struct {
	Interval time.Duration
	Fetch    func(ctx context.Context) (T, error)
	Log      *zap.Logger

	trigger chan struct{}
}

func NewPoller[T any](interval time.Duration, fetch func(ctx context.Context) (T, error)) *Poller[T] {
	return &Poller[T]{
		Interval: interval,
		Fetch:    fetch,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger asks for a refresh ahead of the next tick. It never blocks, and is a no-op on a
// Poller not built with NewPoller.
func (p *Poller[T]) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done and returns ctx.Err(). onResult is called on the Run
// goroutine after every fetch; a fetch cut short by cancellation is not reported.
func (p *Poller[T]) Run(ctx context.Context, onResult func(Result[T])) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var seq uint64
	for {
		v, err := p.Fetch(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		seq++
		if err != nil {
			log.Warn("poll fetch failed", zap.Uint64("seq", seq), zap.Error(err))
		}
		onResult(Result[T]{Seq: seq, Value: v, Err: err, Fetched: time.Now()})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-p.trigger:
			ticker.Reset(interval)
		}
		drain(ticker.C)
	}
}

func drain(c <-chan time.Time) {
	select {
	case <-c:
	default:
	}
}
