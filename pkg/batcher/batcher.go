// Package batcher provides a generic buffered batch writer with rate limited flushes.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config controls when a batch is flushed.
type Config struct {
	// FlushSize flushes as soon as this many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered at this cadence.
	FlushInterval time.Duration
	// RPS limits flushes per second; zero or less disables the limit.
	RPS int
}

// Batcher buffers items and flushes them by size or interval.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	cfg    Config
	items  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// sendMu is held for reading by Add while it sends and for writing when
	// the loop seals the batcher, after which closed rejects new items.
	sendMu sync.RWMutex
	closed bool

	mu   sync.Mutex
	errs []error
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		flush:  flush,
		cfg:    cfg,
		items:  make(chan T, cfg.FlushSize*2),
		rl:     rl,
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes everything queued, waits for the loop to exit and returns the
// flush errors seen since Start.
func (b *Batcher[T]) Stop() error {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	return errors.Join(b.errs...)
}

// Add queues an item, blocking while the buffer is full. An item accepted
// with a nil error is always flushed, also when Stop races with Add.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.sendMu.RLock()
	defer b.sendMu.RUnlock()
	if b.closed {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

// seal rejects further Adds once no Add is mid-send. Items keep being passed
// to accept while waiting so blocked senders can finish.
func (b *Batcher[T]) seal(accept func(T)) {
	sealed := make(chan struct{})
	go func() {
		b.sendMu.Lock()
		b.closed = true
		b.sendMu.Unlock()
		close(sealed)
	}()

	for {
		select {
		case item := <-b.items:
			accept(item)
		case <-sealed:
			return
		}
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			b.mu.Lock()
			b.errs = append(b.errs, err)
			b.mu.Unlock()
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = make([]T, 0, b.cfg.FlushSize)
	}

	// drain seals the batcher and flushes everything accepted, detached from
	// ctx cancellation.
	drain := func() {
		final := context.WithoutCancel(ctx)
		accept := func(item T) {
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(final)
			}
		}
		b.seal(accept)
		for {
			select {
			case item := <-b.items:
				accept(item)
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
