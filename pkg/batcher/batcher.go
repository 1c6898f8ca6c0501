// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes batching behavior.
type Config struct {
	// FlushSize triggers a flush once the buffer reaches this many items.
	FlushSize int
	// FlushInterval triggers a flush even when the buffer is below FlushSize.
	FlushInterval time.Duration
	// RPS caps flush callback invocations per second.
	RPS int
}

// Batcher buffers items and flushes them either by size or interval.
// Flush errors are logged and the buffered items dropped; the loop keeps
// running.
type Batcher[T any] struct {
	flush    func(context.Context, []T) error
	itemsCh  chan T
	cfg      Config
	rl       ratelimit.Limiter
	logger   *zap.Logger
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher that delivers buffered items to flush.
func New[T any](logger *zap.Logger, cfg Config, flush func(context.Context, []T) error) *Batcher[T] {
	if cfg.FlushSize < 1 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.RPS < 1 {
		cfg.RPS = 1
	}
	return &Batcher[T]{
		flush:   flush,
		itemsCh: make(chan T, cfg.FlushSize*2),
		cfg:     cfg,
		rl:      ratelimit.New(cfg.RPS),
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes the remaining buffer and stops the loop.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	doFlush := func() {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			doFlush()
			return
		case <-b.stop:
			// Drain whatever was queued before Stop.
			for {
				select {
				case item := <-b.itemsCh:
					buf = append(buf, item)
					if len(buf) >= b.cfg.FlushSize {
						doFlush()
					}
				default:
					doFlush()
					return
				}
			}
		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				doFlush()
			}
		case <-ticker.C:
			doFlush()
		}
	}
}
