package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/internal/market"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// OnTickCallback is called after every tick with the tick number and its error, if any.
type OnTickCallback func(tick uint64, err error)

// OnStopCallback is called when the runner stops (always called via defer).
type OnStopCallback func(err error)

// Callbacks holds the runner's lifecycle callbacks. Nil means no callback is invoked.
type Callbacks struct {
	OnTick *OnTickCallback
	OnStop *OnStopCallback
}

// Runner ticks a bot until the context ends, the bot completes or a replay runs out of prices.
type Runner struct {
	bot        Bot
	interval   time.Duration
	checkpoint string
	log        *logger.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInterval waits interval between ticks. Zero ticks back to back.
func WithInterval(interval time.Duration) RunnerOption {
	return func(r *Runner) {
		r.interval = interval
	}
}

// WithCheckpoint writes the bot snapshot to path after every tick.
func WithCheckpoint(path string) RunnerOption {
	return func(r *Runner) {
		r.checkpoint = path
	}
}

func WithLogger(log *logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

func NewRunner(bot Bot, opts ...RunnerOption) *Runner {
	r := &Runner{
		bot: bot,
		log: logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run blocks until the bot is done. A failed tick is logged and retried on the next tick.
// Positions committed before a failure stay committed, so the checkpoint is written after
// failed ticks too.
func (r *Runner) Run(ctx context.Context, callbacks Callbacks) (runErr error) {
	defer func() {
		if callbacks.OnStop != nil {
			(*callbacks.OnStop)(runErr)
		}
	}()

	var ticker *time.Ticker
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		defer ticker.Stop()
	}

	for tick := uint64(1); ; tick++ {
		if r.bot.IsCompleted() {
			r.log.Info("Bot completed", zap.Uint64("ticks", tick-1))

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.bot.Tick(ctx)

		if callbacks.OnTick != nil {
			(*callbacks.OnTick)(tick, err)
		}

		switch {
		case err == nil:
		case errors.Is(err, market.ErrReplayExhausted):
			r.log.Info("Replay finished", zap.Uint64("ticks", tick-1))

			return nil
		case errors.HasCode(err, errors.ErrCodeStrategyCompleted):
			return nil
		default:
			r.log.Error("Tick failed", zap.Uint64("tick", tick), zap.Error(err))
		}

		if r.checkpoint != "" {
			if err := WriteCheckpoint(r.checkpoint, r.bot.Snapshot()); err != nil {
				r.log.Error("Failed to write checkpoint", zap.String("path", r.checkpoint), zap.Error(err))
			}
		}

		if ticker == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
