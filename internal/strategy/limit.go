package strategy

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// Limit evaluates a fixed list of positions against one price per tick.
type Limit struct {
	positions []*Position
	log       *logger.Logger
}

type LimitOption func(*Limit)

// WithLogger sets the logger used for trades and skipped races.
func WithLogger(log *logger.Logger) LimitOption {
	return func(l *Limit) {
		if log != nil {
			l.log = log
		}
	}
}

func NewLimit(positions []*Position, opts ...LimitOption) *Limit {
	l := &Limit{
		positions: positions,
		log:       logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Limit) Positions() []*Position {
	return l.positions
}

// Holdings returns how many positions currently hold a quantity.
func (l *Limit) Holdings() int {
	count := 0

	for _, p := range l.positions {
		if p.IsHolding() {
			count++
		}
	}

	return count
}

// Trap fetches the price once and evaluates every position against it.
func (l *Limit) Trap(ctx context.Context, exec Executor) error {
	point, err := exec.Price(ctx)
	if err != nil {
		return errors.Upstream(err, "failed to fetch price")
	}

	return l.Evaluate(ctx, exec, point.Value)
}

// Evaluate visits positions in order. Each position is offered a sell first and only
// offered a buy when it did not sell in this tick. The first executor failure aborts the
// tick; positions already updated stay updated.
func (l *Limit) Evaluate(ctx context.Context, exec Executor, price decimal.Decimal) error {
	for index, position := range l.positions {
		sold, err := l.trySell(ctx, exec, index, position, price)
		if err != nil {
			return err
		}

		if sold {
			continue
		}

		if err := l.tryBuy(ctx, exec, index, position, price); err != nil {
			return err
		}
	}

	return nil
}

func (l *Limit) trySell(ctx context.Context, exec Executor, index int, position *Position, price decimal.Decimal) (bool, error) {
	if position.PredictiveSell(price).IsNone() {
		return false, nil
	}

	amount, err := position.Sell(ctx, exec, price)
	if err != nil {
		if errors.IsRace(err) {
			l.log.Debug("Sell skipped", zap.Int("position", index), zap.Error(err))

			return false, nil
		}

		return false, err
	}

	l.log.Info("Position sold",
		zap.Int("position", index),
		zap.Stringer("price", price),
		zap.Stringer("amount", amount),
	)

	return true, nil
}

func (l *Limit) tryBuy(ctx context.Context, exec Executor, index int, position *Position, price decimal.Decimal) error {
	if position.PredictiveBuy(price).IsNone() {
		return nil
	}

	quantity, err := position.Buy(ctx, exec, price)
	if err != nil {
		if errors.IsRace(err) {
			l.log.Debug("Buy skipped", zap.Int("position", index), zap.Error(err))

			return nil
		}

		return err
	}

	l.log.Info("Position bought",
		zap.Int("position", index),
		zap.Stringer("price", price),
		zap.Stringer("quantity", quantity),
	)

	return nil
}
