package strategy

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

const (
	splitPrecision       int32 = 6
	profitPricePrecision int32 = 8
)

var (
	two          = decimal.NewFromInt(2)
	profitInside = decimal.RequireFromString("0.9999")
	profitAbove  = decimal.RequireFromString("1.0001")
)

// GridOptions are optional grid settings.
type GridOptions struct {
	// StopLoss liquidates every holding position while the price is strictly inside it.
	StopLoss optional.Option[types.Range] `yaml:"stop_loss" json:"stop_loss"`
}

// StopLossBelow derives a stop-loss range covering everything below bound.Low() reduced by fraction.
func StopLossBelow(bound types.Range, fraction decimal.Decimal) types.Range {
	return types.NewRange(decimal.Zero, bound.Low().Mul(decimal.NewFromInt(1).Sub(fraction)))
}

// Split divides bound into copies equal intervals and builds copies-1 positions, each
// buying in the lower half of interval i and selling in the upper half of interval i+1.
func Split(investment decimal.Decimal, bound types.Range, copies int) ([]*Position, error) {
	if copies < 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "copies must be at least 2, got %d", copies)
	}

	if !investment.IsPositive() {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "investment must be positive, got %s", investment)
	}

	if !bound.Length().IsPositive() {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "range %s is empty", bound)
	}

	interval := bound.Length().Div(decimal.NewFromInt(int64(copies))).Truncate(splitPrecision)
	half := interval.Div(two)
	perPosition := investment.Div(decimal.NewFromInt(int64(copies - 1))).Truncate(splitPrecision)

	positions := make([]*Position, 0, copies-1)

	for i := range copies - 1 {
		buying := bound.Low().Add(interval.Mul(decimal.NewFromInt(int64(i))))
		selling := bound.Low().Add(interval.Mul(decimal.NewFromInt(int64(i + 2))))

		positions = append(positions, NewPosition(
			perPosition,
			types.NewRange(buying, buying.Add(half)),
			types.NewRange(selling.Sub(half), selling),
			optional.None[decimal.Decimal](),
		))
	}

	return positions, nil
}

// Grid is a Limit built by Split, with an optional stop-loss override.
type Grid struct {
	*Limit

	investment decimal.Decimal
	bound      types.Range
	copies     int
	options    GridOptions
}

func NewGrid(investment decimal.Decimal, bound types.Range, copies int, options GridOptions, opts ...LimitOption) (*Grid, error) {
	positions, err := Split(investment, bound, copies)
	if err != nil {
		return nil, err
	}

	return &Grid{
		Limit:      NewLimit(positions, opts...),
		investment: investment,
		bound:      bound,
		copies:     copies,
		options:    options,
	}, nil
}

func (g *Grid) Investment() decimal.Decimal {
	return g.investment
}

func (g *Grid) Bound() types.Range {
	return g.bound
}

func (g *Grid) Copies() int {
	return g.copies
}

func (g *Grid) Options() GridOptions {
	return g.options
}

// PredictiveLowestProfitPrice returns, per position, a price just inside the top of the
// buying range followed by one just inside the bottom of the selling range.
func (g *Grid) PredictiveLowestProfitPrice() []decimal.Decimal {
	result := make([]decimal.Decimal, 0, len(g.positions)*2)

	for _, p := range g.positions {
		result = append(result,
			p.buying.High().Mul(profitInside).Truncate(profitPricePrecision),
			p.selling.Low().Mul(profitAbove).Truncate(profitPricePrecision),
		)
	}

	return result
}

// PredictiveHighestProfitPrice returns, per position, a price just inside the bottom of the
// buying range followed by one just inside the top of the selling range.
func (g *Grid) PredictiveHighestProfitPrice() []decimal.Decimal {
	result := make([]decimal.Decimal, 0, len(g.positions)*2)

	for _, p := range g.positions {
		result = append(result,
			p.buying.Low().Mul(profitAbove).Truncate(profitPricePrecision),
			p.selling.High().Mul(profitInside).Truncate(profitPricePrecision),
		)
	}

	return result
}

// IsReachedStopLoss reports whether price is strictly inside the configured stop-loss range.
func (g *Grid) IsReachedStopLoss(price decimal.Decimal) bool {
	stopLoss, err := g.options.StopLoss.Take()
	if err != nil {
		return false
	}

	return stopLoss.IsWithinExclusive(price)
}

// Trap fetches the price once. Inside the stop-loss range every holding position is sold
// regardless of its selling range; otherwise positions are evaluated normally.
func (g *Grid) Trap(ctx context.Context, exec Executor) error {
	point, err := exec.Price(ctx)
	if err != nil {
		return errors.Upstream(err, "failed to fetch price")
	}

	if !g.IsReachedStopLoss(point.Value) {
		return g.Evaluate(ctx, exec, point.Value)
	}

	g.log.Warn("Stop loss reached, liquidating", zap.Stringer("price", point.Value))

	return g.liquidate(ctx, exec, point.Value)
}

func (g *Grid) liquidate(ctx context.Context, exec Executor, price decimal.Decimal) error {
	for index, position := range g.positions {
		if position.PredictiveForceSell().IsNone() {
			continue
		}

		amount, err := position.Sell(ctx, exec, price)
		if err != nil {
			if errors.IsRace(err) {
				g.log.Debug("Liquidation skipped", zap.Int("position", index), zap.Error(err))

				continue
			}

			return err
		}

		g.log.Info("Position liquidated",
			zap.Int("position", index),
			zap.Stringer("price", price),
			zap.Stringer("amount", amount),
		)
	}

	return nil
}
