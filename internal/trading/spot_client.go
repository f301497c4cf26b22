// Package trading turns strategy decisions into spot trades: it applies the instrument's
// precision and commission rules, places market orders on Binance and books the cash flow
// in a treasurer.
package trading

import (
	"context"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/exchange"
	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/internal/market"
	"github.com/rxtech-lab/argo-grid/internal/spot"
	"github.com/rxtech-lab/argo-grid/internal/strategy"
	"github.com/rxtech-lab/argo-grid/internal/treasurer"
	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// SpotClient executes trades for one spot instrument. Without an exchange client it only
// simulates fills at the requested price, which is how replays and dry runs work.
type SpotClient struct {
	spot      spot.Spot
	source    market.PriceSource
	treasurer treasurer.Treasurer
	logger    *logger.Logger

	client         exchange.BinanceClient
	production     bool
	validateOrders bool
}

var _ strategy.Executor = (*SpotClient)(nil)

// Option configures a SpotClient.
type Option func(*SpotClient)

func WithLogger(log *logger.Logger) Option {
	return func(c *SpotClient) {
		c.logger = log
	}
}

// WithProduction places real market orders through client.
func WithProduction(client exchange.BinanceClient) Option {
	return func(c *SpotClient) {
		c.client = client
		c.production = true
	}
}

// WithValidateOrders sends every order to the exchange's test endpoint without placing it.
func WithValidateOrders(client exchange.BinanceClient) Option {
	return func(c *SpotClient) {
		c.client = client
		c.validateOrders = true
	}
}

func NewSpotClient(s spot.Spot, source market.PriceSource, t treasurer.Treasurer, opts ...Option) (*SpotClient, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	c := &SpotClient{
		spot:      s,
		source:    source,
		treasurer: t,
		logger:    logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if (c.production || c.validateOrders) && c.client == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "an exchange client is required to send orders")
	}

	return c, nil
}

func (c *SpotClient) Spot() spot.Spot {
	return c.spot
}

func (c *SpotClient) Treasurer() treasurer.Treasurer {
	return c.treasurer
}

func (c *SpotClient) Price(ctx context.Context) (types.PricePoint, error) {
	point, err := c.source.Price(ctx)
	if err != nil {
		return types.PricePoint{}, errors.Upstream(err, "failed to fetch price")
	}

	return point, nil
}

// Buy spends up to amount at price and returns the quantity left after commission.
func (c *SpotClient) Buy(ctx context.Context, price, amount decimal.Decimal) (types.QuantityPoint, error) {
	buying, err := c.buy(ctx, price, c.spot.BuyingQuantityByAmount(price, amount))
	if err != nil {
		return types.QuantityPoint{}, err
	}

	return types.NewQuantityPoint(buying.QuantityAfterCommission), nil
}

// Sell liquidates quantity at price and returns the income after commission.
func (c *SpotClient) Sell(ctx context.Context, price, quantity decimal.Decimal) (types.AmountPoint, error) {
	selling, err := c.sell(ctx, price, quantity)
	if err != nil {
		return types.AmountPoint{}, err
	}

	return types.NewAmountPoint(selling.IncomeAfterCommission), nil
}

// Trap runs one tick of an order based strategy. Sells take priority: when any order is
// sold the tick ends without buying.
func (c *SpotClient) Trap(ctx context.Context, s strategy.Strategy) error {
	if s.IsCompleted() {
		return errors.New(errors.ErrCodeStrategyCompleted, "strategy is completed")
	}

	point, err := c.Price(ctx)
	if err != nil {
		return err
	}

	price := point.Value

	if orders := s.PredictiveSell(price); len(orders) > 0 {
		for _, order := range orders {
			if _, err := c.sell(ctx, price, order.Quantity); err != nil {
				return err
			}

			s.UpdatePosition(types.Decrease(order))
		}

		return nil
	}

	amount := s.PredictiveBuy(price)
	if amount.IsNone() {
		return nil
	}

	buying, err := c.buy(ctx, price, c.spot.BuyingQuantityByAmount(price, amount.Unwrap()))
	if err != nil {
		return err
	}

	s.UpdatePosition(types.Increase(types.NewOrder(price, buying.Spent, buying.QuantityAfterCommission)))

	return nil
}

func (c *SpotClient) buy(ctx context.Context, price, quantity decimal.Decimal) (spot.Buying, error) {
	buying, err := c.spot.Buy(price, quantity)
	if err != nil {
		return spot.Buying{}, err
	}

	if err := c.placeOrder(ctx, binance.SideTypeBuy, buying.Quantity); err != nil {
		return spot.Buying{}, err
	}

	// The fill is realized once the order went through, so a ledger failure must not undo it.
	if err := c.treasurer.TransferOut(ctx, buying.Spent); err != nil {
		c.logger.Error("Failed to book buy in ledger",
			zap.String("symbol", c.spot.Symbol),
			zap.Stringer("spent", buying.Spent),
			zap.Error(err),
		)
	}

	c.logger.Info("Bought",
		zap.String("symbol", c.spot.Symbol),
		zap.Stringer("price", buying.Price),
		zap.Stringer("quantity", buying.Quantity),
		zap.Stringer("spent", buying.Spent),
		zap.Stringer("quantity_after_commission", buying.QuantityAfterCommission),
	)

	return buying, nil
}

func (c *SpotClient) sell(ctx context.Context, price, quantity decimal.Decimal) (spot.Selling, error) {
	selling, err := c.spot.Sell(price, quantity)
	if err != nil {
		return spot.Selling{}, err
	}

	if err := c.placeOrder(ctx, binance.SideTypeSell, selling.Quantity); err != nil {
		return spot.Selling{}, err
	}

	if err := c.treasurer.TransferIn(ctx, selling.IncomeAfterCommission); err != nil {
		c.logger.Error("Failed to book sell in ledger",
			zap.String("symbol", c.spot.Symbol),
			zap.Stringer("income_after_commission", selling.IncomeAfterCommission),
			zap.Error(err),
		)
	}

	c.logger.Info("Sold",
		zap.String("symbol", c.spot.Symbol),
		zap.Stringer("price", selling.Price),
		zap.Stringer("quantity", selling.Quantity),
		zap.Stringer("income", selling.Income),
		zap.Stringer("income_after_commission", selling.IncomeAfterCommission),
	)

	return selling, nil
}

func (c *SpotClient) placeOrder(ctx context.Context, side binance.SideType, quantity decimal.Decimal) error {
	if !c.production && !c.validateOrders {
		return nil
	}

	service := c.client.NewCreateOrderService().
		Symbol(c.spot.Symbol).
		Side(side).
		Type(binance.OrderTypeMarket).
		Quantity(quantity.String())

	if !c.production {
		if err := service.Test(ctx); err != nil {
			return errors.Wrap(errors.ErrCodeOrderFailed, "order rejected by Binance", err)
		}

		return nil
	}

	response, err := service.Do(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeOrderFailed, "failed to place order on Binance", err)
	}

	c.logger.Debug("Order placed",
		zap.String("symbol", response.Symbol),
		zap.Int64("order_id", response.OrderID),
		zap.String("status", string(response.Status)),
		zap.String("executed_quantity", response.ExecutedQuantity),
	)

	return nil
}
