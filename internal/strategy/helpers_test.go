package strategy

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func r(from, to string) types.Range {
	return types.NewRange(d(from), d(to))
}

// recordingExecutor replays a fixed price list and records every trade. A buy yields
// amount/price units, a sell yields price*quantity.
type recordingExecutor struct {
	mu     sync.Mutex
	prices []decimal.Decimal
	next   int

	buyAmounts     []decimal.Decimal
	sellQuantities []decimal.Decimal
}

func newRecordingExecutor(prices ...string) *recordingExecutor {
	e := &recordingExecutor{}
	for _, p := range prices {
		e.prices = append(e.prices, d(p))
	}

	return e
}

func (e *recordingExecutor) Price(_ context.Context) (types.PricePoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.next >= len(e.prices) {
		return types.PricePoint{}, errors.New(errors.ErrCodeUpstreamFailure, "no more prices")
	}

	price := e.prices[e.next]
	e.next++

	return types.NewPricePoint(price), nil
}

func (e *recordingExecutor) Buy(_ context.Context, price, amount decimal.Decimal) (types.QuantityPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.buyAmounts = append(e.buyAmounts, amount)

	return types.NewQuantityPoint(amount.Div(price).Truncate(8)), nil
}

func (e *recordingExecutor) Sell(_ context.Context, price, quantity decimal.Decimal) (types.AmountPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sellQuantities = append(e.sellQuantities, quantity)

	return types.NewAmountPoint(price.Mul(quantity)), nil
}

func (e *recordingExecutor) buys() []decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]decimal.Decimal(nil), e.buyAmounts...)
}

func (e *recordingExecutor) sells() []decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]decimal.Decimal(nil), e.sellQuantities...)
}
