package strategy

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
)

// Strategy is a decision state machine driven by an order placing client. The client
// asks for sells first, then for a buy, and reports every completed order back through
// UpdatePosition.
type Strategy interface {
	// PredictiveBuy returns the amount to spend, if any.
	PredictiveBuy(price decimal.Decimal) optional.Option[decimal.Decimal]
	// PredictiveSell returns the orders to liquidate at price.
	PredictiveSell(price decimal.Decimal) []types.Order
	// UpdatePosition records a completed order.
	UpdatePosition(side types.PositionSide)
	// IsCompleted reports whether the strategy will never trade again.
	IsCompleted() bool
}

// Percentage runs exactly one buy and sell cycle. It buys Investment worth once the price
// is at or above the optional start price, and sells an order when the price rises above
// entry*(1+target) or, with a stop configured, falls below entry*(1-stop). The first sell
// completes the strategy for good.
type Percentage struct {
	investment       decimal.Decimal
	targetPercent    decimal.Decimal
	stopPercent      optional.Option[decimal.Decimal]
	startBuyingPrice optional.Option[decimal.Decimal]

	completed atomic.Bool

	mu     sync.Mutex
	orders []types.Order
}

var _ Strategy = (*Percentage)(nil)

func NewPercentage(
	investment decimal.Decimal,
	targetPercent decimal.Decimal,
	stopPercent optional.Option[decimal.Decimal],
	startBuyingPrice optional.Option[decimal.Decimal],
) *Percentage {
	return &Percentage{
		investment:       investment,
		targetPercent:    targetPercent,
		stopPercent:      stopPercent,
		startBuyingPrice: startBuyingPrice,
		orders:           make([]types.Order, 0, 2),
	}
}

func (p *Percentage) IsCompleted() bool {
	return p.completed.Load()
}

// Orders returns a copy of the open orders.
func (p *Percentage) Orders() []types.Order {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.orders)
}

func (p *Percentage) PredictiveBuy(price decimal.Decimal) optional.Option[decimal.Decimal] {
	if p.IsCompleted() {
		return optional.None[decimal.Decimal]()
	}

	if start, err := p.startBuyingPrice.Take(); err == nil && price.LessThan(start) {
		return optional.None[decimal.Decimal]()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.orders) > 0 {
		return optional.None[decimal.Decimal]()
	}

	return optional.Some(p.investment)
}

func (p *Percentage) PredictiveSell(price decimal.Decimal) []types.Order {
	if p.IsCompleted() {
		return nil
	}

	one := decimal.NewFromInt(1)

	p.mu.Lock()
	defer p.mu.Unlock()

	var result []types.Order

	for _, order := range p.orders {
		if price.GreaterThan(order.Price.Mul(one.Add(p.targetPercent))) {
			result = append(result, order)

			continue
		}

		if stop, err := p.stopPercent.Take(); err == nil && price.LessThan(order.Price.Mul(one.Sub(stop))) {
			result = append(result, order)
		}
	}

	return result
}

// UpdatePosition appends on Increase. On Decrease it removes the matching order and
// completes the strategy; an unknown order is ignored.
func (p *Percentage) UpdatePosition(side types.PositionSide) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch side.Side {
	case types.PositionSideIncrease:
		p.orders = append(p.orders, side.Order)
	case types.PositionSideDecrease:
		index := slices.IndexFunc(p.orders, side.Order.Equal)
		if index < 0 {
			return
		}

		p.orders = slices.Delete(p.orders, index, index+1)
		p.completed.Store(true)
	}
}

// Snapshot captures the strategy state.
func (p *Percentage) Snapshot() PercentageSnapshot {
	return PercentageSnapshot{
		Version:          currentSnapshotVersion(),
		Investment:       p.investment,
		TargetPercent:    p.targetPercent,
		StopPercent:      p.stopPercent,
		StartBuyingPrice: p.startBuyingPrice,
		Completed:        p.IsCompleted(),
		Orders:           p.Orders(),
	}
}

// RestorePercentage rebuilds a strategy from a snapshot written by a compatible version.
func RestorePercentage(snapshot PercentageSnapshot) (*Percentage, error) {
	if err := checkSnapshotVersion(snapshot.Version); err != nil {
		return nil, err
	}

	p := NewPercentage(snapshot.Investment, snapshot.TargetPercent, snapshot.StopPercent, snapshot.StartBuyingPrice)
	p.orders = append(p.orders, snapshot.Orders...)
	p.completed.Store(snapshot.Completed)

	return p, nil
}
