package strategy

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// Position is one sub-range of an investment. It buys Investment worth when the price
// enters Buying and sells everything it holds when the price enters Selling.
//
// held and inFlight are only touched under mu, and mu is never held while the executor
// runs. inFlight keeps a second buy (or sell) out while the first one is on the wire.
type Position struct {
	investment decimal.Decimal
	buying     types.Range
	selling    types.Range

	mu       sync.Mutex
	held     decimal.Decimal
	inFlight bool

	buyCount  atomic.Uint64
	sellCount atomic.Uint64
}

// NewPosition creates a position. A held value of None or Some(0) means flat.
func NewPosition(investment decimal.Decimal, buying, selling types.Range, held optional.Option[decimal.Decimal]) *Position {
	return &Position{
		investment: investment,
		buying:     buying,
		selling:    selling,
		held:       held.TakeOr(decimal.Zero),
	}
}

func (p *Position) Investment() decimal.Decimal {
	return p.investment
}

func (p *Position) Buying() types.Range {
	return p.buying
}

func (p *Position) Selling() types.Range {
	return p.selling
}

// Held returns the quantity currently held, zero when flat.
func (p *Position) Held() decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.held
}

// IsHolding reports whether the position holds a positive quantity.
func (p *Position) IsHolding() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.held.IsPositive()
}

func (p *Position) BuyCount() uint64 {
	return p.buyCount.Load()
}

func (p *Position) SellCount() uint64 {
	return p.sellCount.Load()
}

// PredictiveBuy returns the investment when price is inside the buying range and the
// position is flat with nothing in flight.
func (p *Position) PredictiveBuy(price decimal.Decimal) optional.Option[decimal.Decimal] {
	if !p.buying.IsWithinInclusive(price) {
		return optional.None[decimal.Decimal]()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlight || p.held.IsPositive() {
		return optional.None[decimal.Decimal]()
	}

	return optional.Some(p.investment)
}

// PredictiveSell returns the held quantity when price is inside the selling range.
func (p *Position) PredictiveSell(price decimal.Decimal) optional.Option[decimal.Decimal] {
	if !p.selling.IsWithinInclusive(price) {
		return optional.None[decimal.Decimal]()
	}

	return p.PredictiveForceSell()
}

// PredictiveForceSell returns the held quantity regardless of price. Used on stop-loss.
func (p *Position) PredictiveForceSell() optional.Option[decimal.Decimal] {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlight || !p.held.IsPositive() {
		return optional.None[decimal.Decimal]()
	}

	return optional.Some(p.held)
}

// Buy spends the investment through exec. It fails with ErrCodeAlreadyHeld when the
// position is holding or another buy or sell is in flight.
func (p *Position) Buy(ctx context.Context, exec Executor, price decimal.Decimal) (decimal.Decimal, error) {
	p.mu.Lock()
	if p.inFlight || p.held.IsPositive() {
		p.mu.Unlock()

		return decimal.Zero, errors.Newf(errors.ErrCodeAlreadyHeld, "position %s is already held", p.buying)
	}
	p.inFlight = true
	p.mu.Unlock()

	point, err := exec.Buy(ctx, price, p.investment)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.inFlight = false

	if err != nil {
		return decimal.Zero, errors.Upstream(err, "buy failed")
	}

	p.held = point.Value
	p.buyCount.Add(1)

	return point.Value, nil
}

// Sell liquidates the held quantity through exec and returns the proceeds. It fails with
// ErrCodeNothingHeld when the position is flat or a sell is already in flight.
func (p *Position) Sell(ctx context.Context, exec Executor, price decimal.Decimal) (decimal.Decimal, error) {
	p.mu.Lock()
	if p.inFlight || !p.held.IsPositive() {
		p.mu.Unlock()

		return decimal.Zero, errors.Newf(errors.ErrCodeNothingHeld, "position %s holds nothing to sell", p.selling)
	}
	quantity := p.held
	p.inFlight = true
	p.mu.Unlock()

	point, err := exec.Sell(ctx, price, quantity)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.inFlight = false

	if err != nil {
		return decimal.Zero, errors.Upstream(err, "sell failed")
	}

	p.held = decimal.Zero
	p.sellCount.Add(1)

	return point.Value, nil
}

// Snapshot captures the committed state. A trade in flight is not reflected.
func (p *Position) Snapshot() PositionSnapshot {
	return PositionSnapshot{
		Investment: p.investment,
		Buying:     p.buying,
		Selling:    p.selling,
		Held:       p.Held(),
		BuyCount:   p.BuyCount(),
		SellCount:  p.SellCount(),
	}
}

// RestorePosition rebuilds a position from a snapshot.
func RestorePosition(snapshot PositionSnapshot) *Position {
	p := NewPosition(snapshot.Investment, snapshot.Buying, snapshot.Selling, optional.Some(snapshot.Held))
	p.buyCount.Store(snapshot.BuyCount)
	p.sellCount.Store(snapshot.SellCount)

	return p
}
