package treasurer

import (
	"context"
	"sync"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// Prosperity is an in-memory Treasurer.
type Prosperity struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

var _ Treasurer = (*Prosperity)(nil)

// NewProsperity creates a ledger starting at the opening balance, or zero.
func NewProsperity(opening optional.Option[decimal.Decimal]) *Prosperity {
	return &Prosperity{
		balance: opening.TakeOr(decimal.Zero),
	}
}

func (p *Prosperity) TransferIn(_ context.Context, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.balance = p.balance.Add(amount)

	return nil
}

func (p *Prosperity) TransferOut(_ context.Context, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.balance = p.balance.Sub(amount)

	return nil
}

func (p *Prosperity) Balance(_ context.Context) (decimal.Decimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.balance, nil
}
