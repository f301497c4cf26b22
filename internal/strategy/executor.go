// Package strategy decides when to buy and when to sell. It never talks to a network:
// prices and orders go through an injected Executor.
package strategy

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
)

// Executor is the capability a strategy trades through.
type Executor interface {
	// Price returns the current market price.
	Price(ctx context.Context) (types.PricePoint, error)
	// Buy spends amount at or near price and returns the quantity acquired after commission.
	Buy(ctx context.Context, price, amount decimal.Decimal) (types.QuantityPoint, error)
	// Sell liquidates quantity at or near price and returns the proceeds after commission.
	Sell(ctx context.Context, price, quantity decimal.Decimal) (types.AmountPoint, error)
}
