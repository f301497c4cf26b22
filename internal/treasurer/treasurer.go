// Package treasurer keeps the cash ledger that realized trades are booked against.
package treasurer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// Treasurer records cash flow. Every realized trade produces exactly one call: TransferOut
// for what a buy spent, TransferIn for what a sell earned.
type Treasurer interface {
	TransferIn(ctx context.Context, amount decimal.Decimal) error
	TransferOut(ctx context.Context, amount decimal.Decimal) error
	Balance(ctx context.Context) (decimal.Decimal, error)
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.Newf(errors.ErrCodeInvalidParameter, "transfer amount must not be negative, got %s", amount)
	}

	return nil
}
