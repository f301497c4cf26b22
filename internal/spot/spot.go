// Package spot holds the exchange precision and commission rules for a single spot instrument.
// Every function is pure; nothing here talks to an exchange.
package spot

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// Spot describes one tradable instrument. Order quantities are truncated to
// TransactionQuantityPrecision, the base asset balance is kept at HoldingQuantityPrecision
// and the quote asset balance at AmountPrecision.
type Spot struct {
	Symbol                       string          `yaml:"symbol" json:"symbol" jsonschema:"title=Symbol,description=Exchange symbol such as BTCUSDT" validate:"required"`
	TransactionQuantityPrecision int32           `yaml:"transaction_quantity_precision" json:"transaction_quantity_precision" jsonschema:"title=Transaction quantity precision" validate:"gte=0,lte=18"`
	HoldingQuantityPrecision     int32           `yaml:"holding_quantity_precision" json:"holding_quantity_precision" jsonschema:"title=Holding quantity precision" validate:"gte=0,lte=18"`
	AmountPrecision              int32           `yaml:"amount_precision" json:"amount_precision" jsonschema:"title=Amount precision" validate:"gte=0,lte=18"`
	BuyingCommission             decimal.Decimal `yaml:"buying_commission" json:"buying_commission" jsonschema:"type=string,title=Buying commission"`
	SellingCommission            decimal.Decimal `yaml:"selling_commission" json:"selling_commission" jsonschema:"type=string,title=Selling commission"`
	MinimumTransactionAmount     decimal.Decimal `yaml:"minimum_transaction_amount" json:"minimum_transaction_amount" jsonschema:"type=string,title=Minimum transaction amount"`
}

// Buying is the outcome of a buy.
type Buying struct {
	Price                   decimal.Decimal
	Quantity                decimal.Decimal
	Spent                   decimal.Decimal
	QuantityAfterCommission decimal.Decimal
}

// Selling is the outcome of a sell.
type Selling struct {
	Price                 decimal.Decimal
	Quantity              decimal.Decimal
	Income                decimal.Decimal
	IncomeAfterCommission decimal.Decimal
}

// Validate checks the struct tags and that commissions are fractions in [0, 1).
func (s *Spot) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid spot config", err)
	}

	for name, commission := range map[string]decimal.Decimal{
		"buying_commission":  s.BuyingCommission,
		"selling_commission": s.SellingCommission,
	} {
		if commission.IsNegative() || commission.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return errors.Newf(errors.ErrCodeInvalidConfiguration, "%s must be in [0, 1), got %s", name, commission)
		}
	}

	// Traded quantities carry at most the holding scale, so rounding after commission never exceeds them.
	if s.TransactionQuantityPrecision > s.HoldingQuantityPrecision {
		return errors.Newf(errors.ErrCodeInvalidConfiguration,
			"transaction_quantity_precision (%d) must not exceed holding_quantity_precision (%d)",
			s.TransactionQuantityPrecision, s.HoldingQuantityPrecision)
	}

	if s.MinimumTransactionAmount.IsNegative() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "minimum_transaction_amount must not be negative, got %s", s.MinimumTransactionAmount)
	}

	return nil
}

// TransactionQuantityWithPrecision truncates toward zero so an order never asks for more than the funds cover.
func (s *Spot) TransactionQuantityWithPrecision(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Truncate(s.TransactionQuantityPrecision)
}

// BuyingQuantityWithCommission is the quantity actually held after the buying commission is taken.
func (s *Spot) BuyingQuantityWithCommission(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(decimal.NewFromInt(1).Sub(s.BuyingCommission)).RoundBank(s.HoldingQuantityPrecision)
}

// SellingAmountWithCommission is the proceeds left after the selling commission is taken.
func (s *Spot) SellingAmountWithCommission(amount decimal.Decimal) decimal.Decimal {
	commission := amount.Mul(s.SellingCommission).RoundBank(s.AmountPrecision)

	return amount.Sub(commission)
}

func (s *Spot) SellingIncomeAmount(price, quantity decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity)
}

func (s *Spot) BuyingSpentAmount(price, quantity decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity)
}

// BuyingQuantityByAmount converts an amount of quote asset into a tradable quantity at price.
func (s *Spot) BuyingQuantityByAmount(price, amount decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}

	return s.TransactionQuantityWithPrecision(amount.Div(price))
}

// IsAllowTransaction reports whether the notional strictly exceeds the exchange minimum.
func (s *Spot) IsAllowTransaction(price, quantity decimal.Decimal) bool {
	return price.Mul(quantity).GreaterThan(s.MinimumTransactionAmount)
}

// CheckTransaction returns ErrCodeMinimumNotReached when IsAllowTransaction is false.
func (s *Spot) CheckTransaction(price, quantity decimal.Decimal) error {
	if !s.IsAllowTransaction(price, quantity) {
		return errors.Newf(errors.ErrCodeMinimumNotReached,
			"minimum transaction amount not reached: %s x %s <= %s", price, quantity, s.MinimumTransactionAmount)
	}

	return nil
}

// Buy truncates quantity, applies the minimum guard and computes what the buy costs and yields.
func (s *Spot) Buy(price, quantity decimal.Decimal) (Buying, error) {
	buyingQuantity := s.TransactionQuantityWithPrecision(quantity)
	if err := s.CheckTransaction(price, buyingQuantity); err != nil {
		return Buying{}, err
	}

	return Buying{
		Price:                   price,
		Quantity:                buyingQuantity,
		Spent:                   s.BuyingSpentAmount(price, buyingQuantity),
		QuantityAfterCommission: s.BuyingQuantityWithCommission(buyingQuantity),
	}, nil
}

// Sell truncates quantity, applies the minimum guard and computes the proceeds.
func (s *Spot) Sell(price, quantity decimal.Decimal) (Selling, error) {
	sellingQuantity := s.TransactionQuantityWithPrecision(quantity)
	if err := s.CheckTransaction(price, sellingQuantity); err != nil {
		return Selling{}, err
	}

	income := s.SellingIncomeAmount(price, sellingQuantity)

	return Selling{
		Price:                 price,
		Quantity:              sellingQuantity,
		Income:                income,
		IncomeAfterCommission: s.SellingAmountWithCommission(income),
	}, nil
}
