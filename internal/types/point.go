package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is a price captured at Timestamp.
type PricePoint struct {
	Value     decimal.Decimal `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}

// QuantityPoint is the quantity acquired by a buy, after commission.
type QuantityPoint struct {
	Value     decimal.Decimal `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}

// AmountPoint is the proceeds of a sell, after commission.
type AmountPoint struct {
	Value     decimal.Decimal `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewPricePoint(value decimal.Decimal) PricePoint {
	return PricePoint{Value: value, Timestamp: time.Now()}
}

func NewQuantityPoint(value decimal.Decimal) QuantityPoint {
	return QuantityPoint{Value: value, Timestamp: time.Now()}
}

func NewAmountPoint(value decimal.Decimal) AmountPoint {
	return AmountPoint{Value: value, Timestamp: time.Now()}
}
