package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PositionSideType string

const (
	// PositionSideIncrease is a completed buy.
	PositionSideIncrease PositionSideType = "INCREASE"
	// PositionSideDecrease is a completed sell.
	PositionSideDecrease PositionSideType = "DECREASE"
)

// Order is the immutable record of a completed trade.
type Order struct {
	ID        string          `yaml:"id" json:"id"`
	Price     decimal.Decimal `yaml:"price" json:"price"`
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Quantity  decimal.Decimal `yaml:"quantity" json:"quantity"`
	Timestamp time.Time       `yaml:"timestamp" json:"timestamp"`
}

// NewOrder creates an Order stamped with a fresh ID and the current time.
func NewOrder(price, amount, quantity decimal.Decimal) Order {
	return Order{
		ID:        uuid.New().String(),
		Price:     price,
		Amount:    amount,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}

// Equal is structural equality. Decimals compare by value, not representation.
func (o Order) Equal(other Order) bool {
	return o.ID == other.ID &&
		o.Price.Equal(other.Price) &&
		o.Amount.Equal(other.Amount) &&
		o.Quantity.Equal(other.Quantity) &&
		o.Timestamp.Equal(other.Timestamp)
}

// PositionSide tells a strategy that an order completed in the given direction.
type PositionSide struct {
	Side  PositionSideType `json:"side"`
	Order Order            `json:"order"`
}

func Increase(order Order) PositionSide {
	return PositionSide{Side: PositionSideIncrease, Order: order}
}

func Decrease(order Order) PositionSide {
	return PositionSide{Side: PositionSideDecrease, Order: order}
}
