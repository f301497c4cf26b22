package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

type OrderTestSuite struct {
	suite.Suite
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderTestSuite))
}

func (suite *OrderTestSuite) TestNewOrder() {
	order := NewOrder(decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.RequireFromString("0.5"))

	suite.NotEmpty(order.ID)
	suite.False(order.Timestamp.IsZero())
	suite.True(order.Equal(order))

	other := NewOrder(decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.RequireFromString("0.5"))
	suite.False(order.Equal(other), "orders with different ids must differ")
}

func (suite *OrderTestSuite) TestEqualIgnoresRepresentation() {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	a := Order{
		ID:        "a",
		Price:     decimal.RequireFromString("100.10"),
		Amount:    decimal.RequireFromString("50"),
		Quantity:  decimal.RequireFromString("0.5"),
		Timestamp: ts,
	}
	b := Order{
		ID:        "a",
		Price:     decimal.RequireFromString("100.1"),
		Amount:    decimal.RequireFromString("50.000"),
		Quantity:  decimal.RequireFromString("0.50"),
		Timestamp: ts.In(time.FixedZone("X", 3600)),
	}

	suite.True(a.Equal(b))

	b.Quantity = decimal.RequireFromString("0.51")
	suite.False(a.Equal(b))
}

func (suite *OrderTestSuite) TestJSONRoundTrip() {
	order := NewOrder(decimal.RequireFromString("43145.42"), decimal.RequireFromString("64.71813"), decimal.RequireFromString("0.0014985"))

	data, err := json.Marshal(order)
	suite.Require().NoError(err)

	var decoded Order
	suite.Require().NoError(json.Unmarshal(data, &decoded))
	suite.True(order.Equal(decoded))
}

func (suite *OrderTestSuite) TestPositionSide() {
	order := NewOrder(decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.NewFromInt(1))

	suite.Equal(PositionSideIncrease, Increase(order).Side)
	suite.Equal(PositionSideDecrease, Decrease(order).Side)
	suite.True(Decrease(order).Order.Equal(order))
}

func (suite *OrderTestSuite) TestDecimalFromString() {
	d, err := DecimalFromString("0.00120000")
	suite.NoError(err)
	suite.True(d.Equal(decimal.RequireFromString("0.0012")))

	_, err = DecimalFromString("12,5")
	suite.True(errors.HasCode(err, errors.ErrCodePrecisionConversion))
}
