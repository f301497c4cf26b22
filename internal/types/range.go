package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Range is a price interval. The two bounds may be stored in either order; Low and High
// always normalize them.
type Range struct {
	From decimal.Decimal `yaml:"from" json:"from" jsonschema:"type=string"`
	To   decimal.Decimal `yaml:"to" json:"to" jsonschema:"type=string"`
}

// NewRange creates a Range from two bounds given in any order.
func NewRange(from, to decimal.Decimal) Range {
	return Range{
		From: from,
		To:   to,
	}
}

// Low returns the smaller bound.
func (r Range) Low() decimal.Decimal {
	if r.From.LessThan(r.To) {
		return r.From
	}

	return r.To
}

// High returns the larger bound.
func (r Range) High() decimal.Decimal {
	if r.From.GreaterThan(r.To) {
		return r.From
	}

	return r.To
}

// Length returns High() - Low().
func (r Range) Length() decimal.Decimal {
	return r.High().Sub(r.Low())
}

// IsWithinInclusive reports whether low <= v <= high.
func (r Range) IsWithinInclusive(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(r.Low()) && v.LessThanOrEqual(r.High())
}

// IsWithinExclusive reports whether low < v < high.
func (r Range) IsWithinExclusive(v decimal.Decimal) bool {
	return v.GreaterThan(r.Low()) && v.LessThan(r.High())
}

// Equal compares the normalized bounds, so (1,2) equals (2,1).
func (r Range) Equal(other Range) bool {
	return r.Low().Equal(other.Low()) && r.High().Equal(other.High())
}

func (r Range) String() string {
	return fmt.Sprintf("(%s, %s)", r.Low().String(), r.High().String())
}
