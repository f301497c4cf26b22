package types

import (
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// DecimalFromString converts an exchange payload string into a decimal.
func DecimalFromString(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errors.ErrCodePrecisionConversion, err, "cannot convert %q to decimal", value)
	}

	return d, nil
}
