package exchange

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

type BinanceConfigTestSuite struct {
	suite.Suite
}

func TestBinanceConfigSuite(t *testing.T) {
	suite.Run(t, new(BinanceConfigTestSuite))
}

func (suite *BinanceConfigTestSuite) TestValidate() {
	tests := []struct {
		name        string
		config      BinanceConfig
		expectError bool
	}{
		{
			name:        "valid",
			config:      BinanceConfig{ApiKey: "key", SecretKey: "secret"},
			expectError: false,
		},
		{
			name:        "valid with base url",
			config:      BinanceConfig{ApiKey: "key", SecretKey: "secret", BaseURL: "https://testnet.binance.vision"},
			expectError: false,
		},
		{
			name:        "missing api key",
			config:      BinanceConfig{SecretKey: "secret"},
			expectError: true,
		},
		{
			name:        "missing secret key",
			config:      BinanceConfig{ApiKey: "key"},
			expectError: true,
		},
		{
			name:        "invalid base url",
			config:      BinanceConfig{ApiKey: "key", SecretKey: "secret", BaseURL: "not a url"},
			expectError: true,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			err := tc.config.Validate()
			if tc.expectError {
				suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
			} else {
				suite.NoError(err)
			}
		})
	}
}

func (suite *BinanceConfigTestSuite) TestNewBinanceClient() {
	client := NewBinanceClient(BinanceConfig{ApiKey: "key", SecretKey: "secret", BaseURL: "http://127.0.0.1:1"})
	suite.NotNil(client.NewCreateOrderService())
	suite.NotNil(client.NewListPricesService().Symbol("BTCUSDT"))
}
