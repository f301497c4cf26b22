package exchange

import (
	"github.com/go-playground/validator/v10"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// BinanceConfig contains the credentials and endpoint used for Binance.
type BinanceConfig struct {
	ApiKey    string `yaml:"api_key" json:"api_key" jsonschema:"title=API Key,description=Binance API key" validate:"required"`
	SecretKey string `yaml:"secret_key" json:"secret_key" jsonschema:"title=Secret Key,description=Binance API secret key" validate:"required"`
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty" jsonschema:"title=Base URL,description=Overrides the Binance REST endpoint" validate:"omitempty,url"`
	Testnet   bool   `yaml:"testnet" json:"testnet" jsonschema:"title=Testnet,description=Use the Binance spot testnet"`
}

// Validate validates the BinanceConfig struct. Credentials are only required when orders are sent.
func (c *BinanceConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid binance config", err)
	}

	return nil
}
