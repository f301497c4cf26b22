// Package config loads the bot configuration from YAML.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-grid/internal/exchange"
	"github.com/rxtech-lab/argo-grid/internal/spot"
	"github.com/rxtech-lab/argo-grid/internal/strategy"
	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
	"github.com/rxtech-lab/argo-grid/pkg/utils"
)

const (
	DefaultInterval = 10 * time.Second

	envAPIKey    = "BINANCE_API_KEY"
	envSecretKey = "BINANCE_SECRET_KEY"
)

// StrategyType selects the decision strategy.
type StrategyType string

const (
	StrategyTypeGrid       StrategyType = "grid"
	StrategyTypePercentage StrategyType = "percentage"
)

// Config is the top level bot configuration.
type Config struct {
	Interval       time.Duration          `yaml:"interval" json:"interval" jsonschema:"title=Interval,description=Time between two ticks"`
	Production     bool                   `yaml:"production" json:"production" jsonschema:"title=Production,description=Place real orders on Binance"`
	ValidateOrders bool                   `yaml:"validate_orders" json:"validate_orders" jsonschema:"title=Validate orders,description=Send orders to the Binance test endpoint when not in production"`
	LogLevel       string                 `yaml:"log_level" json:"log_level" jsonschema:"title=Log level,enum=debug,enum=info,enum=warn,enum=error" validate:"omitempty,oneof=debug info warn error"`
	CheckpointPath string                 `yaml:"checkpoint_path" json:"checkpoint_path" jsonschema:"title=Checkpoint path,description=File the strategy state is written to after every tick"`
	LedgerPath     string                 `yaml:"ledger_path" json:"ledger_path" jsonschema:"title=Ledger path,description=DuckDB file for the ledger. Empty keeps the ledger in memory"`
	Binance        exchange.BinanceConfig `yaml:"binance" json:"binance" jsonschema:"title=Binance" validate:"-"`
	Spot           spot.Spot              `yaml:"spot" json:"spot" jsonschema:"title=Spot instrument" validate:"-"`
	Strategy       StrategyConfig         `yaml:"strategy" json:"strategy" jsonschema:"title=Strategy"`
}

// StrategyConfig holds the settings of the selected strategy.
type StrategyConfig struct {
	Type       StrategyType      `yaml:"type" json:"type" jsonschema:"title=Type,enum=grid,enum=percentage" validate:"required,oneof=grid percentage"`
	Grid       *GridConfig       `yaml:"grid,omitempty" json:"grid,omitempty" jsonschema:"title=Grid"`
	Percentage *PercentageConfig `yaml:"percentage,omitempty" json:"percentage,omitempty" jsonschema:"title=Percentage"`
}

// GridConfig configures a grid. At most one of StopLoss and StopLossFraction may be set.
type GridConfig struct {
	Investment       decimal.Decimal                  `yaml:"investment" json:"investment" jsonschema:"title=Investment"`
	Low              decimal.Decimal                  `yaml:"low" json:"low" jsonschema:"title=Low"`
	High             decimal.Decimal                  `yaml:"high" json:"high" jsonschema:"title=High"`
	Copies           int                              `yaml:"copies" json:"copies" jsonschema:"title=Copies,minimum=2" validate:"gte=2"`
	StopLoss         optional.Option[types.Range]     `yaml:"stop_loss" json:"stop_loss" jsonschema:"title=Stop loss range"`
	StopLossFraction optional.Option[decimal.Decimal] `yaml:"stop_loss_fraction" json:"stop_loss_fraction" jsonschema:"title=Stop loss fraction,description=Liquidate below low*(1-fraction)"`
}

// UnmarshalYAML implements custom unmarshaling for the optional fields.
func (g *GridConfig) UnmarshalYAML(value *yaml.Node) error {
	type gridConfig struct {
		Investment       decimal.Decimal  `yaml:"investment"`
		Low              decimal.Decimal  `yaml:"low"`
		High             decimal.Decimal  `yaml:"high"`
		Copies           int              `yaml:"copies"`
		StopLoss         *types.Range     `yaml:"stop_loss"`
		StopLossFraction *decimal.Decimal `yaml:"stop_loss_fraction"`
	}

	var config gridConfig
	if err := value.Decode(&config); err != nil {
		return err
	}

	g.Investment = config.Investment
	g.Low = config.Low
	g.High = config.High
	g.Copies = config.Copies
	g.StopLoss = optional.FromNillable(config.StopLoss)
	g.StopLossFraction = optional.FromNillable(config.StopLossFraction)

	return nil
}

// Bound returns the grid's price range.
func (g *GridConfig) Bound() types.Range {
	return types.NewRange(g.Low, g.High)
}

// Options resolves the stop-loss settings into GridOptions.
func (g *GridConfig) Options() strategy.GridOptions {
	if fraction, err := g.StopLossFraction.Take(); err == nil {
		return strategy.GridOptions{StopLoss: optional.Some(strategy.StopLossBelow(g.Bound(), fraction))}
	}

	return strategy.GridOptions{StopLoss: g.StopLoss}
}

// PercentageConfig configures the single cycle percentage strategy.
type PercentageConfig struct {
	Investment       decimal.Decimal                  `yaml:"investment" json:"investment" jsonschema:"title=Investment"`
	TargetPercent    decimal.Decimal                  `yaml:"target_percent" json:"target_percent" jsonschema:"title=Target percent,description=Sell above entry*(1+target)"`
	StopPercent      optional.Option[decimal.Decimal] `yaml:"stop_percent" json:"stop_percent" jsonschema:"title=Stop percent,description=Sell below entry*(1-stop)"`
	StartBuyingPrice optional.Option[decimal.Decimal] `yaml:"start_buying_price" json:"start_buying_price" jsonschema:"title=Start buying price,description=Do not buy below this price"`
}

// UnmarshalYAML implements custom unmarshaling for the optional fields.
func (p *PercentageConfig) UnmarshalYAML(value *yaml.Node) error {
	type percentageConfig struct {
		Investment       decimal.Decimal  `yaml:"investment"`
		TargetPercent    decimal.Decimal  `yaml:"target_percent"`
		StopPercent      *decimal.Decimal `yaml:"stop_percent"`
		StartBuyingPrice *decimal.Decimal `yaml:"start_buying_price"`
	}

	var config percentageConfig
	if err := value.Decode(&config); err != nil {
		return err
	}

	p.Investment = config.Investment
	p.TargetPercent = config.TargetPercent
	p.StopPercent = optional.FromNillable(config.StopPercent)
	p.StartBuyingPrice = optional.FromNillable(config.StartBuyingPrice)

	return nil
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Interval == 0 {
		c.Interval = DefaultInterval
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Binance.ApiKey == "" {
		c.Binance.ApiKey = os.Getenv(envAPIKey)
	}

	if c.Binance.SecretKey == "" {
		c.Binance.SecretKey = os.Getenv(envSecretKey)
	}
}

// Validate checks the struct tags and the settings that depend on each other.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if c.Interval < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "interval must not be negative")
	}

	if err := c.Spot.Validate(); err != nil {
		return err
	}

	if c.Production || c.ValidateOrders {
		if err := c.Binance.Validate(); err != nil {
			return err
		}
	}

	switch c.Strategy.Type {
	case StrategyTypeGrid:
		return c.Strategy.Grid.validate()
	case StrategyTypePercentage:
		return c.Strategy.Percentage.validate()
	}

	return nil
}

func (g *GridConfig) validate() error {
	if g == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "strategy.grid is required for a grid strategy")
	}

	if !g.Investment.IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "grid investment must be positive, got %s", g.Investment)
	}

	if g.Low.IsNegative() || g.High.IsNegative() || g.Low.Equal(g.High) {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "invalid grid range %s", g.Bound())
	}

	if g.StopLoss.IsSome() && g.StopLossFraction.IsSome() {
		return errors.New(errors.ErrCodeInvalidConfiguration, "stop_loss and stop_loss_fraction are mutually exclusive")
	}

	if fraction, err := g.StopLossFraction.Take(); err == nil {
		if !fraction.IsPositive() || fraction.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return errors.Newf(errors.ErrCodeInvalidConfiguration, "stop_loss_fraction must be in (0, 1), got %s", fraction)
		}
	}

	return nil
}

func (p *PercentageConfig) validate() error {
	if p == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "strategy.percentage is required for a percentage strategy")
	}

	if !p.Investment.IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "percentage investment must be positive, got %s", p.Investment)
	}

	if !p.TargetPercent.IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "target_percent must be positive, got %s", p.TargetPercent)
	}

	if stop, err := p.StopPercent.Take(); err == nil {
		if !stop.IsPositive() || stop.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return errors.Newf(errors.ErrCodeInvalidConfiguration, "stop_percent must be in (0, 1), got %s", stop)
		}
	}

	return nil
}

// GenerateSchemaJSON returns the JSON schema of Config.
func GenerateSchemaJSON() (string, error) {
	return utils.GetSchemaFromConfig(&Config{})
}
