package mocks

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// PriceGenerator generates synthetic price paths for replays and property tests.
type PriceGenerator struct {
	rng *rand.Rand
}

// NewPriceGenerator creates a new PriceGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewPriceGenerator(seed int64) *PriceGenerator {
	return &PriceGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// PriceConfig configures how a price path is generated.
type PriceConfig struct {
	// StartTime is the timestamp of the first tick
	StartTime time.Time
	// Interval is the duration between ticks
	Interval time.Duration
	// Count is the number of ticks to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement per tick (0.01 = 1%)
	Volatility float64
	// Trend is the drift over the whole path (-0.01 to 0.01 for bearish to bullish)
	Trend float64
	// Precision is the number of decimal places kept
	Precision int32
}

// DefaultPriceConfig returns a sensible default configuration.
func DefaultPriceConfig() PriceConfig {
	return PriceConfig{
		StartTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval:     time.Minute,
		Count:        1000,
		InitialPrice: 100.0,
		Volatility:   0.01,
		Trend:        0.0,
		Precision:    2,
	}
}

// Generate creates a price path following a geometric Brownian motion.
func (g *PriceGenerator) Generate(config PriceConfig) []decimal.Decimal {
	prices := make([]decimal.Decimal, config.Count)
	current := config.InitialPrice

	for i := 0; i < config.Count; i++ {
		// Box-Muller transform for normal distribution
		u1 := g.rng.Float64()
		u2 := g.rng.Float64()
		z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		next := current * (1 + config.Volatility*z + config.Trend/float64(config.Count))
		if next <= 0 {
			next = current * 0.99
		}

		prices[i] = decimal.NewFromFloat(current).Round(config.Precision)
		current = next
	}

	return prices
}

// WriteCSV writes prices as a time,close CSV in the layout market data downloads use.
func WriteCSV(w io.Writer, config PriceConfig, prices []decimal.Decimal) error {
	if _, err := fmt.Fprintln(w, "time,close"); err != nil {
		return err
	}

	at := config.StartTime

	for _, price := range prices {
		if _, err := fmt.Fprintf(w, "%s,%s\n", at.Format(time.RFC3339), price.String()); err != nil {
			return err
		}

		at = at.Add(config.Interval)
	}

	return nil
}
