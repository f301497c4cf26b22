// Package market provides the price sources a trading loop ticks against.
package market

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/exchange"
	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// PriceSource returns the current price of one instrument.
type PriceSource interface {
	Price(ctx context.Context) (types.PricePoint, error)
}

// ErrReplayExhausted is returned by Replay once every price has been served.
var ErrReplayExhausted = errors.New(errors.ErrCodeUpstreamFailure, "replay exhausted")

// BinanceSource reads the latest ticker price of a symbol from Binance.
type BinanceSource struct {
	client exchange.BinanceClient
	symbol string
}

var _ PriceSource = (*BinanceSource)(nil)

func NewBinanceSource(client exchange.BinanceClient, symbol string) *BinanceSource {
	return &BinanceSource{client: client, symbol: symbol}
}

func (s *BinanceSource) Price(ctx context.Context) (types.PricePoint, error) {
	prices, err := s.client.NewListPricesService().Symbol(s.symbol).Do(ctx)
	if err != nil {
		return types.PricePoint{}, errors.Wrapf(errors.ErrCodeUpstreamFailure, err, "failed to fetch %s price", s.symbol)
	}

	for _, price := range prices {
		if price == nil || price.Symbol != s.symbol {
			continue
		}

		value, err := types.DecimalFromString(price.Price)
		if err != nil {
			return types.PricePoint{}, err
		}

		return types.NewPricePoint(value), nil
	}

	return types.PricePoint{}, errors.Newf(errors.ErrCodeUpstreamFailure, "no price returned for %s", s.symbol)
}

// Replay serves a fixed list of prices in order, one per call.
type Replay struct {
	mu     sync.Mutex
	prices []decimal.Decimal
	next   int
}

var _ PriceSource = (*Replay)(nil)

func NewReplay(prices []decimal.Decimal) *Replay {
	return &Replay{prices: append([]decimal.Decimal(nil), prices...)}
}

func (r *Replay) Price(_ context.Context) (types.PricePoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next >= len(r.prices) {
		return types.PricePoint{}, ErrReplayExhausted
	}

	price := r.prices[r.next]
	r.next++

	return types.NewPricePoint(price), nil
}

// Len returns the total number of prices.
func (r *Replay) Len() int {
	return len(r.prices)
}

// Remaining returns how many prices are left to serve.
func (r *Replay) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.prices) - r.next
}
