package market

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-playground/validator/v10"
	_ "github.com/marcboeker/go-duckdb"

	"github.com/rxtech-lab/argo-grid/internal/exchange"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// klinesPageLimit is the largest page Binance serves per klines request.
const klinesPageLimit = 1000

// DownloadConfig selects the candles to download and where to write them.
type DownloadConfig struct {
	Symbol   string    `validate:"required"`
	Interval string    `validate:"required,oneof=1s 1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M"`
	Start    time.Time `validate:"required"`
	End      time.Time `validate:"required,gtfield=Start"`
	Output   string    `validate:"required"`
}

// OnDownloadProgress reports how far the download has advanced, in milliseconds since the start.
type OnDownloadProgress func(current int64, total int64)

// Download pages through Binance klines for config and writes them to config.Output as
// Parquet or CSV, ordered by time. Prices are kept as the exchange's decimal strings so
// LoadPrices reads them back without loss. It returns the number of candles written.
func Download(ctx context.Context, client exchange.BinanceClient, config DownloadConfig, onProgress OnDownloadProgress) (int, error) {
	if err := validator.New().Struct(config); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, "invalid download config", err)
	}

	var format string

	switch strings.ToLower(filepath.Ext(config.Output)) {
	case ".parquet":
		format = "(FORMAT PARQUET)"
	case ".csv":
		format = "(HEADER, DELIMITER ',')"
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported output file %q", config.Output)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUpstreamFailure, "failed to open duckdb", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE market_data (
			time TIMESTAMP,
			symbol TEXT,
			open VARCHAR,
			high VARCHAR,
			low VARCHAR,
			close VARCHAR,
			volume VARCHAR
		)
	`)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUpstreamFailure, "failed to create market data table", err)
	}

	start := config.Start.UnixMilli()
	end := config.End.UnixMilli()
	current := start
	written := 0

	for current < end {
		klines, err := client.NewKlinesService().
			Symbol(config.Symbol).
			Interval(config.Interval).
			StartTime(current).
			EndTime(end).
			Limit(klinesPageLimit).
			Do(ctx)
		if err != nil {
			return written, errors.Wrap(errors.ErrCodeUpstreamFailure, "failed to fetch klines from Binance", err)
		}

		if len(klines) == 0 {
			break
		}

		insert := squirrel.
			Insert("market_data").
			Columns("time", "symbol", "open", "high", "low", "close", "volume")

		for _, k := range klines {
			insert = insert.Values(time.UnixMilli(k.OpenTime).UTC(), config.Symbol, k.Open, k.High, k.Low, k.Close, k.Volume)
		}

		if _, err := insert.RunWith(db).ExecContext(ctx); err != nil {
			return written, errors.Wrap(errors.ErrCodeUpstreamFailure, "failed to write klines", err)
		}

		written += len(klines)
		current = klines[len(klines)-1].CloseTime + 1

		if onProgress != nil {
			onProgress(min(current, end)-start, end-start)
		}

		if len(klines) < klinesPageLimit {
			break
		}
	}

	escaped := strings.ReplaceAll(config.Output, "'", "''")

	_, err = db.ExecContext(ctx, fmt.Sprintf("COPY (SELECT * FROM market_data ORDER BY time) TO '%s' %s", escaped, format))
	if err != nil {
		return written, errors.Wrapf(errors.ErrCodeUpstreamFailure, err, "failed to export market data to %s", config.Output)
	}

	return written, nil
}
