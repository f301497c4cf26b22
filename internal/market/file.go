package market

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// DefaultPriceColumn is the column read from downloaded market data.
const DefaultPriceColumn = "close"

// LoadPrices reads one price column from a CSV or Parquet file in file order.
// CSV values are read as text so no precision is lost on the way to decimal.
func LoadPrices(ctx context.Context, path string, column string) ([]decimal.Decimal, error) {
	if column == "" {
		column = DefaultPriceColumn
	}

	var source string

	escaped := strings.ReplaceAll(path, "'", "''")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		source = fmt.Sprintf("read_parquet('%s')", escaped)
	case ".csv", ".txt":
		source = fmt.Sprintf("read_csv_auto('%s', all_varchar=true)", escaped)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported price file %q", path)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUpstreamFailure, "failed to open duckdb", err)
	}
	defer db.Close()

	rows, err := squirrel.
		Select(fmt.Sprintf(`CAST("%s" AS VARCHAR)`, strings.ReplaceAll(column, `"`, `""`))).
		From(source).
		RunWith(db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidParameter, err, "failed to read column %q from %s", column, path)
	}
	defer rows.Close()

	var prices []decimal.Decimal

	for rows.Next() {
		var raw sql.NullString
		if err := rows.Scan(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to scan price", err)
		}

		if !raw.Valid {
			continue
		}

		price, err := types.DecimalFromString(strings.TrimSpace(raw.String))
		if err != nil {
			return nil, err
		}

		prices = append(prices, price)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to read prices", err)
	}

	return prices, nil
}
