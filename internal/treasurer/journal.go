package treasurer

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Entry is one booked transfer.
type Entry struct {
	ID        string
	Direction Direction
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// Journal is a Treasurer backed by DuckDB. Every transfer is kept as a row and the balance
// is summed in decimal, so amounts are stored as text.
type Journal struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

var _ Treasurer = (*Journal)(nil)

// NewJournal opens the journal at path. An empty path keeps it in memory.
func NewJournal(ctx context.Context, path string, log *logger.Logger) (*Journal, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerFailed, "failed to open ledger database", err)
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	j := &Journal{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := j.initialize(ctx); err != nil {
		db.Close()

		return nil, err
	}

	return j, nil
}

func (j *Journal) initialize(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, `CREATE SEQUENCE IF NOT EXISTS ledger_seq`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerFailed, "failed to create ledger sequence", err)
	}

	_, err = j.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ledger (
			seq BIGINT DEFAULT nextval('ledger_seq'),
			id TEXT PRIMARY KEY,
			direction TEXT,
			amount TEXT,
			created_at TIMESTAMP
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerFailed, "failed to create ledger table", err)
	}

	return nil
}

func (j *Journal) TransferIn(ctx context.Context, amount decimal.Decimal) error {
	return j.record(ctx, DirectionIn, amount)
}

func (j *Journal) TransferOut(ctx context.Context, amount decimal.Decimal) error {
	return j.record(ctx, DirectionOut, amount)
}

func (j *Journal) record(ctx context.Context, direction Direction, amount decimal.Decimal) error {
	if err := checkAmount(amount); err != nil {
		return err
	}

	id := uuid.New().String()

	_, err := j.sq.
		Insert("ledger").
		Columns("id", "direction", "amount", "created_at").
		Values(id, string(direction), amount.String(), time.Now().UTC()).
		RunWith(j.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerFailed, "failed to record transfer", err)
	}

	j.logger.Debug("Transfer recorded",
		zap.String("id", id),
		zap.String("direction", string(direction)),
		zap.Stringer("amount", amount),
	)

	return nil
}

// Entries returns every transfer in booking order.
func (j *Journal) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := j.sq.
		Select("id", "direction", "amount", "created_at").
		From("ledger").
		OrderBy("seq").
		RunWith(j.db).
		QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerFailed, "failed to query ledger", err)
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var (
			entry     Entry
			direction string
			amount    string
		)

		if err := rows.Scan(&entry.ID, &direction, &amount, &entry.CreatedAt); err != nil {
			return nil, errors.Wrap(errors.ErrCodeLedgerFailed, "failed to scan ledger entry", err)
		}

		entry.Direction = Direction(direction)

		entry.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodePrecisionConversion, err, "invalid ledger amount %q", amount)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerFailed, "failed to read ledger", err)
	}

	return entries, nil
}

// Balance sums every booked transfer.
func (j *Journal) Balance(ctx context.Context) (decimal.Decimal, error) {
	entries, err := j.Entries(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero

	for _, entry := range entries {
		switch entry.Direction {
		case DirectionIn:
			balance = balance.Add(entry.Amount)
		case DirectionOut:
			balance = balance.Sub(entry.Amount)
		}
	}

	return balance, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
