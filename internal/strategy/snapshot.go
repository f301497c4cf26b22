package strategy

import (
	"encoding/json"
	"io"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"

	"github.com/rxtech-lab/argo-grid/internal/types"
	"github.com/rxtech-lab/argo-grid/internal/version"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// PositionSnapshot is the serialized state of a Position.
type PositionSnapshot struct {
	Investment decimal.Decimal `json:"investment"`
	Buying     types.Range     `json:"buying"`
	Selling    types.Range     `json:"selling"`
	Held       decimal.Decimal `json:"held"`
	BuyCount   uint64          `json:"buy_count"`
	SellCount  uint64          `json:"sell_count"`
}

// GridSnapshot is the serialized state of a Grid.
type GridSnapshot struct {
	Version    string             `json:"version"`
	Investment decimal.Decimal    `json:"investment"`
	Bound      types.Range        `json:"bound"`
	Copies     int                `json:"copies"`
	Options    GridOptions        `json:"options"`
	Positions  []PositionSnapshot `json:"positions"`
}

// PercentageSnapshot is the serialized state of a Percentage strategy.
type PercentageSnapshot struct {
	Version          string                           `json:"version"`
	Investment       decimal.Decimal                  `json:"investment"`
	TargetPercent    decimal.Decimal                  `json:"target_percent"`
	StopPercent      optional.Option[decimal.Decimal] `json:"stop_percent"`
	StartBuyingPrice optional.Option[decimal.Decimal] `json:"start_buying_price"`
	Completed        bool                             `json:"completed"`
	Orders           []types.Order                    `json:"orders"`
}

func currentSnapshotVersion() string {
	return version.GetVersion()
}

func checkSnapshotVersion(snapshotVersion string) error {
	return version.CheckSnapshot(snapshotVersion)
}

// Snapshot captures the grid layout and every position's committed state.
func (g *Grid) Snapshot() GridSnapshot {
	positions := make([]PositionSnapshot, 0, len(g.positions))
	for _, p := range g.positions {
		positions = append(positions, p.Snapshot())
	}

	return GridSnapshot{
		Version:    currentSnapshotVersion(),
		Investment: g.investment,
		Bound:      g.bound,
		Copies:     g.copies,
		Options:    g.options,
		Positions:  positions,
	}
}

// RestoreGrid rebuilds a grid from a snapshot written by a compatible version. The
// positions are taken from the snapshot as they are, not re-split.
func RestoreGrid(snapshot GridSnapshot, opts ...LimitOption) (*Grid, error) {
	if err := checkSnapshotVersion(snapshot.Version); err != nil {
		return nil, err
	}

	if len(snapshot.Positions) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSnapshot, "grid snapshot has no positions")
	}

	positions := make([]*Position, 0, len(snapshot.Positions))
	for _, p := range snapshot.Positions {
		positions = append(positions, RestorePosition(p))
	}

	return &Grid{
		Limit:      NewLimit(positions, opts...),
		investment: snapshot.Investment,
		bound:      snapshot.Bound,
		copies:     snapshot.Copies,
		options:    snapshot.Options,
	}, nil
}

// WriteSnapshot encodes snapshot as indented JSON.
func WriteSnapshot(w io.Writer, snapshot any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(snapshot); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSnapshot, "failed to encode snapshot", err)
	}

	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot. Unknown fields are rejected so a
// percentage snapshot is never read as a grid and vice versa.
func ReadSnapshot[T GridSnapshot | PercentageSnapshot](r io.Reader) (T, error) {
	var snapshot T

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&snapshot); err != nil {
		return snapshot, errors.Wrap(errors.ErrCodeInvalidSnapshot, "failed to decode snapshot", err)
	}

	return snapshot, nil
}
