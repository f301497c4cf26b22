// Package engine drives a strategy tick by tick and checkpoints its state.
package engine

import (
	"context"

	"github.com/rxtech-lab/argo-grid/internal/strategy"
)

// Bot is one strategy bound to the client that executes it.
type Bot interface {
	// Tick runs one decision round.
	Tick(ctx context.Context) error
	// IsCompleted reports whether the bot will never trade again.
	IsCompleted() bool
	// Snapshot returns the serializable state written to checkpoints.
	Snapshot() any
}

// Trapper runs one tick of an order based strategy.
type Trapper interface {
	Trap(ctx context.Context, s strategy.Strategy) error
}

// GridBot runs a grid against an executor. A grid never completes.
type GridBot struct {
	grid     *strategy.Grid
	executor strategy.Executor
}

var _ Bot = (*GridBot)(nil)

func NewGridBot(grid *strategy.Grid, executor strategy.Executor) *GridBot {
	return &GridBot{grid: grid, executor: executor}
}

func (b *GridBot) Grid() *strategy.Grid {
	return b.grid
}

func (b *GridBot) Tick(ctx context.Context) error {
	return b.grid.Trap(ctx, b.executor)
}

func (b *GridBot) IsCompleted() bool {
	return false
}

func (b *GridBot) Snapshot() any {
	return b.grid.Snapshot()
}

// PercentageBot runs the single cycle percentage strategy.
type PercentageBot struct {
	percentage *strategy.Percentage
	trapper    Trapper
}

var _ Bot = (*PercentageBot)(nil)

func NewPercentageBot(percentage *strategy.Percentage, trapper Trapper) *PercentageBot {
	return &PercentageBot{percentage: percentage, trapper: trapper}
}

func (b *PercentageBot) Percentage() *strategy.Percentage {
	return b.percentage
}

func (b *PercentageBot) Tick(ctx context.Context) error {
	return b.trapper.Trap(ctx, b.percentage)
}

func (b *PercentageBot) IsCompleted() bool {
	return b.percentage.IsCompleted()
}

func (b *PercentageBot) Snapshot() any {
	return b.percentage.Snapshot()
}
