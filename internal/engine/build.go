package engine

import (
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-grid/internal/config"
	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/internal/strategy"
	"github.com/rxtech-lab/argo-grid/internal/trading"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

// NewBot builds the configured strategy around client. When the configuration names a
// checkpoint that exists, the strategy state is restored from it instead.
func NewBot(cfg *config.Config, client *trading.SpotClient, log *logger.Logger) (Bot, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	switch cfg.Strategy.Type {
	case config.StrategyTypeGrid:
		grid, err := newGrid(cfg, log)
		if err != nil {
			return nil, err
		}

		return NewGridBot(grid, client), nil
	case config.StrategyTypePercentage:
		percentage, err := newPercentage(cfg, log)
		if err != nil {
			return nil, err
		}

		return NewPercentageBot(percentage, client), nil
	}

	return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unknown strategy type %q", cfg.Strategy.Type)
}

func newGrid(cfg *config.Config, log *logger.Logger) (*strategy.Grid, error) {
	if cfg.CheckpointPath != "" {
		snapshot, ok, err := ReadCheckpoint[strategy.GridSnapshot](cfg.CheckpointPath)
		if err != nil {
			return nil, err
		}

		if ok {
			grid, err := strategy.RestoreGrid(snapshot, strategy.WithLogger(log))
			if err != nil {
				return nil, err
			}

			log.Info("Grid restored from checkpoint",
				zap.String("path", cfg.CheckpointPath),
				zap.Int("holdings", grid.Holdings()),
			)

			return grid, nil
		}
	}

	grid := cfg.Strategy.Grid

	return strategy.NewGrid(grid.Investment, grid.Bound(), grid.Copies, grid.Options(), strategy.WithLogger(log))
}

func newPercentage(cfg *config.Config, log *logger.Logger) (*strategy.Percentage, error) {
	if cfg.CheckpointPath != "" {
		snapshot, ok, err := ReadCheckpoint[strategy.PercentageSnapshot](cfg.CheckpointPath)
		if err != nil {
			return nil, err
		}

		if ok {
			percentage, err := strategy.RestorePercentage(snapshot)
			if err != nil {
				return nil, err
			}

			log.Info("Percentage strategy restored from checkpoint",
				zap.String("path", cfg.CheckpointPath),
				zap.Bool("completed", percentage.IsCompleted()),
			)

			return percentage, nil
		}
	}

	p := cfg.Strategy.Percentage

	return strategy.NewPercentage(p.Investment, p.TargetPercent, p.StopPercent, p.StartBuyingPrice), nil
}
