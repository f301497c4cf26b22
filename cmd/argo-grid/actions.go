package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxtech-lab/argo-grid/internal/config"
	"github.com/rxtech-lab/argo-grid/internal/engine"
	"github.com/rxtech-lab/argo-grid/internal/exchange"
	"github.com/rxtech-lab/argo-grid/internal/logger"
	"github.com/rxtech-lab/argo-grid/internal/market"
	"github.com/rxtech-lab/argo-grid/internal/trading"
	"github.com/rxtech-lab/argo-grid/internal/treasurer"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return logger.NewLoggerWithLevel(level)
}

// runAction ticks the configured strategy against live prices until interrupted.
func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ledger treasurer.Treasurer = treasurer.NewProsperity(optional.None[decimal.Decimal]())

	if cfg.LedgerPath != "" {
		journal, err := treasurer.NewJournal(ctx, cfg.LedgerPath, log)
		if err != nil {
			return err
		}
		defer journal.Close()

		ledger = journal
	}

	binanceClient := exchange.NewBinanceClient(cfg.Binance)
	opts := []trading.Option{trading.WithLogger(log)}

	switch {
	case cfg.Production:
		opts = append(opts, trading.WithProduction(binanceClient))
	case cfg.ValidateOrders:
		opts = append(opts, trading.WithValidateOrders(binanceClient))
	}

	client, err := trading.NewSpotClient(cfg.Spot, market.NewBinanceSource(binanceClient, cfg.Spot.Symbol), ledger, opts...)
	if err != nil {
		return err
	}

	bot, err := engine.NewBot(cfg, client, log)
	if err != nil {
		return err
	}

	log.Info("Starting bot",
		zap.String("symbol", cfg.Spot.Symbol),
		zap.String("strategy", string(cfg.Strategy.Type)),
		zap.Duration("interval", cfg.Interval),
		zap.Bool("production", cfg.Production),
	)

	runner := engine.NewRunner(bot,
		engine.WithInterval(cfg.Interval),
		engine.WithCheckpoint(cfg.CheckpointPath),
		engine.WithLogger(log),
	)

	err = runner.Run(ctx, engine.Callbacks{})
	if ctx.Err() != nil {
		err = nil
	}

	balance, balanceErr := ledger.Balance(context.Background())
	if balanceErr != nil {
		return balanceErr
	}

	log.Info("Bot stopped", zap.Stringer("balance", balance))

	return err
}

// replayAction runs the configured strategy over a market data file with simulated fills.
func replayAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	// A replay always starts from a fresh strategy and never touches the live checkpoint.
	cfg.CheckpointPath = ""

	prices, err := market.LoadPrices(ctx, cmd.String("prices"), cmd.String("column"))
	if err != nil {
		return err
	}

	ledger := treasurer.NewProsperity(optional.None[decimal.Decimal]())

	client, err := trading.NewSpotClient(cfg.Spot, market.NewReplay(prices), ledger)
	if err != nil {
		return err
	}

	bot, err := engine.NewBot(cfg, client, nil)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(prices)), "replaying")
	onTick := engine.OnTickCallback(func(_ uint64, err error) {
		if !errors.Is(err, market.ErrReplayExhausted) {
			_ = bar.Add(1)
		}
	})

	if err := engine.NewRunner(bot).Run(ctx, engine.Callbacks{OnTick: &onTick}); err != nil {
		return err
	}

	_ = bar.Finish()

	balance, err := ledger.Balance(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Replayed %d prices\n", len(prices))
	fmt.Printf("Completed: %t\n", bot.IsCompleted())
	fmt.Printf("Balance: %s\n", balance)

	if gridBot, ok := bot.(*engine.GridBot); ok {
		fmt.Printf("Holding positions: %d/%d\n", gridBot.Grid().Holdings(), len(gridBot.Grid().Positions()))
	}

	return nil
}

func downloadAction(ctx context.Context, cmd *cli.Command) error {
	start, err := parseDate(cmd.String("start"))
	if err != nil {
		return err
	}

	end, err := parseDate(cmd.String("end"))
	if err != nil {
		return err
	}

	// Klines are public, no credentials needed.
	client := exchange.NewBinanceClient(exchange.BinanceConfig{Testnet: cmd.Bool("testnet")})

	bar := progressbar.Default(end.Sub(start).Milliseconds(), "downloading")
	onProgress := func(current int64, _ int64) {
		_ = bar.Set64(current)
	}

	written, err := market.Download(ctx, client, market.DownloadConfig{
		Symbol:   cmd.String("symbol"),
		Interval: cmd.String("interval"),
		Start:    start,
		End:      end,
		Output:   cmd.String("output"),
	}, onProgress)
	if err != nil {
		return err
	}

	_ = bar.Finish()

	fmt.Printf("Wrote %d candles to %s\n", written, cmd.String("output"))

	return nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Newf(errors.ErrCodeInvalidParameter, "invalid date %q", value)
}

func schemaAction(_ context.Context, _ *cli.Command) error {
	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}
