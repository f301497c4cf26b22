package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-grid/internal/market"
	"github.com/rxtech-lab/argo-grid/internal/version"
)

func newApp() *cli.Command {
	configFlag := &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the bot configuration `FILE`",
		Required: true,
	}

	cmd := &cli.Command{
		Name:    "argo-grid",
		Usage:   "Grid and percentage spot trading bot",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the bot against live Binance prices",
				Flags:  []cli.Flag{configFlag},
				Action: runAction,
			},
			{
				Name:  "replay",
				Usage: "Replay a market data file through the configured strategy",
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:     "prices",
						Aliases:  []string{"p"},
						Usage:    "CSV or Parquet market data `FILE`",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "column",
						Usage: "Price column to read",
						Value: market.DefaultPriceColumn,
					},
				},
				Action: replayAction,
			},
			{
				Name:  "download",
				Usage: "Download Binance candles into a CSV or Parquet file for replay",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Trading pair, e.g. BTCUSDT",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "interval",
						Usage: "Binance candle interval",
						Value: "1m",
					},
					&cli.StringFlag{
						Name:     "start",
						Usage:    "Start `DATE` (2006-01-02 or RFC3339)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "end",
						Usage:    "End `DATE` (2006-01-02 or RFC3339)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Output `FILE`, .csv or .parquet",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "testnet",
						Usage: "Download from the Binance testnet",
					},
				},
				Action: downloadAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the configuration file",
				Action: schemaAction,
			},
		},
	}

	return cmd
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
