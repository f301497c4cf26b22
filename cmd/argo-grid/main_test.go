package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-grid/mocks"
	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

const replayConfig = `
spot:
  symbol: BTCUSDT
  transaction_quantity_precision: 5
  holding_quantity_precision: 7
  amount_precision: 8
  buying_commission: "0.001"
  selling_commission: "0.001"
  minimum_transaction_amount: "5"
checkpoint_path: ./must-not-exist.json
strategy:
  type: grid
  grid:
    investment: "1000"
    low: "80"
    high: "120"
    copies: 8
`

type ArgoGridCmdTestSuite struct {
	suite.Suite
	dir string
}

func TestArgoGridCmdSuite(t *testing.T) {
	suite.Run(t, new(ArgoGridCmdTestSuite))
}

func (suite *ArgoGridCmdTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
	suite.T().Chdir(suite.dir)
}

func (suite *ArgoGridCmdTestSuite) TestReplay() {
	configPath := filepath.Join(suite.dir, "config.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte(replayConfig), 0o600))

	pricesPath := filepath.Join(suite.dir, "prices.csv")
	file, err := os.Create(pricesPath)
	suite.Require().NoError(err)

	priceConfig := mocks.DefaultPriceConfig()
	priceConfig.Count = 200
	suite.Require().NoError(mocks.WriteCSV(file, priceConfig, mocks.NewPriceGenerator(42).Generate(priceConfig)))
	suite.Require().NoError(file.Close())

	err = newApp().Run(context.Background(), []string{"argo-grid", "replay", "--config", configPath, "--prices", pricesPath})
	suite.Require().NoError(err)

	_, err = os.Stat(filepath.Join(suite.dir, "must-not-exist.json"))
	suite.True(os.IsNotExist(err), "replay must not write the live checkpoint")
}

func (suite *ArgoGridCmdTestSuite) TestReplayMissingPrices() {
	configPath := filepath.Join(suite.dir, "config.yaml")
	suite.Require().NoError(os.WriteFile(configPath, []byte(replayConfig), 0o600))

	err := newApp().Run(context.Background(), []string{"argo-grid", "replay", "--config", configPath, "--prices", "missing.csv"})
	suite.Error(err)
}

func (suite *ArgoGridCmdTestSuite) TestSchema() {
	suite.NoError(newApp().Run(context.Background(), []string{"argo-grid", "schema"}))
}

func (suite *ArgoGridCmdTestSuite) TestDownloadRejectsInvalidDates() {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start", start: "01/02/2024", end: "2024-01-03"},
		{name: "malformed end", start: "2024-01-01", end: "tomorrow"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			err := newApp().Run(context.Background(), []string{
				"argo-grid", "download",
				"--symbol", "BTCUSDT",
				"--start", tc.start,
				"--end", tc.end,
				"--output", filepath.Join(suite.dir, "btc.parquet"),
			})
			suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter), "got %v", err)
		})
	}
}

func (suite *ArgoGridCmdTestSuite) TestParseDate() {
	date, err := parseDate("2024-03-01")
	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), date)

	date, err = parseDate("2024-03-01T12:30:00Z")
	suite.Require().NoError(err)
	suite.Equal(12, date.Hour())
}
