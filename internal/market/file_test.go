package market

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-grid/pkg/errors"
)

type LoadPricesTestSuite struct {
	suite.Suite
	dir string
}

func TestLoadPricesSuite(t *testing.T) {
	suite.Run(t, new(LoadPricesTestSuite))
}

func (suite *LoadPricesTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *LoadPricesTestSuite) write(name, content string) string {
	path := filepath.Join(suite.dir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	return path
}

func (suite *LoadPricesTestSuite) TestCSV() {
	path := suite.write("prices.csv", "time,symbol,close\n"+
		"2024-01-01T00:00:00Z,BTCUSDT,100\n"+
		"2024-01-01T00:01:00Z,BTCUSDT,101\n"+
		"2024-01-01T00:02:00Z,BTCUSDT,96.67\n"+
		"2024-01-01T00:03:00Z,BTCUSDT,0.00000001\n")

	prices, err := LoadPrices(context.Background(), path, "")
	suite.Require().NoError(err)
	suite.Require().Len(prices, 4)

	expected := []string{"100", "101", "96.67", "0.00000001"}
	for i, price := range prices {
		suite.Equal(expected[i], price.String())
	}
}

func (suite *LoadPricesTestSuite) TestCustomColumn() {
	path := suite.write("prices.csv", "price\n43890.71\n42991.10\n")

	prices, err := LoadPrices(context.Background(), path, "price")
	suite.Require().NoError(err)
	suite.Require().Len(prices, 2)
	suite.Equal("42991.1", prices[1].String())
}

func (suite *LoadPricesTestSuite) TestErrors() {
	_, err := LoadPrices(context.Background(), filepath.Join(suite.dir, "prices.json"), "")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	missingColumn := suite.write("missing.csv", "price\n1\n")
	_, err = LoadPrices(context.Background(), missingColumn, "close")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter), "got %v", err)

	malformed := suite.write("malformed.csv", "close\n100\nabc\n")
	_, err = LoadPrices(context.Background(), malformed, "")
	suite.True(errors.HasCode(err, errors.ErrCodePrecisionConversion), "got %v", err)
}
