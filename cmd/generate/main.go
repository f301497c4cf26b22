package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-grid/internal/config"
)

const (
	schemaName       = "argo-grid-config.json"
	sampleConfigName = "argo-grid-config.yaml"
)

// sampleConfig is a dry-run grid over BTCUSDT.
const sampleConfig = `interval: 10s
production: false
validate_orders: false
log_level: info
checkpoint_path: ./data/grid-checkpoint.json
ledger_path: ./data/ledger.duckdb
binance:
  api_key: ""
  secret_key: ""
  testnet: true
spot:
  symbol: BTCUSDT
  transaction_quantity_precision: 5
  holding_quantity_precision: 7
  amount_precision: 8
  buying_commission: "0.001"
  selling_commission: "0.001"
  minimum_transaction_amount: "5"
strategy:
  type: grid
  grid:
    investment: "1000"
    low: "40000"
    high: "50000"
    copies: 10
    stop_loss_fraction: "0.1"
`

func main() {
	schemaPath := filepath.Join("./config", schemaName)
	sampleConfigPath := filepath.Join("./config", sampleConfigName)

	if err := validatePaths(schemaPath, sampleConfigPath); err != nil {
		log.Fatal(err)
	}

	if err := generateSchemaFile(schemaPath); err != nil {
		log.Fatal(err)
	}

	log.Printf("Schema successfully generated at %s", schemaPath)

	if err := generateSampleConfig(sampleConfigPath, schemaName); err != nil {
		log.Fatal(err)
	}
}

func validatePaths(schemaPath, sampleConfigPath string) error {
	if schemaPath == "" {
		return fmt.Errorf("schema path cannot be empty")
	}

	if sampleConfigPath == "" {
		return fmt.Errorf("sample config path cannot be empty")
	}

	return nil
}

func validateSchemaName(name string) error {
	if name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}

	if !strings.HasSuffix(name, ".json") {
		return fmt.Errorf("schema name %q must have .json extension", name)
	}

	return nil
}

func getSchemaReference(name string) string {
	return "# yaml-language-server: $schema=" + name + "\n"
}

func generateSchemaFile(schemaPath string) error {
	schemaJSON, err := config.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(schemaPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}

	return nil
}

// generateSampleConfig writes the sample config unless a file already exists at path.
func generateSampleConfig(path, schema string) error {
	if err := validateSchemaName(schema); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(getSchemaReference(schema)+sampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to write sample config to file: %w", err)
	}

	log.Printf("Sample config successfully generated at %s", path)

	return nil
}
