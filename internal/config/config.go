package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default thresholds. Both encode business judgment calls carried over from
// prior tax filings rather than any documented rule.
const (
	// DefaultEquipmentThreshold is the amount below which an equipment
	// keyword match is treated as a consumable.
	DefaultEquipmentThreshold = 300
	// DefaultLargeAmount is the bank-classifier floor for treating a
	// government/tax expense as a company expense.
	DefaultLargeAmount = 1000
)

// Config represents the top-level bakeledger.yaml configuration.
type Config struct {
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	RulesFile  string           `yaml:"rules_file,omitempty"`
}

// ThresholdsConfig holds the classifier amount thresholds.
type ThresholdsConfig struct {
	EquipmentConsumable float64 `yaml:"equipment_consumable"`
	LargeAmount         float64 `yaml:"large_amount"`
}

// EquipmentThreshold returns the equipment/consumable cutoff as a decimal.
func (c *Config) EquipmentThreshold() decimal.Decimal {
	return decimal.NewFromFloat(c.Thresholds.EquipmentConsumable)
}

// LargeAmount returns the bank large-amount floor as a decimal.
func (c *Config) LargeAmount() decimal.Decimal {
	return decimal.NewFromFloat(c.Thresholds.LargeAmount)
}

// Load reads a bakeledger.yaml file. A missing file returns Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in thresholds.
func Default() *Config {
	return &Config{
		Thresholds: ThresholdsConfig{
			EquipmentConsumable: DefaultEquipmentThreshold,
			LargeAmount:         DefaultLargeAmount,
		},
	}
}
