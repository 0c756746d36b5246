// Package config loads the YAML configuration of the indicator engine
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/quantlink-ti/pkg/charttrends"
	"github.com/yourusername/quantlink-ti/pkg/indicators"
)

// Config is the complete configuration
type Config struct {
	Logging    LoggingConfig                `yaml:"logging"`
	Engine     EngineConfig                 `yaml:"engine"`
	Trends     charttrends.BreakDownConfig  `yaml:"trends"`
	Indicators []indicators.IndicatorConfig `yaml:"indicators"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	JSONFormat bool   `yaml:"json_format"` // use JSON format
}

// EngineConfig contains evaluation settings
type EngineConfig struct {
	Workers int `yaml:"workers"` // indicators evaluated at once, 0 = unbounded
}

// Load loads configuration from a YAML file
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Indicators = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to a YAML file
func Save(filepath string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Default returns a configuration with a common indicator set
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", JSONFormat: true},
		Trends:  charttrends.DefaultBreakDownConfig(),
		Indicators: []indicators.IndicatorConfig{
			{Name: "sma_20", Type: "moving_average", Parameters: map[string]interface{}{"period": 20, "moving_average": "simple"}},
			{Name: "ema_20", Type: "moving_average", Parameters: map[string]interface{}{"period": 20, "moving_average": "exponential"}},
			{Name: "bollinger", Type: "bands", Parameters: map[string]interface{}{"period": 20, "multiplier": 2.0}},
			{Name: "rsi_14", Type: "rsi", Parameters: map[string]interface{}{"period": 14, "moving_average": "smoothed"}},
			{Name: "macd", Type: "macd", Parameters: map[string]interface{}{"short_period": 12, "long_period": 26, "signal_period": 9}},
			{Name: "atr_14", Type: "atr", Parameters: map[string]interface{}{"period": 14}},
			{Name: "obv", Type: "obv"},
		},
	}
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error'")
	}

	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must not be negative")
	}

	if err := c.Trends.Validate(); err != nil {
		return fmt.Errorf("trends: %w", err)
	}

	seen := make(map[string]bool, len(c.Indicators))
	for i, ind := range c.Indicators {
		if ind.Name == "" {
			return fmt.Errorf("indicators[%d]: name is required", i)
		}
		if ind.Type == "" {
			return fmt.Errorf("indicator %s: type is required", ind.Name)
		}
		if seen[ind.Name] {
			return fmt.Errorf("indicator %s: duplicate name", ind.Name)
		}
		seen[ind.Name] = true

		if err := validateKinds(ind.Parameters); err != nil {
			return fmt.Errorf("indicator %s: %w", ind.Name, err)
		}
	}
	return nil
}

// validateKinds checks the enumerated parameters early so a typo fails at load time
func validateKinds(params indicators.Params) error {
	for _, key := range []string{"moving_average", "atr_moving_average"} {
		if _, err := params.MovingAverage(key, indicators.MASimple); err != nil {
			return err
		}
	}
	if _, err := params.Deviation("deviation", indicators.DevStandard); err != nil {
		return err
	}
	if _, err := params.Position("position", indicators.Long); err != nil {
		return err
	}
	return nil
}
