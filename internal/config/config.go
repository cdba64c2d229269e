package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the Iron Ledger dashboard.
type Config struct {
	Display   Display   `yaml:"display"`
	Simulator Simulator `yaml:"simulator"`
	Logging   Logging   `yaml:"logging"`
}

// Display holds presentation settings for the dashboard.
type Display struct {
	Title              string `yaml:"title"`
	CurrencySymbol     string `yaml:"currency_symbol"`
	CurrencyNamePlural string `yaml:"currency_name_plural"`
	StatusText         string `yaml:"status_text"`
}

// Simulator controls the random quote source. Ranges are inclusive. A zero
// Seed means a fresh random seed on every start.
type Simulator struct {
	PriceMin     float64 `yaml:"price_min"`
	PriceMax     float64 `yaml:"price_max"`
	ChangePctMin float64 `yaml:"change_pct_min"`
	ChangePctMax float64 `yaml:"change_pct_max"`
	Seed         uint64  `yaml:"seed"`
}

// Logging configures the application logger. The dashboard owns the
// terminal, so log output always goes to File.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: Display{
			Title:              "The Iron Ledger",
			CurrencySymbol:     "₡",
			CurrencyNamePlural: "Cogmarks",
			StatusText:         "Connected",
		},
		Simulator: Simulator{
			PriceMin:     500.0,
			PriceMax:     3000.0,
			ChangePctMin: -10.0,
			ChangePctMax: 10.0,
		},
		Logging: Logging{
			Level: "info",
			File:  fmt.Sprintf("/tmp/iron-ledger-%s.log", time.Now().Format("2006-01-02")),
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load starts from Default, overlays the YAML file at path when path is
// non-empty, applies environment variable overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("IRON_LEDGER_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("IRON_LEDGER_CURRENCY_SYMBOL"); v != "" {
		cfg.Display.CurrencySymbol = v
	}
	if v := os.Getenv("IRON_LEDGER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("IRON_LEDGER_SEED: %w", err)
		}
		cfg.Simulator.Seed = seed
	}
	return nil
}

// Validate rejects simulator ranges that could produce a non-positive price
// or previous-day price.
func (c *Config) Validate() error {
	s := c.Simulator
	var errs []error
	if s.PriceMin <= 0 {
		errs = append(errs, fmt.Errorf("simulator.price_min must be positive, got %v", s.PriceMin))
	}
	if s.PriceMax < s.PriceMin {
		errs = append(errs, fmt.Errorf("simulator.price_max %v is below price_min %v", s.PriceMax, s.PriceMin))
	}
	if s.ChangePctMin <= -100 {
		errs = append(errs, fmt.Errorf("simulator.change_pct_min must be above -100, got %v", s.ChangePctMin))
	}
	if s.ChangePctMax < s.ChangePctMin {
		errs = append(errs, fmt.Errorf("simulator.change_pct_max %v is below change_pct_min %v", s.ChangePctMax, s.ChangePctMin))
	}
	return errors.Join(errs...)
}
