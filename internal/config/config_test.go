package config

import (
	"os"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "iron-ledger-config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}
	return tmpFile.Name()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "IRON_LEDGER_LOG_FILE", "IRON_LEDGER_CURRENCY_SYMBOL", "IRON_LEDGER_SEED"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Display.Title != "The Iron Ledger" {
		t.Errorf("Display.Title = %q, want %q", cfg.Display.Title, "The Iron Ledger")
	}
	if cfg.Display.CurrencySymbol != "₡" {
		t.Errorf("Display.CurrencySymbol = %q, want %q", cfg.Display.CurrencySymbol, "₡")
	}
	if cfg.Display.CurrencyNamePlural != "Cogmarks" {
		t.Errorf("Display.CurrencyNamePlural = %q, want %q", cfg.Display.CurrencyNamePlural, "Cogmarks")
	}
	if cfg.Simulator.PriceMin != 500 || cfg.Simulator.PriceMax != 3000 {
		t.Errorf("Simulator price range = [%v, %v], want [500, 3000]", cfg.Simulator.PriceMin, cfg.Simulator.PriceMax)
	}
	if cfg.Simulator.ChangePctMin != -10 || cfg.Simulator.ChangePctMax != 10 {
		t.Errorf("Simulator change range = [%v, %v], want [-10, 10]", cfg.Simulator.ChangePctMin, cfg.Simulator.ChangePctMax)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if !strings.HasPrefix(cfg.Logging.File, "/tmp/iron-ledger-") {
		t.Errorf("Logging.File = %q, want /tmp/iron-ledger-* prefix", cfg.Logging.File)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `
display:
  title: "Brass Exchange"
  currency_name_plural: "Gears"
simulator:
  price_min: 10
  price_max: 20
  seed: 99
logging:
  level: "debug"
  file: "/tmp/brass.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// -- Display --
	if cfg.Display.Title != "Brass Exchange" {
		t.Errorf("Display.Title = %q, want %q", cfg.Display.Title, "Brass Exchange")
	}
	if cfg.Display.CurrencyNamePlural != "Gears" {
		t.Errorf("Display.CurrencyNamePlural = %q, want %q", cfg.Display.CurrencyNamePlural, "Gears")
	}
	// Not in the file, so the default survives.
	if cfg.Display.CurrencySymbol != "₡" {
		t.Errorf("Display.CurrencySymbol = %q, want %q (default)", cfg.Display.CurrencySymbol, "₡")
	}

	// -- Simulator --
	if cfg.Simulator.PriceMin != 10 || cfg.Simulator.PriceMax != 20 {
		t.Errorf("Simulator price range = [%v, %v], want [10, 20]", cfg.Simulator.PriceMin, cfg.Simulator.PriceMax)
	}
	if cfg.Simulator.ChangePctMax != 10 {
		t.Errorf("Simulator.ChangePctMax = %v, want %v (default)", cfg.Simulator.ChangePctMax, 10.0)
	}
	if cfg.Simulator.Seed != 99 {
		t.Errorf("Simulator.Seed = %d, want %d", cfg.Simulator.Seed, 99)
	}

	// -- Logging --
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.File != "/tmp/brass.log" {
		t.Errorf("Logging.File = %q, want %q", cfg.Logging.File, "/tmp/brass.log")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `
logging:
  level: "warn"
simulator:
  seed: 1
`)

	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("IRON_LEDGER_SEED", "1234")
	t.Setenv("IRON_LEDGER_CURRENCY_SYMBOL", "$")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want %q (env override)", cfg.Logging.Level, "error")
	}
	if cfg.Simulator.Seed != 1234 {
		t.Errorf("Simulator.Seed = %d, want %d (env override)", cfg.Simulator.Seed, 1234)
	}
	if cfg.Display.CurrencySymbol != "$" {
		t.Errorf("Display.CurrencySymbol = %q, want %q (env override)", cfg.Display.CurrencySymbol, "$")
	}
}

func TestLoadBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("IRON_LEDGER_SEED", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Fatal("Load() should fail on a non-numeric seed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/iron-ledger.yaml"); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, "display: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero price min", func(c *Config) { c.Simulator.PriceMin = 0 }, true},
		{"inverted prices", func(c *Config) { c.Simulator.PriceMax = 100 }, true},
		{"total loss", func(c *Config) { c.Simulator.ChangePctMin = -100 }, true},
		{"inverted change", func(c *Config) { c.Simulator.ChangePctMax = -20 }, true},
		{"flat market", func(c *Config) {
			c.Simulator.ChangePctMin = 0
			c.Simulator.ChangePctMax = 0
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
