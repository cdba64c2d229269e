package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ironledger/internal/config"
	"ironledger/internal/dashboard"
	"ironledger/internal/market"
	"ironledger/internal/util"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("IRON_LEDGER_CONFIG"), "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := util.OpenLogFile(cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger := util.NewLogger(cfg.Logging.Level, logFile)
	util.SetDefault(logger)

	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	companies := market.Companies()
	sim := market.NewSimulator(cfg.Simulator.PriceMin, cfg.Simulator.PriceMax,
		cfg.Simulator.ChangePctMin, cfg.Simulator.ChangePctMax)
	app := &dashboard.AppState{
		Title:              cfg.Display.Title,
		StatusText:         cfg.Display.StatusText,
		Companies:          companies,
		Quotes:             sim.GenQuotes(rng, companies),
		CurrencySymbol:     cfg.Display.CurrencySymbol,
		CurrencyNamePlural: cfg.Display.CurrencyNamePlural,
	}
	logger.Info("starting", "config", *cfgPath, "source", sim.Name(), "quotes", len(app.Quotes), "seed", seed)

	// Bubbletea restores the terminal on every exit path, panics included.
	p := tea.NewProgram(initialModel(app, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("terminal session failed", "error", err)
		logFile.Close()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("stopped")
	logFile.Close()
}
