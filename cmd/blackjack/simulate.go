package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays many rounds with the basic strategy player
type SimulateCmd struct {
	Rounds  int    `short:"n" help:"Number of rounds to simulate (default from config)"`
	Workers int    `short:"w" help:"Number of parallel workers (0 = number of CPUs)"`
	Bet     int64  `help:"Bet per round in whole units (default from config)"`
	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
	Debug   bool   `help:"Enable debug logging"`

	WriteStats string `help:"Write statistics to this JSON file"`

	out io.Writer
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	c.override(cfg)

	logger := newLogger(os.Stderr, cfg.LogLevel())
	ctx, cancel := setupSignalHandler(logger, nil)
	defer cancel()

	seed := randutil.ResolveSeed(cfg.Simulate.Seed)
	bet := game.Dollars(cfg.Simulate.Bet)

	sim := simulator.New(simulator.Config{
		Rounds:  cfg.Simulate.Rounds,
		Workers: cfg.Simulate.Workers,
		Bet:     bet,
		Seed:    seed,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	out := c.output()
	simulator.PrintSummary(out, stats, bet)
	fmt.Fprintf(out, "\nSeed: %d, completed in %s\n", seed, time.Since(start).Round(time.Millisecond))

	if c.WriteStats != "" {
		if err := writeStats(c.WriteStats, seed, bet, stats); err != nil {
			return err
		}
		logger.Info("Wrote statistics", "file", c.WriteStats)
	}
	return nil
}

// override applies command line flags on top of the file configuration
func (c *SimulateCmd) override(cfg *config.Config) {
	if c.Rounds > 0 {
		cfg.Simulate.Rounds = c.Rounds
	}
	if c.Workers > 0 {
		cfg.Simulate.Workers = c.Workers
	}
	if c.Bet > 0 {
		cfg.Simulate.Bet = c.Bet
	}
	if c.Seed != nil {
		cfg.Simulate.Seed = *c.Seed
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
}

func (c *SimulateCmd) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
