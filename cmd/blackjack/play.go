package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs an interactive session
type PlayCmd struct {
	Plain   bool   `help:"Use the line-oriented interface instead of the full-screen one"`
	Seed    *int64 `help:"Deterministic RNG seed for the shoe (optional)"`
	LogFile string `help:"Write logs to this file instead of the configured one"`
	Debug   bool   `help:"Enable debug logging"`
	History string `help:"Write the session's round history to this JSON file on exit"`

	in  io.Reader
	out io.Writer
}

// frontEnd is everything a session needs from a user interface
type frontEnd interface {
	game.DecisionProvider
	game.Presenter
	session.BetProvider
	session.Greeter
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	c.override(cfg)

	logger, closeLog, err := setupFileLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := randutil.ResolveSeed(cfg.Session.Seed)
	logger.Info("Starting session", "seed", seed, "mode", cfg.UI.Mode)

	if cfg.UI.Mode == config.ModePlain {
		out := c.output()
		fmt.Fprintln(out, titleStyle.Render(" ♠ ♥ Blackjack ♦ ♣ "))
		fmt.Fprintln(out)
		ui := console.New(c.input(), out, logger)
		return c.runSession(context.Background(), ui, seed, logger)
	}

	ui := tui.New(logger)
	ctx, cancel := setupSignalHandler(logger, ui.Close)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := c.runSession(ctx, ui, seed, logger)
		ui.Close()
		done <- err
	}()

	if err := ui.Run(); err != nil {
		return err
	}
	// The program has exited, so any pending prompt returns ErrQuit
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (c *PlayCmd) runSession(ctx context.Context, ui frontEnd, seed int64, logger *log.Logger) error {
	engine := game.NewEngine(game.DefaultRules(), ui,
		game.WithPresenter(ui),
		game.WithLogger(logger),
		game.WithRNG(randutil.New(seed)))

	sess := session.New(engine, ui, ui, session.WithLogger(logger))
	summary, err := sess.Run(ctx)
	if c.History != "" {
		if herr := writeHistory(c.History, summary, sess.History()); herr != nil {
			logger.Error("Failed to write history", "file", c.History, "error", herr)
			if err == nil {
				err = herr
			}
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Session failed", "session", summary.ID, "error", err)
		return err
	}
	logger.Info("Left the table", "session", summary.ID, "rounds", summary.Rounds, "final_cash", summary.FinalCash, "duration", summary.Duration)
	return nil
}

// override applies command line flags on top of the file configuration
func (c *PlayCmd) override(cfg *config.Config) {
	if c.Plain {
		cfg.UI.Mode = config.ModePlain
	}
	if c.Seed != nil {
		cfg.Session.Seed = *c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
}

func (c *PlayCmd) input() io.Reader {
	if c.in != nil {
		return c.in
	}
	return os.Stdin
}

func (c *PlayCmd) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
