package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
)

// setupFileLogger opens the configured log file so interactive play keeps
// the terminal clean. The returned close function must be called on exit.
func setupFileLogger(cfg *config.Config) (*log.Logger, func(), error) {
	debugFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := newLogger(debugFile, cfg.LogLevel())
	return logger, func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
		Level:           level,
	})
}
