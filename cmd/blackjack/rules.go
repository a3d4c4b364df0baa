package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/session"
)

// RulesCmd prints the table rules
type RulesCmd struct {
	out io.Writer
}

func (c *RulesCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, session.RulesText(game.DefaultRules()))
	return err
}
