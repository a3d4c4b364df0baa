package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"blackjack.hcl" help:"Path to the HCL configuration file" type:"path"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Sit down at the table and play"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate rounds with the basic strategy player"`
	Rules    RulesCmd         `cmd:"" help:"Print the table rules"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
