// Package config loads the optional HCL configuration file.
//
// Every block and attribute is optional:
//
//	log {
//	  level = "debug"
//	  file  = "blackjack.log"
//	}
//
//	ui {
//	  mode = "plain"
//	}
//
//	session {
//	  seed = 42
//	}
//
//	simulate {
//	  rounds  = 100000
//	  workers = 8
//	  bet     = 10
//	}
//
// Table rules are fixed and cannot be configured.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// UI modes
const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Config represents the complete configuration
type Config struct {
	Log      *LogSettings      `hcl:"log,block"`
	UI       *UISettings       `hcl:"ui,block"`
	Session  *SessionSettings  `hcl:"session,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	Mode string `hcl:"mode,optional"`
}

// SessionSettings contains interactive play settings
type SessionSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// SimulateSettings contains simulation settings
type SimulateSettings struct {
	Rounds  int   `hcl:"rounds,optional"`
	Workers int   `hcl:"workers,optional"`
	Bet     int64 `hcl:"bet,optional"` // whole currency units
	Seed    int64 `hcl:"seed,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: &LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		UI: &UISettings{
			Mode: ModeTUI,
		},
		Session: &SessionSettings{},
		Simulate: &SimulateSettings{
			Rounds: 100000,
			Bet:    10,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse parses configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills missing blocks and zero values from DefaultConfig
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.Mode == "" {
		c.UI.Mode = defaults.UI.Mode
	}

	if c.Session == nil {
		c.Session = defaults.Session
	}

	if c.Simulate == nil {
		c.Simulate = defaults.Simulate
	}
	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = defaults.Simulate.Rounds
	}
	if c.Simulate.Bet == 0 {
		c.Simulate.Bet = defaults.Simulate.Bet
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.UI.Mode != ModeTUI && c.UI.Mode != ModePlain {
		return fmt.Errorf("invalid ui mode: %s", c.UI.Mode)
	}

	if c.Simulate.Rounds < 0 {
		return fmt.Errorf("simulate rounds cannot be negative")
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate workers cannot be negative")
	}
	if c.Simulate.Bet < 0 {
		return fmt.Errorf("simulate bet cannot be negative")
	}

	return nil
}

// LogLevel returns the configured level for charmbracelet/log
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
