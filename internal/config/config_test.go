package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	require.NoError(t, config.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
log {
  level = "debug"
}

ui {
  mode = "plain"
}

session {
  seed = 42
}

simulate {
  rounds  = 5000
  workers = 2
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "blackjack.log", config.Log.File, "missing attribute takes the default")
	assert.Equal(t, ModePlain, config.UI.Mode)
	assert.Equal(t, int64(42), config.Session.Seed)
	assert.Equal(t, 5000, config.Simulate.Rounds)
	assert.Equal(t, 2, config.Simulate.Workers)
	assert.Equal(t, int64(10), config.Simulate.Bet)
	assert.Equal(t, log.DebugLevel, config.LogLevel())
}

func TestParseEmptyConfig(t *testing.T) {
	config, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", `log {`, "failed to parse HCL"},
		{"unknown block", `table { seats = 6 }`, "failed to decode HCL"},
		{"unknown attribute", `ui { theme = "dark" }`, "failed to decode HCL"},
		{"bad log level", `log { level = "loud" }`, "invalid log level: loud"},
		{"bad mode", `ui { mode = "gui" }`, "invalid ui mode: gui"},
		{"negative bet", `simulate { bet = -5 }`, "simulate bet cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
