package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "scheme with separator",
			mutate:  func(c *Config) { c.DarkMode.PrivilegedSchemes = []string{"chrome://"} },
			wantErr: "dark_mode.privileged_schemes",
		},
		{
			name:    "concurrency too high",
			mutate:  func(c *Config) { c.Broadcast.MaxConcurrency = 1000 },
			wantErr: "broadcast.max_concurrency",
		},
		{
			name:    "empty binding",
			mutate:  func(c *Config) { c.Keybindings.Force = nil },
			wantErr: "keybindings.force must have at least one key",
		},
		{
			name:    "duplicate binding",
			mutate:  func(c *Config) { c.Keybindings.ToggleSite = []string{"q"} },
			wantErr: `key "q" is already bound`,
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Appearance.Palette.Accent = "blue" },
			wantErr: "appearance.palette.accent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
