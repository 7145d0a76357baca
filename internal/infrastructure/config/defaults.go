package config

import (
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/url"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// DefaultConfig returns the configuration used when no file overrides it.
// Database.Path is left empty and resolved in Load.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		DarkMode: DarkModeConfig{
			PrivilegedSchemes: url.DefaultPrivilegedSchemes(),
		},
		Broadcast: BroadcastConfig{
			MaxConcurrency: usecase.DefaultBroadcastConcurrency,
		},
		Keybindings: KeybindingsConfig{
			ToggleDarkMode: []string{"d", " "},
			ToggleSite:     []string{"s"},
			Force:          []string{"f"},
			Intensity:      []string{"i"},
			Quit:           []string{"q", "esc", "ctrl+c"},
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette returns the built-in dark CLI palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4dabf7",
		Border:         "#333333",
	}
}
