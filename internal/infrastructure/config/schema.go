package config

// Config is the on-disk configuration of the dimmer host.
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	DarkMode    DarkModeConfig    `mapstructure:"dark_mode" toml:"dark_mode" json:"dark_mode"`
	Broadcast   BroadcastConfig   `mapstructure:"broadcast" toml:"broadcast" json:"broadcast"`
	Keybindings KeybindingsConfig `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// DatabaseConfig holds the settings store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty" jsonschema:"description=Settings database file. Empty means $XDG_DATA_HOME/dimmer/dimmer.sqlite"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=console,enum=json"`
}

// DarkModeConfig holds page eligibility rules.
type DarkModeConfig struct {
	// PrivilegedSchemes are URL schemes whose pages are never styled or messaged.
	PrivilegedSchemes []string `mapstructure:"privileged_schemes" toml:"privileged_schemes" json:"privileged_schemes"`
}

// BroadcastConfig bounds the fan-out to open pages.
type BroadcastConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency" toml:"max_concurrency" json:"max_concurrency" jsonschema:"minimum=1,maximum=256"`
}

// KeybindingsConfig maps popup actions to keys.
type KeybindingsConfig struct {
	ToggleDarkMode []string `mapstructure:"toggle_dark_mode" toml:"toggle_dark_mode" json:"toggle_dark_mode"`
	ToggleSite     []string `mapstructure:"toggle_site" toml:"toggle_site" json:"toggle_site"`
	Force          []string `mapstructure:"force" toml:"force" json:"force"`
	Intensity      []string `mapstructure:"intensity" toml:"intensity" json:"intensity"`
	Quit           []string `mapstructure:"quit" toml:"quit" json:"quit"`
}

// AppearanceConfig holds CLI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette is the set of colors the CLI theme is built from.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" json:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" json:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
