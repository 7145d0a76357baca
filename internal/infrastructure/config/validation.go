package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDarkMode(config)...)
	validationErrors = append(validationErrors, validateBroadcast(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)
	validationErrors = append(validationErrors, validatePalette("appearance.palette", config.Appearance.Palette)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a log level", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "text", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: text, console, json")
	}
	return validationErrors
}

func validateDarkMode(config *Config) []string {
	var validationErrors []string
	for _, scheme := range config.DarkMode.PrivilegedSchemes {
		if scheme == "" || strings.ContainsAny(scheme, ":/ ") {
			validationErrors = append(validationErrors,
				fmt.Sprintf("dark_mode.privileged_schemes: %q must be a bare scheme like \"chrome\"", scheme))
		}
	}
	return validationErrors
}

func validateBroadcast(config *Config) []string {
	if config.Broadcast.MaxConcurrency < 1 || config.Broadcast.MaxConcurrency > 256 {
		return []string{"broadcast.max_concurrency must be between 1 and 256"}
	}
	return nil
}

func validateKeybindings(config *Config) []string {
	bindings := map[string][]string{
		"keybindings.toggle_dark_mode": config.Keybindings.ToggleDarkMode,
		"keybindings.toggle_site":      config.Keybindings.ToggleSite,
		"keybindings.force":            config.Keybindings.Force,
		"keybindings.intensity":        config.Keybindings.Intensity,
		"keybindings.quit":             config.Keybindings.Quit,
	}

	var validationErrors []string
	owner := make(map[string]string)
	for _, name := range sortedKeys(bindings) {
		keys := bindings[name]
		if len(keys) == 0 {
			validationErrors = append(validationErrors, name+" must have at least one key")
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok {
				validationErrors = append(validationErrors, fmt.Sprintf("%s: key %q is already bound to %s", name, k, prev))
				continue
			}
			owner[k] = name
		}
	}
	return validationErrors
}

func validatePalette(field string, p ColorPalette) []string {
	colors := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
	}

	var validationErrors []string
	for _, name := range sortedKeys(colors) {
		if !hexColor.MatchString(colors[name]) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.%s must be a #rrggbb color, got %q", field, name, colors[name]))
		}
	}
	return validationErrors
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
