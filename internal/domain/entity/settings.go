package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// SettingKey names one persisted setting.
type SettingKey string

const (
	KeyExtensionEnabled  SettingKey = "extensionEnabled"
	KeyDarkModeEnabled   SettingKey = "darkModeEnabled"
	KeyDarkModeIntensity SettingKey = "darkModeIntensity"
	KeyAutoApplyDarkMode SettingKey = "autoApplyDarkMode"
	KeyInstallationDate  SettingKey = "installationDate"
	KeyLastUpdated       SettingKey = "lastUpdated"
	KeyWebsiteSettings   SettingKey = "websiteSettings"
)

// GlobalKeys are the keys backing GlobalSettings.
func GlobalKeys() []SettingKey {
	return []SettingKey{
		KeyExtensionEnabled,
		KeyDarkModeEnabled,
		KeyDarkModeIntensity,
		KeyAutoApplyDarkMode,
		KeyInstallationDate,
		KeyLastUpdated,
	}
}

// AllKeys are every key the store knows about.
func AllKeys() []SettingKey {
	return append(GlobalKeys(), KeyWebsiteSettings)
}

// GlobalSettings are the user-wide dark mode preferences.
//
// ExtensionEnabled and AutoApplyDarkMode are persisted and editable but do not
// take part in resolution.
type GlobalSettings struct {
	ExtensionEnabled  bool
	DarkModeEnabled   bool
	DarkModeIntensity Intensity
	AutoApplyDarkMode bool
	InstallationDate  time.Time
	LastUpdated       time.Time
}

// DefaultGlobalSettings returns the values used when nothing is stored.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		ExtensionEnabled:  true,
		DarkModeEnabled:   false,
		DarkModeIntensity: DefaultIntensity,
		AutoApplyDarkMode: true,
	}
}

// WebsiteSetting is a per-domain override of the global enabled flag.
type WebsiteSetting struct {
	DarkModeEnabled bool      `json:"darkModeEnabled"`
	AddedDate       time.Time `json:"addedDate"`
}

// WebsiteSettings maps exact hostnames to their override.
type WebsiteSettings map[string]WebsiteSetting

// Clone returns a shallow copy safe to modify.
func (w WebsiteSettings) Clone() WebsiteSettings {
	out := make(WebsiteSettings, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// EffectiveState is the resolved dark mode state of one page. Never persisted.
type EffectiveState struct {
	Enabled   bool      `json:"enabled"`
	Intensity Intensity `json:"intensity"`
}

// Settings is a snapshot of everything the store holds.
type Settings struct {
	Global   GlobalSettings
	Websites WebsiteSettings
}

// DefaultSettings returns a snapshot with defaults and no overrides.
func DefaultSettings() Settings {
	return Settings{
		Global:   DefaultGlobalSettings(),
		Websites: WebsiteSettings{},
	}
}

// ApplyValues overlays raw stored values onto s. Keys missing from values keep
// their current value. A value that cannot be decoded is skipped and reported
// in the returned list of keys.
func (s *Settings) ApplyValues(values map[SettingKey]json.RawMessage) []SettingKey {
	var invalid []SettingKey
	decode := func(key SettingKey, dst any) {
		raw, ok := values[key]
		if !ok {
			return
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			invalid = append(invalid, key)
		}
	}

	decode(KeyExtensionEnabled, &s.Global.ExtensionEnabled)
	decode(KeyDarkModeEnabled, &s.Global.DarkModeEnabled)
	decode(KeyAutoApplyDarkMode, &s.Global.AutoApplyDarkMode)
	decode(KeyInstallationDate, &s.Global.InstallationDate)
	decode(KeyLastUpdated, &s.Global.LastUpdated)

	var intensity Intensity
	decode(KeyDarkModeIntensity, &intensity)
	if _, ok := values[KeyDarkModeIntensity]; ok {
		s.Global.DarkModeIntensity = intensity.OrDefault()
	}

	if _, ok := values[KeyWebsiteSettings]; ok {
		sites := WebsiteSettings{}
		decode(KeyWebsiteSettings, &sites)
		s.Websites = sites
	}
	if s.Websites == nil {
		s.Websites = WebsiteSettings{}
	}

	return invalid
}

// Values returns the global settings as storable key/value pairs.
// Zero timestamps are left out.
func (g GlobalSettings) Values() map[SettingKey]any {
	values := map[SettingKey]any{
		KeyExtensionEnabled:  g.ExtensionEnabled,
		KeyDarkModeEnabled:   g.DarkModeEnabled,
		KeyDarkModeIntensity: g.DarkModeIntensity.OrDefault(),
		KeyAutoApplyDarkMode: g.AutoApplyDarkMode,
	}
	if !g.InstallationDate.IsZero() {
		values[KeyInstallationDate] = g.InstallationDate
	}
	if !g.LastUpdated.IsZero() {
		values[KeyLastUpdated] = g.LastUpdated
	}
	return values
}

func (g GlobalSettings) String() string {
	if !g.DarkModeEnabled {
		return "off"
	}
	return fmt.Sprintf("on (%s)", g.DarkModeIntensity.OrDefault())
}
