package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestSettings_ApplyValues_DefaultsWhenEmpty(t *testing.T) {
	s := DefaultSettings()
	invalid := s.ApplyValues(nil)

	assert.Empty(t, invalid)
	assert.True(t, s.Global.ExtensionEnabled)
	assert.False(t, s.Global.DarkModeEnabled)
	assert.Equal(t, IntensityDeep, s.Global.DarkModeIntensity)
	assert.True(t, s.Global.AutoApplyDarkMode)
	assert.NotNil(t, s.Websites)
}

func TestSettings_ApplyValues_Overlay(t *testing.T) {
	added := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := DefaultSettings()
	invalid := s.ApplyValues(map[SettingKey]json.RawMessage{
		KeyDarkModeEnabled:   raw(t, true),
		KeyDarkModeIntensity: raw(t, "medium"),
		KeyWebsiteSettings: raw(t, map[string]any{
			"example.com": map[string]any{"darkModeEnabled": false, "addedDate": added},
		}),
	})

	assert.Empty(t, invalid)
	assert.True(t, s.Global.DarkModeEnabled)
	assert.Equal(t, IntensityMedium, s.Global.DarkModeIntensity)
	require.Contains(t, s.Websites, "example.com")
	assert.False(t, s.Websites["example.com"].DarkModeEnabled)
	assert.True(t, added.Equal(s.Websites["example.com"].AddedDate))
}

func TestSettings_ApplyValues_UnknownIntensityFallsBackToDeep(t *testing.T) {
	s := DefaultSettings()
	s.ApplyValues(map[SettingKey]json.RawMessage{
		KeyDarkModeIntensity: raw(t, "ultra"),
	})
	assert.Equal(t, IntensityDeep, s.Global.DarkModeIntensity)
}

func TestSettings_ApplyValues_ReportsUndecodable(t *testing.T) {
	s := DefaultSettings()
	invalid := s.ApplyValues(map[SettingKey]json.RawMessage{
		KeyDarkModeEnabled: json.RawMessage(`"yes"`),
	})
	assert.Equal(t, []SettingKey{KeyDarkModeEnabled}, invalid)
	assert.False(t, s.Global.DarkModeEnabled)
}

func TestGlobalSettings_Values_SkipsZeroTimes(t *testing.T) {
	values := DefaultGlobalSettings().Values()
	assert.NotContains(t, values, KeyInstallationDate)
	assert.NotContains(t, values, KeyLastUpdated)
	assert.Equal(t, IntensityDeep, values[KeyDarkModeIntensity])
}

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		in   Intensity
		want Palette
	}{
		{IntensityLight, Palette{"#1a1a1a", "#e0e0e0", "#444444"}},
		{IntensityMedium, Palette{"#121212", "#d0d0d0", "#333333"}},
		{IntensityDeep, Palette{"#000000", "#e0e0e0", "#333333"}},
		{"", Palette{"#000000", "#e0e0e0", "#333333"}},
		{"neon", Palette{"#000000", "#e0e0e0", "#333333"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, PaletteFor(tt.in))
		})
	}
}

func TestParseIntensity(t *testing.T) {
	got, err := ParseIntensity(" Medium ")
	require.NoError(t, err)
	assert.Equal(t, IntensityMedium, got)

	_, err = ParseIntensity("dim")
	assert.Error(t, err)
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("disk full")
	var err error = &StorageError{Op: "set", Keys: []SettingKey{KeyDarkModeEnabled}, Err: cause}
	wrapped := fmt.Errorf("failed to persist: %w", err)

	assert.ErrorIs(t, wrapped, ErrStorage)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrDelivery)

	var se *StorageError
	require.ErrorAs(t, wrapped, &se)
	assert.Equal(t, "set", se.Op)

	derr := &DeliveryError{PageID: "7", Err: ErrNoListener}
	assert.ErrorIs(t, derr, ErrDelivery)
	assert.ErrorIs(t, derr, ErrNoListener)
	assert.Contains(t, derr.Error(), "7")
}
