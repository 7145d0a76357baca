package darkmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/url"
)

func global(enabled bool, intensity entity.Intensity) entity.GlobalSettings {
	g := entity.DefaultGlobalSettings()
	g.DarkModeEnabled = enabled
	g.DarkModeIntensity = intensity
	return g
}

func TestResolve(t *testing.T) {
	sites := entity.WebsiteSettings{
		"example.com": {DarkModeEnabled: false},
		"docs.io":     {DarkModeEnabled: true},
	}

	tests := []struct {
		name   string
		domain string
		global entity.GlobalSettings
		want   entity.EffectiveState
	}{
		{
			name:   "no entry uses global on",
			domain: "other.org",
			global: global(true, entity.IntensityMedium),
			want:   entity.EffectiveState{Enabled: true, Intensity: entity.IntensityMedium},
		},
		{
			name:   "no entry uses global off",
			domain: "other.org",
			global: global(false, entity.IntensityLight),
			want:   entity.EffectiveState{Enabled: false, Intensity: entity.IntensityLight},
		},
		{
			name:   "override off beats global on",
			domain: "example.com",
			global: global(true, entity.IntensityDeep),
			want:   entity.EffectiveState{Enabled: false, Intensity: entity.IntensityDeep},
		},
		{
			name:   "override on beats global off and keeps global intensity",
			domain: "docs.io",
			global: global(false, entity.IntensityLight),
			want:   entity.EffectiveState{Enabled: true, Intensity: entity.IntensityLight},
		},
		{
			name:   "empty domain never matches",
			domain: "",
			global: global(true, entity.IntensityMedium),
			want:   entity.EffectiveState{Enabled: true, Intensity: entity.IntensityMedium},
		},
		{
			name:   "missing intensity is deep",
			domain: "other.org",
			global: global(true, ""),
			want:   entity.EffectiveState{Enabled: true, Intensity: entity.IntensityDeep},
		},
		{
			name:   "exact hostname only",
			domain: "www.example.com",
			global: global(true, entity.IntensityDeep),
			want:   entity.EffectiveState{Enabled: true, Intensity: entity.IntensityDeep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.domain, tt.global, sites))
		})
	}
}

func TestResolve_NilSites(t *testing.T) {
	got := Resolve("example.com", global(true, entity.IntensityMedium), nil)
	assert.Equal(t, entity.EffectiveState{Enabled: true, Intensity: entity.IntensityMedium}, got)
}

func TestResolveURL(t *testing.T) {
	settings := entity.Settings{
		Global:   global(true, entity.IntensityDeep),
		Websites: entity.WebsiteSettings{"example.com": {DarkModeEnabled: false}},
	}
	schemes := url.DefaultPrivilegedSchemes()

	state, domain, err := ResolveURL("https://example.com/page", settings, schemes)
	require.NoError(t, err)
	assert.Equal(t, "example.com", domain)
	assert.False(t, state.Enabled)

	state, domain, err = ResolveURL("https://news.site/a", settings, schemes)
	require.NoError(t, err)
	assert.Equal(t, "news.site", domain)
	assert.Equal(t, entity.EffectiveState{Enabled: true, Intensity: entity.IntensityDeep}, state)

	state, domain, err = ResolveURL("file:///tmp/x.html", settings, schemes)
	require.NoError(t, err)
	assert.Empty(t, domain)
	assert.True(t, state.Enabled)

	_, _, err = ResolveURL("chrome://settings", settings, schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)

	_, _, err = ResolveURL("", settings, schemes)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSurface)
}
