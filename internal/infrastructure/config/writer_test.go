package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Broadcast.MaxConcurrency = 5

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[dark_mode]")

	var back Config
	require.NoError(t, toml.Unmarshal(data, &back))
	assert.Equal(t, 5, back.Broadcast.MaxConcurrency)
	assert.Equal(t, cfg.DarkMode.PrivilegedSchemes, back.DarkMode.PrivilegedSchemes)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSchema_UsesFileKeys(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Dimmer Configuration", doc["title"])
	assert.Contains(t, string(data), `"max_concurrency"`)
	assert.Contains(t, string(data), `"privileged_schemes"`)
}
