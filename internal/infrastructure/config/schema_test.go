package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])
	assert.Contains(t, string(data), "max_entries")
	assert.Contains(t, string(data), "close_on_select")
	assert.Contains(t, string(data), "fuzzy ranks results by match score")
}

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefaultConfig(path, false))
	assert.ErrorIs(t, WriteDefaultConfig(path, false), ErrConfigExists)
	require.NoError(t, WriteDefaultConfig(path, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[picker]")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.True(t, mgr.FileLoaded())

	got := mgr.Get()
	want := DefaultConfig()
	assert.Equal(t, want.Picker, got.Picker)
	assert.Equal(t, want.Search, got.Search)
	assert.Equal(t, want.Appearance, got.Appearance)
	assert.Equal(t, want.History.Key, got.History.Key)
}
