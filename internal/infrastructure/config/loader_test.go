package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 6, mgr.viper.GetInt("picker.columns"))
	assert.Equal(t, "sqlite", mgr.viper.GetString("history.backend"))
	assert.Equal(t, "emojipick:history", mgr.viper.GetString("history.key"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.palette.accent"))
}

func TestManager_Load_MissingFileUsesDefaults(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.False(t, mgr.FileLoaded())
	assert.Equal(t, filepath.Join(root, "config", "emojipick", "config.toml"), mgr.GetConfigFile())
	assert.Equal(t, 6, cfg.Picker.Columns)
	assert.Equal(t, SearchModeSubstring, cfg.Search.Mode)
	assert.Equal(t, filepath.Join(root, "data", "emojipick", "history.sqlite"), cfg.History.Path)
	assert.Zero(t, cfg.History.MaxEntries)
}

func TestManager_Load_File(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
language = "fr"

[picker]
columns = 8
theme = "#ff00aa"
default_category = "Food"

[search]
mode = "FUZZY"

[history]
backend = "diskv"
max_entries = 50
`)

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.True(t, mgr.FileLoaded())
	assert.Equal(t, 8, cfg.Picker.Columns)
	assert.Equal(t, "#ff00aa", cfg.Picker.Theme)
	assert.Equal(t, "food", cfg.Picker.DefaultCategory)
	assert.Equal(t, SearchModeFuzzy, cfg.Search.Mode)
	assert.Equal(t, HistoryBackendDiskv, cfg.History.Backend)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	assert.Equal(t, "history", filepath.Base(cfg.History.Path))
	assert.Equal(t, "fr", cfg.Language)
	assert.True(t, cfg.Picker.CloseOnSelect, "unset keys keep their defaults")
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("EMOJIPICK_PICKER_COLUMNS", "10")
	t.Setenv("EMOJIPICK_LOG_LEVEL", "debug")
	t.Setenv("EMOJIPICK_HISTORY_BACKEND", "memory")

	mgr, err := NewManager(WithConfigFile(filepath.Join(t.TempDir(), "none.toml")))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 10, cfg.Picker.Columns)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, HistoryBackendMemory, cfg.History.Backend)
	assert.Empty(t, cfg.History.Path)
}

func TestManager_Load_InvalidFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[picker\ncolumns = ")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestManager_Load_ValidationAggregates(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[picker]
columns = 0

[history]
backend = "redis"
`)

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picker.columns")
	assert.Contains(t, err.Error(), "history.backend")
}

func TestManager_Get_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Picker.Columns = 99
	assert.Equal(t, 6, mgr.Get().Picker.Columns)
}

func TestManager_Watch(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[picker]\ncolumns = 6\n")

	mgr, err := NewManager(WithConfigFile(path))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var columns atomic.Int64
	mgr.OnConfigChange(func(c *Config) {
		columns.Store(int64(c.Picker.Columns))
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "second Watch is a no-op")

	writeFile(t, path, "[picker]\ncolumns = 9\n")

	require.Eventually(t, func() bool { return columns.Load() == 9 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 9, mgr.Get().Picker.Columns)
}

func TestManager_Watch_NoFile(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager(WithConfigFile(filepath.Join(t.TempDir(), "none.toml")))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.ErrorIs(t, mgr.Watch(), ErrNoConfigFile)
}
