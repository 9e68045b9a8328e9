package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emojipick/internal/cli"
	"github.com/bnema/emojipick/internal/domain/build"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/infrastructure/config"
)

// execute runs the root command with isolated XDG directories and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("LC_ALL", "C")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	appOpts = cli.Options{}
	searchLimit, searchFuzzy = 20, false
	historyClear, historyLimit = false, 0
	configForce, versionShort = false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := run()
	return out.String(), err
}

func TestPickOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.Columns = 9
	cfg.Picker.DefaultCategory = "food"

	tests := []struct {
		name    string
		flags   pickFlags
		check   func(t *testing.T, o optsView)
		wantErr string
	}{
		{
			name:  "config values",
			flags: pickFlags{},
			check: func(t *testing.T, o optsView) {
				assert.Equal(t, 9, o.Columns)
				assert.Equal(t, entity.CategoryFood, o.Category)
				assert.Empty(t, o.Theme)
			},
		},
		{
			name:  "flags override config",
			flags: pickFlags{columns: 5, columnsSet: true, category: "Flags", theme: "#ff00aa"},
			check: func(t *testing.T, o optsView) {
				assert.Equal(t, 5, o.Columns)
				assert.Equal(t, entity.CategoryFlags, o.Category)
				assert.Equal(t, "#ff00aa", o.Theme)
			},
		},
		{
			name:    "zero columns rejected",
			flags:   pickFlags{columns: 0, columnsSet: true},
			wantErr: "--columns",
		},
		{
			name:    "bad theme rejected",
			flags:   pickFlags{theme: "pink"},
			wantErr: "--theme",
		},
		{
			name:    "unknown category rejected",
			flags:   pickFlags{category: "weather"},
			wantErr: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := pickOptions(cfg, tt.flags)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, optsView{Columns: opts.Columns, Category: opts.DefaultCategory, Theme: opts.Theme})
		})
	}
}

type optsView struct {
	Columns  int
	Category entity.CategoryKey
	Theme    string
}

func TestNeedsApp(t *testing.T) {
	assert.True(t, needsApp(rootCmd))
	assert.True(t, needsApp(searchCmd))
	assert.False(t, needsApp(versionCmd))
	assert.False(t, needsApp(configInitCmd))
	assert.False(t, needsApp(&cobra.Command{Use: "help"}))
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "--ephemeral", "search", "doughnut")
	require.NoError(t, err)
	assert.Contains(t, out, ":doughnut:")

	out, err = execute(t, "--ephemeral", "search", "zzzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No emoji found")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "--ephemeral", "list", "food")
	require.NoError(t, err)
	assert.Contains(t, out, ":doughnut:")
	assert.NotContains(t, out, ":desktop_computer:")

	_, err = execute(t, "--ephemeral", "list", "history")
	require.Error(t, err)

	_, err = execute(t, "--ephemeral", "list", "weather")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestFailingCommandReleasesApp(t *testing.T) {
	_, err := execute(t, "--ephemeral", "list", "weather")
	require.Error(t, err)
	assert.Nil(t, GetApp())

	_, err = execute(t, "--ephemeral", "list", "food")
	require.NoError(t, err)
	assert.Nil(t, GetApp())
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "--ephemeral", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Food & Drink")
	assert.Contains(t, out, "Recently used")
}

func TestHistoryCommand(t *testing.T) {
	out, err := execute(t, "--ephemeral", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing picked yet")

	out, err = execute(t, "--ephemeral", "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "emojipick:history")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojipick.toml")

	out, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "config init")

	out, err = execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "close_on_select")
}

func TestBrokenConfigStillAllowsInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[picker]\ncolumns = 0\n"), 0o644))

	_, err := execute(t, "--config", path, "search", "doughnut")
	require.Error(t, err)

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err := execute(t, "--config", path, "--ephemeral", "search", "doughnut")
	require.NoError(t, err)
	assert.Contains(t, out, ":doughnut:")
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.NewInfo("1.2.3", "abc1234", "2026-10-16"))
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}
