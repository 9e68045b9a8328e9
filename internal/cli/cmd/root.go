// Package cmd provides Cobra CLI commands for emojipick.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli"
	"github.com/bnema/emojipick/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "emojipick",
		Short: "A keyboard-driven emoji picker for the terminal",
		Long: `emojipick - pick an emoji, get its glyph.

Opens a searchable emoji grid with one tab per category and a tab of
recently used emoji. The chosen glyph is printed on stdout, so it can be
used from scripts and window manager bindings:

  emojipick | wl-copy
  emojipick --copy

Run without a subcommand to open the picker.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
		RunE: runPick,
	}
)

// skipApp marks commands that run without config, dataset or history.
const skipApp = "skip-app"

func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	_, skip := cmd.Annotations[skipApp]
	return !skip
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/emojipick/config.toml)")
	flags.BoolVarP(&appOpts.Verbose, "verbose", "v", false, "write debug logs to stderr")
	flags.BoolVar(&appOpts.Ephemeral, "ephemeral", false, "keep history in memory for this run")
}

// Execute runs the root command.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and releases the app afterwards.
// Cobra skips PersistentPostRun when RunE fails.
func run() error {
	err := rootCmd.Execute()
	closeApp()
	return err
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
