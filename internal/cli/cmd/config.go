package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Long: `Inspect or create the configuration file.

These commands do not load the configuration, so they also work when the
current file is invalid.`,
	Annotations: map[string]string{skipApp: "true"},
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	RunE:        runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration",
	Long: `Print the JSON schema of the configuration file, for editors
that validate TOML against a schema.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	RunE:        runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default configuration file",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	RunE:        runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
}

// configFilePath returns the --config value or the XDG default.
func configFilePath() (string, error) {
	if appOpts.ConfigFile != "" {
		return appOpts.ConfigFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(path, statErr == nil))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	if err := config.WriteDefaultConfig(path, configForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCreated(path))
	return nil
}
