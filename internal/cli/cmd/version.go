package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Aliases:     []string{"about"},
	Short:       "Show version and build information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Version)
			return nil
		}
		renderer := styles.NewAboutRenderer(styles.NewTheme(nil))
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version only")
}
