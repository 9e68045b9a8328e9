package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli/styles"
)

var (
	historyClear bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recently used emoji",
	Long: `Print the recently used emoji, most recent first.

The list is stored under history.key in the configured backend.
--clear removes it.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete the stored history")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of entries to print (0 for all)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewEmojiCLIRenderer(app.Theme)

	if historyClear {
		if err := app.HistoryUC.Clear(app.Ctx()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderHistoryCleared(app.HistoryUC.Key()))
		return nil
	}

	items, err := app.HistoryUC.Load(app.Ctx())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if historyLimit > 0 && len(items) > historyLimit {
		items = items[:historyLimit]
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEmpty(app.Translator.T("picker.empty_history")))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderList(items))
	return nil
}
