package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/entity"
)

var listCmd = &cobra.Command{
	Use:   "list [CATEGORY]",
	Short: "Print the emoji of a category",
	Long: `Print every emoji of a category in dataset order. Without an
argument the whole flat list is printed.

CATEGORY is a key (emotion, food, ...) or a dataset name such as
"Food & Drink". Use 'emojipick categories' to see them.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var keys []string
		for _, c := range entity.Categories() {
			if c.Key != entity.CategoryHistory {
				keys = append(keys, string(c.Key))
			}
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	key := entity.CategoryAll
	if len(args) == 1 {
		parsed, ok := entity.ParseCategoryKey(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q", args[0])
		}
		key = parsed
	}

	items, err := app.SearchUC.List(key)
	if err != nil {
		return fmt.Errorf("list %s: %w", key, err)
	}

	renderer := styles.NewEmojiCLIRenderer(app.Theme)
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEmpty(app.Translator.T("picker.no_results")))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderList(items))
	return nil
}
