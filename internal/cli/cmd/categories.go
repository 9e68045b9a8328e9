package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/entity"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List picker categories and their emoji counts",
	Args:    cobra.NoArgs,
	RunE:    runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	counts := app.SearchUC.Counts()
	rows := make([]styles.CategoryRow, 0, len(entity.Categories()))
	for _, c := range entity.Categories() {
		rows = append(rows, styles.CategoryRow{
			Symbol: c.Symbol,
			Key:    c.Key,
			Label:  app.Translator.T("category." + string(c.Key)),
			Count:  counts[c.Key],
		})
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewEmojiCLIRenderer(app.Theme).RenderCategories(rows))
	return nil
}
