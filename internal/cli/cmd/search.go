package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/emojipick/internal/application/usecase"
	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/search"
)

var (
	searchLimit int
	searchFuzzy bool
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Print emoji whose short name matches a query",
	Long: `Match the query against every short name and print the results,
one emoji per line, in dataset order.

Matching follows search.mode from the config; --fuzzy forces fuzzy
matching ranked by score.`,
	Example: `  emojipick search heart
  emojipick search --fuzzy thmbs --limit 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results (0 for all)")
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "use fuzzy matching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := app.SearchUC
	if searchFuzzy {
		uc = usecase.NewSearchEmojiUseCase(app.Catalog, search.Fuzzy{})
	}

	out := uc.Search(app.Ctx(), usecase.SearchInput{
		Query: strings.Join(args, " "),
		Limit: searchLimit,
	})

	renderer := styles.NewEmojiCLIRenderer(app.Theme)
	if len(out.Matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEmpty(app.Translator.T("picker.no_results")))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderList(out.Matches))
	return nil
}
