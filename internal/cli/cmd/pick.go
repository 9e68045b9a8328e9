package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/emojipick/internal/cli/model"
	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/validation"
	"github.com/bnema/emojipick/internal/infrastructure/config"
	"github.com/bnema/emojipick/internal/logging"
)

var errNotATerminal = errors.New("the picker needs a terminal; use 'emojipick search' in scripts")

// pickFlags holds the pick command flags.
type pickFlags struct {
	columns  int
	category string
	copy     bool
	theme    string

	columnsSet bool
}

var pickOpts pickFlags

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the interactive picker (default)",
	Long: `Open the interactive emoji grid.

Arrows move, tab and shift+tab switch category, typing searches by short
name, enter selects, esc quits. Tabs and cells can be clicked.

The selected glyph is printed on stdout. With picker.close_on_select
disabled, every selection is collected and printed on exit.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	for _, c := range []*cobra.Command{rootCmd, pickCmd} {
		c.Flags().IntVarP(&pickOpts.columns, "columns", "c", 0, "grid columns (overrides picker.columns)")
		c.Flags().StringVar(&pickOpts.category, "category", "", "tab to open (key or dataset name)")
		c.Flags().BoolVar(&pickOpts.copy, "copy", false, "also copy the selection to the clipboard")
		c.Flags().StringVar(&pickOpts.theme, "theme", "", "accent color, #RRGGBB")
	}
}

// pickOptions merges the configuration with the command flags.
func pickOptions(cfg *config.Config, flags pickFlags) (model.Options, error) {
	opts := model.Options{
		ShowHistory:   cfg.Picker.ShowHistory,
		Columns:       cfg.Picker.Columns,
		CloseOnSelect: cfg.Picker.CloseOnSelect,
		Theme:         flags.theme,
	}

	if flags.columnsSet {
		if flags.columns <= 0 {
			return opts, fmt.Errorf("--columns must be positive, got %d", flags.columns)
		}
		opts.Columns = flags.columns
	}

	if flags.theme != "" && !validation.IsHexColor(flags.theme) {
		return opts, fmt.Errorf("--theme must be a #RRGGBB color, got %q", flags.theme)
	}

	category := cfg.Picker.DefaultCategory
	if flags.category != "" {
		category = flags.category
	}
	if category != "" {
		key, ok := entity.ParseCategoryKey(category)
		if !ok {
			return opts, fmt.Errorf("unknown category %q", category)
		}
		opts.DefaultCategory = key
	}

	return opts, nil
}

func runPick(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return errNotATerminal
	}

	flags := pickOpts
	flags.columnsSet = cmd.Flags().Changed("columns")
	opts, err := pickOptions(app.Config, flags)
	if err != nil {
		return err
	}

	var selections []string
	opts.OnEmojiSelected = func(glyph string) {
		selections = append(selections, glyph)
	}

	m := model.NewPickerModel(app.Ctx(), model.Deps{
		Catalog:    app.Catalog,
		History:    app.HistoryUC,
		Matcher:    app.Matcher,
		Translator: app.Translator,
		Theme:      app.Theme,
	}, opts)

	// stdout is reserved for the selection.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(os.Stderr))

	_ = app.WatchConfig(func(c *config.Config) {
		msg := model.ConfigChangedMsg{Theme: styles.NewTheme(c)}
		if !flags.columnsSet {
			msg.Columns = c.Picker.Columns
		}
		p.Send(msg)
	})

	if _, err = p.Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	if len(selections) == 0 {
		logging.FromContext(app.Ctx()).Debug().Msg("picker closed without selection")
		return nil
	}

	out := strings.Join(selections, "")
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if flags.copy || app.Config.Picker.CopyToClipboard {
		renderer := styles.NewEmojiCLIRenderer(app.Theme)
		if err := app.CopyUC.Copy(app.Ctx(), out); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return nil
		}
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderCopied(
			app.Translator.TData("picker.copied", map[string]any{"Glyph": out}),
		))
	}
	return nil
}
