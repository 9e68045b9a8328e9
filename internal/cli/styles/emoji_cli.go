package styles

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bnema/emojipick/internal/domain/entity"
)

// glyphColumn is the display width reserved for a glyph in list output.
const glyphColumn = 4

// EmojiCLIRenderer renders non-interactive output for the search, list,
// history and categories commands.
type EmojiCLIRenderer struct {
	theme *Theme
}

func NewEmojiCLIRenderer(theme *Theme) *EmojiCLIRenderer {
	return &EmojiCLIRenderer{theme: theme}
}

// CategoryRow is one line of the categories table.
type CategoryRow struct {
	Symbol string
	Key    entity.CategoryKey
	Label  string
	Count  int
}

func (r *EmojiCLIRenderer) RenderEmpty(message string) string {
	return r.theme.Subtle.Render(message)
}

// RenderList prints one emoji per line: glyph, then its short names.
func (r *EmojiCLIRenderer) RenderList(items []entity.Emoji) string {
	var b strings.Builder
	for _, e := range items {
		b.WriteString(r.renderOne(e))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *EmojiCLIRenderer) renderOne(e entity.Emoji) string {
	glyph := e.Glyph()
	pad := glyphColumn - uniseg.StringWidth(glyph)
	if pad < 1 {
		pad = 1
	}
	names := make([]string, len(e.ShortNames))
	for i, n := range e.ShortNames {
		names[i] = ":" + n + ":"
	}
	return glyph + strings.Repeat(" ", pad) + r.theme.Normal.Render(strings.Join(names, " "))
}

// RenderCategories prints the category table in tab order.
func (r *EmojiCLIRenderer) RenderCategories(rows []CategoryRow) string {
	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, len(row.Key))
	}

	var b strings.Builder
	for _, row := range rows {
		pad := glyphColumn - uniseg.StringWidth(row.Symbol)
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(&b, "%s%s%s  %s",
			row.Symbol,
			strings.Repeat(" ", pad),
			r.theme.Highlight.Render(fmt.Sprintf("%-*s", keyWidth, row.Key)),
			r.theme.Normal.Render(row.Label),
		)
		if row.Count > 0 {
			b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (%d)", row.Count)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *EmojiCLIRenderer) RenderHistoryCleared(key string) string {
	return fmt.Sprintf("%s History %s cleared.",
		r.theme.Highlight.Render(IconTrash),
		r.theme.Highlight.Render(key),
	)
}

func (r *EmojiCLIRenderer) RenderCopied(glyph string) string {
	return fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconCheck), glyph)
}

func (r *EmojiCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
