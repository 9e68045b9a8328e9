// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/emojipick/internal/domain/validation"
	"github.com/bnema/emojipick/internal/infrastructure/config"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	// Base colors (from config.ColorPalette)
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	Error lipgloss.Color

	// Pre-built styles
	Title      lipgloss.Style
	Normal     lipgloss.Style
	Subtle     lipgloss.Style
	Highlight  lipgloss.Style
	ErrorStyle lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabBar      lipgloss.Style

	Cell         lipgloss.Style
	CellSelected lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Status lipgloss.Style
}

// NewTheme creates a Theme from config. A picker.theme accent overrides the
// palette accent.
func NewTheme(cfg *config.Config) *Theme {
	p := config.DefaultPalette()
	accent := ""
	if cfg != nil {
		if cfg.Appearance.Palette.Background != "" {
			p = cfg.Appearance.Palette
		}
		accent = cfg.Picker.Theme
	}
	return NewThemeFromPalette(p).WithAccent(accent)
}

// NewThemeFromPalette creates a Theme from a ColorPalette.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color("#ef4444"),
	}

	t.buildStyles()
	return t
}

// WithAccent returns a copy of the theme using accent as its accent color.
// Invalid or empty values return the theme unchanged.
func (t *Theme) WithAccent(accent string) *Theme {
	accent = strings.TrimSpace(accent)
	if accent == "" || !validation.IsHexColor(accent) {
		return t
	}
	c := *t
	c.Accent = lipgloss.Color(accent)
	c.buildStyles()
	return &c
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	// Tab styles
	t.ActiveTab = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1).
		Bold(true)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 1)

	t.TabBar = lipgloss.NewStyle().
		Background(t.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	// Grid cells are centred in their column by the model.
	t.Cell = lipgloss.NewStyle().
		Foreground(t.Text).
		Align(lipgloss.Center)

	t.CellSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant).
		Align(lipgloss.Center).
		Bold(true)

	// Input styles
	t.Input = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	// Help styles
	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Status = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)
}
