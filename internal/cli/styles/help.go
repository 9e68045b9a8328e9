package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PickerKeyMap defines keybindings for the emoji picker.
// Printable keys are left to the search field, so navigation uses arrows only.
type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Select  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.NextTab, k.Select, k.Quit, k.Help}
}

// FullHelp returns keybindings for expanded help.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextTab, k.PrevTab},
		{k.Select, k.Help, k.Quit},
	}
}

// HelpLabels holds translated help descriptions.
type HelpLabels struct {
	Move     string
	Select   string
	Category string
	Quit     string
	More     string
}

func (l HelpLabels) orDefault() HelpLabels {
	if l.Move == "" {
		l.Move = "move"
	}
	if l.Select == "" {
		l.Select = "select"
	}
	if l.Category == "" {
		l.Category = "category"
	}
	if l.Quit == "" {
		l.Quit = "quit"
	}
	if l.More == "" {
		l.More = "more"
	}
	return l
}

// DefaultPickerKeyMap returns the default picker keybindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return NewPickerKeyMap(HelpLabels{})
}

// NewPickerKeyMap returns the picker keybindings with the given help labels.
func NewPickerKeyMap(labels HelpLabels) PickerKeyMap {
	l := labels.orDefault()
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("←↑↓→", l.Move),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", l.Move),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", l.Move),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", l.Move),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", l.Category),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", l.Category),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", l.Select),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", l.More),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", l.Quit),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
