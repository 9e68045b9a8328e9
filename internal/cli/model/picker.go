package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/catalog"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/picker"
	"github.com/bnema/emojipick/internal/domain/search"
	"github.com/bnema/emojipick/internal/i18n"
	"github.com/bnema/emojipick/internal/logging"
)

// HistoryService is the part of the history use case the picker needs.
type HistoryService interface {
	Load(ctx context.Context) ([]entity.Emoji, error)
	Record(ctx context.Context, e entity.Emoji) ([]entity.Emoji, error)
}

// Options is the embedding contract of the picker.
type Options struct {
	// ShowHistory is accepted for compatibility; the history tab is always shown.
	ShowHistory bool
	// OnEmojiSelected receives the glyph of every selection, on the Update goroutine.
	OnEmojiSelected func(glyph string)
	// Theme overrides the accent color (hex).
	Theme string
	// Columns is the grid width in cells. Zero means picker.DefaultColumns.
	Columns int
	// CloseOnSelect quits the program after the first selection.
	CloseOnSelect bool
	// DefaultCategory is the tab shown on open.
	DefaultCategory entity.CategoryKey
}

// Deps holds the collaborators of the picker. Only Catalog is required.
type Deps struct {
	Catalog    *catalog.Catalog
	History    HistoryService
	Matcher    search.Matcher
	Translator *i18n.Translator
	Theme      *styles.Theme
}

// ConfigChangedMsg applies a reloaded configuration to a running picker.
type ConfigChangedMsg struct {
	Columns int
	Theme   *styles.Theme
}

// PickerModel is the Bubble Tea model of the emoji picker.
type PickerModel struct {
	// UI components
	tabs    styles.TabsModel
	search  textinput.Model
	loading styles.LoadingModel
	help    help.Model
	keys    styles.PickerKeyMap

	// State
	state    picker.State
	offset   int // first visible grid row
	width    int
	height   int
	selected string

	// Dependencies
	ctx     context.Context
	catalog *catalog.Catalog
	history HistoryService
	matcher search.Matcher
	tr      *i18n.Translator
	theme   *styles.Theme
	opts    Options
}

// NewPickerModel creates a new picker model.
func NewPickerModel(ctx context.Context, deps Deps, opts Options) PickerModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithComponent(ctx, "picker")

	tr := deps.Translator
	if tr == nil {
		tr, _ = i18n.New("en")
	}
	theme := deps.Theme
	if theme == nil {
		theme = styles.NewTheme(nil)
	}
	theme = theme.WithAccent(opts.Theme)

	cat := deps.Catalog
	if cat == nil {
		cat = catalog.New(nil)
	}
	matcher := deps.Matcher
	if matcher == nil {
		matcher = search.Substring{}
	}

	searchInput := styles.NewSearchInput(theme, tr.T("picker.search_placeholder"))
	searchInput.Focus()

	state := picker.NewState(opts.Columns, opts.DefaultCategory)
	tabs := styles.CategoryTabs(theme)
	tabs.SetActive(entity.CategoryIndex(state.ActiveCategory))

	return PickerModel{
		tabs:    tabs,
		search:  searchInput,
		loading: styles.NewLoading(theme, tr.T("picker.loading")),
		help:    styles.NewStyledHelp(theme),
		keys: styles.NewPickerKeyMap(styles.HelpLabels{
			Move:     tr.T("help.move"),
			Select:   tr.T("help.select"),
			Category: tr.T("help.category"),
			Quit:     tr.T("help.quit"),
			More:     tr.T("help.more"),
		}),
		state:   state,
		ctx:     ctx,
		catalog: cat,
		history: deps.History,
		matcher: matcher,
		tr:      tr,
		theme:   theme,
		opts:    opts,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loading.Spinner.Tick,
		m.loadHistory(),
	)
}

func (m PickerModel) loadHistory() tea.Cmd {
	if m.history == nil {
		return nil
	}
	h, ctx := m.history, m.ctx
	return func() tea.Msg {
		list, err := h.Load(ctx)
		return picker.HistoryLoaded{History: list, Err: err}
	}
}

func (m PickerModel) recordHistory(e entity.Emoji) tea.Cmd {
	if m.history == nil {
		return nil
	}
	h, ctx := m.history, m.ctx
	return func() tea.Msg {
		list, err := h.Record(ctx, e)
		return picker.HistoryRecorded{History: list, Err: err}
	}
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-8, 1)
		m.apply(picker.LayoutMeasured{Width: msg.Width})

	case ConfigChangedMsg:
		if msg.Theme != nil {
			m.setTheme(msg.Theme.WithAccent(m.opts.Theme))
		}
		m.apply(picker.ColumnsChanged{Columns: msg.Columns})

	case picker.Event:
		m.apply(msg)

	case spinner.TickMsg:
		if !m.state.Ready {
			var cmd tea.Cmd
			m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			visible := m.visible()
			if m.state.Cursor < len(visible) {
				cmds = append(cmds, m.choose(visible[m.state.Cursor]))
			}

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-m.state.Columns)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(m.state.Columns)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)

		case key.Matches(msg, m.keys.NextTab):
			m.apply(picker.CategoryCycled{Delta: 1})
		case key.Matches(msg, m.keys.PrevTab):
			m.apply(picker.CategoryCycled{Delta: -1})

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			cmds = append(cmds, cmd)

			if m.search.Value() != m.state.SearchQuery {
				m.apply(picker.SearchChanged{Query: m.search.Value()})
			}
		}

	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// apply runs one transition and brings the widgets in line with the new state.
func (m *PickerModel) apply(ev picker.Event) picker.Effect {
	var eff picker.Effect
	m.state, eff = picker.Reduce(m.state, ev)

	m.tabs.SetActive(entity.CategoryIndex(m.state.ActiveCategory))
	if m.search.Value() != m.state.SearchQuery {
		m.search.SetValue(m.state.SearchQuery)
	}
	if m.state.ScrollToTop {
		m.offset = 0
		m.state.ScrollToTop = false
	}
	m.keepCursorVisible()
	return eff
}

func (m *PickerModel) moveCursor(delta int) {
	m.apply(picker.CursorMoved{Delta: delta, Len: len(m.visible())})
}

// choose selects e and returns the commands the selection needs.
func (m *PickerModel) choose(e entity.Emoji) tea.Cmd {
	eff := m.apply(picker.EmojiChosen{Emoji: e})
	if eff.Glyph == "" {
		return nil
	}

	logging.FromContext(m.ctx).Debug().
		Str("unified", e.Unified).
		Str("category", e.Category).
		Msg("emoji selected")

	m.selected = eff.Glyph
	if m.opts.OnEmojiSelected != nil {
		m.opts.OnEmojiSelected(eff.Glyph)
	}

	var record tea.Cmd
	if eff.Record != nil {
		record = m.recordHistory(*eff.Record)
	}
	if m.opts.CloseOnSelect {
		// The write must finish before the program exits.
		return tea.Sequence(record, tea.Quit)
	}
	return record
}

func (m *PickerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-m.state.Columns)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.state.Columns)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	if msg.Y == 0 {
		if i := m.tabs.TabAt(msg.X); i >= 0 {
			m.apply(picker.CategorySelected{Key: entity.CategoryKeys()[i]})
		}
		return nil
	}

	idx, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	m.apply(picker.CursorMoved{Delta: idx - m.state.Cursor, Len: len(m.visible())})
	return m.choose(m.visible()[idx])
}

// cellAt maps screen coordinates to an index of the visible list.
func (m PickerModel) cellAt(x, y int) (int, bool) {
	if !m.state.Ready || m.state.ColumnSize <= 0 {
		return 0, false
	}
	top := m.headerHeight()
	if y < top || y >= top+m.gridRows() {
		return 0, false
	}
	col := x / m.state.ColumnSize
	if x < 0 || col >= m.state.Columns {
		return 0, false
	}
	idx := (m.offset+y-top)*m.state.Columns + col
	if idx >= len(m.visible()) {
		return 0, false
	}
	return idx, true
}

func (m *PickerModel) setTheme(theme *styles.Theme) {
	m.theme = theme
	m.tabs.SetTheme(theme)
	styles.RestyleInput(&m.search, theme)
	m.loading = styles.NewLoading(theme, m.loading.Message)
	showAll, width := m.help.ShowAll, m.help.Width
	m.help = styles.NewStyledHelp(theme)
	m.help.ShowAll, m.help.Width = showAll, width
}

func (m PickerModel) visible() []entity.Emoji {
	return picker.Visible(m.state, m.catalog, m.matcher)
}

func (m PickerModel) headerHeight() int {
	return lipgloss.Height(m.tabs.View()) +
		lipgloss.Height(m.theme.InputBox(m.search.View(), true)) +
		1 // title
}

func (m PickerModel) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

// gridRows is the number of grid rows that fit in the window.
func (m PickerModel) gridRows() int {
	return max(m.height-m.headerHeight()-m.footerHeight(), 1)
}

func (m *PickerModel) keepCursorVisible() {
	if m.state.Columns <= 0 {
		return
	}
	rows := m.gridRows()
	row := m.state.Cursor / m.state.Columns
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}

	total := (len(m.visible()) + m.state.Columns - 1) / m.state.Columns
	m.offset = max(min(m.offset, total-rows), 0)
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme

	tabBar := m.tabs.View()
	searchBar := t.InputBox(m.search.View(), true)

	if !m.state.Ready {
		return lipgloss.JoinVertical(lipgloss.Left, tabBar, searchBar, "", m.loading.View())
	}

	visible := m.visible()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tabBar,
		searchBar,
		t.Title.Render(m.title()),
		m.renderGrid(visible),
		m.renderStatus(visible),
		m.help.View(m.keys),
	)
}

func (m PickerModel) title() string {
	if m.state.Searching() {
		return m.tr.T("picker.search_results")
	}
	return m.tr.T("category." + string(m.state.ActiveCategory))
}

// renderGrid renders only the rows inside the viewport.
func (m PickerModel) renderGrid(visible []entity.Emoji) string {
	rows := m.gridRows()

	if len(visible) == 0 {
		msg := m.tr.T("picker.no_results")
		if !m.state.Searching() && m.state.ActiveCategory == entity.CategoryHistory {
			msg = m.tr.T("picker.empty_history")
		}
		return m.theme.Subtle.Render(msg) + strings.Repeat("\n", rows-1)
	}

	cols := m.state.Columns
	lines := make([]string, 0, rows)
	for r := m.offset; r < m.offset+rows; r++ {
		start := r * cols
		if start >= len(visible) {
			lines = append(lines, "")
			continue
		}
		end := min(start+cols, len(visible))

		var b strings.Builder
		for i := start; i < end; i++ {
			b.WriteString(m.renderCell(visible[i], i == m.state.Cursor))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m PickerModel) renderCell(e entity.Emoji, selected bool) string {
	glyph := e.Glyph()
	size := m.state.ColumnSize
	pad := max(size-uniseg.StringWidth(glyph), 0)
	left := pad / 2
	cell := strings.Repeat(" ", left) + glyph + strings.Repeat(" ", pad-left)

	if selected {
		return m.theme.CellSelected.Render(cell)
	}
	return m.theme.Cell.Render(cell)
}

func (m PickerModel) renderStatus(visible []entity.Emoji) string {
	if m.state.Err != nil {
		return m.theme.ErrorStyle.Render(
			m.tr.TData("picker.history_error", map[string]any{"Error": m.state.Err.Error()}),
		)
	}

	status := m.tr.TCount("picker.count", len(visible))
	if m.state.Cursor < len(visible) {
		if label := visible[m.state.Cursor].Label(); label != "" {
			status = ":" + label + ":  " + status
		}
	}
	return m.theme.Status.Render(status)
}

// State returns the current picker state.
func (m PickerModel) State() picker.State {
	return m.state
}

// Selected returns the glyph of the last selection.
func (m PickerModel) Selected() (string, bool) {
	return m.selected, m.selected != ""
}

// Ensure interface compliance.
var _ tea.Model = (*PickerModel)(nil)
