package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// Run log layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the map sidebar
	sidebarWidth       = 20  // Width of the map sidebar
	maxRuns            = 100 // Max runs to load per map
)

// RunsKeyMap defines the key bindings for the run log.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Back    key.Binding
	Quit    key.Binding
	NextMap key.Binding
	PrevMap key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMap, k.PrevMap, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMap, k.PrevMap},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev map"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next map"),
		),
		NextMap: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next map"),
		),
		PrevMap: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev map"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run log: the longest walks
// per map.
type RunsModel struct {
	maps        []registry.MapInfo
	mapCursor   int
	store       *storage.Store
	runs        []storage.RunRecord
	stats       *storage.MapStats
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewRunsModel creates a new run log model.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		maps:        registry.List(),
		store:       store,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.maps) > 0 {
		m.loadRuns(m.maps[0].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Walked", Width: 9},
		{Title: "Ticks", Width: 7},
		{Title: "Bumps", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	// Give spare room to the player column.
	if spare := tableWidth - 61; spare > 0 {
		columns[4].Width += min(spare, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the longest walks and totals for the given map.
func (m *RunsModel) loadRuns(mapID string) {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(mapID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetMapStats(mapID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows, longest walk first.
func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%.1f", r.Distance),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Bumps),
			truncate(player, 20),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the run log model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run log.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMap), key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevMap), key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// moveCursor selects the next (delta 1) or previous (delta -1) map, wrapping.
func (m *RunsModel) moveCursor(delta int) {
	if len(m.maps) == 0 {
		return
	}
	m.mapCursor = (m.mapCursor + delta + len(m.maps)) % len(m.maps)
	m.loadRuns(m.maps[m.mapCursor].ID)
}

// View renders the run log.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "LONGEST WALKS"
	if len(m.maps) > 0 {
		title = fmt.Sprintf("LONGEST WALKS - %s", m.maps[m.mapCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.summary(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary renders the totals line for the selected map.
func (m RunsModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return menuDimStyle.Render(fmt.Sprintf("%d runs  |  %.0f walked  |  %d ticks  |  %d bumps",
		m.stats.Runs, m.stats.TotalDistance, m.stats.TotalTicks, m.stats.TotalBumps))
}

// renderWideLayout renders the run log with a sidebar for map selection.
func (m RunsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Maps\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, info := range m.maps {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.mapCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(info.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the run log with the map name above the table.
func (m RunsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.maps) > 0 {
		current := truncate(m.maps[m.mapCursor].Title, max(m.width-8, 1))
		b.WriteString(centerText(fmt.Sprintf("< %s >", current), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nWalk a map to start the log!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}

// RunRunsLog runs the run log screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRunsLog(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
