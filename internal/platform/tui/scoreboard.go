package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/obhlivoj/parking-panic/internal/records"
	"github.com/obhlivoj/parking-panic/internal/storage"
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the records screen. It joins the
// best-moves table with the aggregated play history from the database.
type RecordsModel struct {
	table     table.Model
	help      help.Model
	keys      RecordsKeyMap
	width     int
	height    int
	rows      int
	quitting  bool
	goingBack bool

	exitOnBack bool // standalone records screen treats back as quit
}

// NewRecordsModel creates a records model from the best-moves table and the
// play history store. Either may be nil.
func NewRecordsModel(best *records.Table, store *storage.Store, width, height int) RecordsModel {
	var stats []storage.LevelStats
	if store != nil {
		// Best-effort; the records column still shows without history.
		stats, _ = store.Stats()
	}
	statsByLevel := make(map[int]storage.LevelStats, len(stats))
	for _, st := range stats {
		statsByLevel[st.Level] = st
	}

	var rows []table.Row
	if best != nil {
		for _, level := range best.Levels() {
			record := records.NotSet
			if moves, ok := best.Best(level); ok {
				record = fmt.Sprintf("%d", moves)
			}

			plays, wins := "-", "-"
			if st, ok := statsByLevel[level]; ok {
				plays = fmt.Sprintf("%d", st.Plays)
				wins = fmt.Sprintf("%d", st.Wins)
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", level),
				record,
				plays,
				wins,
			})
		}
	}

	columns := []table.Column{
		{Title: "Level", Width: 8},
		{Title: "Best", Width: 10},
		{Title: "Plays", Width: 8},
		{Title: "Wins", Width: 8},
	}

	tableHeight := len(rows)
	if tableHeight > 12 {
		tableHeight = 12
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = false

	return RecordsModel{
		table:  t,
		help:   h,
		keys:   DefaultRecordsKeyMap(),
		width:  width,
		height: height,
		rows:   len(rows),
	}
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.exitOnBack {
				m.quitting = true
				return m, tea.Quit
			}
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDS", m.width)))
	b.WriteString("\n\n")

	if m.rows == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No levels played yet.\nPark a car to set a record!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m RecordsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RecordsModel) IsQuitting() bool {
	return m.quitting
}

// RunRecords runs the records screen standalone.
func RunRecords(best *records.Table, store *storage.Store) error {
	width, height := terminalSize()
	model := NewRecordsModel(best, store, width, height)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
