package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/records"
)

var (
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuLockedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Level  levels.Level
	Best   string // formatted best result for display
	Locked bool   // previous level not completed yet
}

// MenuModel is the Bubble Tea model for the level picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a level
	openRecords bool      // True if user pressed Tab for the records screen
}

// NewMenuModel creates a new menu model. Levels beyond the furthest completed
// one are listed but locked.
func NewMenuModel(catalog []levels.Level, table *records.Table) MenuModel {
	items := make([]MenuItem, 0, len(catalog))
	for _, lvl := range catalog {
		best := records.NotSet
		locked := true
		if table != nil {
			if b, ok := table.Best(lvl.Number); ok {
				best = fmt.Sprintf("%d", b)
			}
			locked = !table.Known(lvl.Number)
		}
		items = append(items, MenuItem{Level: lvl, Best: best, Locked: locked})
	}

	return MenuModel{
		items:     items,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 && !m.items[m.cursor].Locked {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionRecords:
		m.openRecords = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P A R K I N G   P A N I C", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		label := fmt.Sprintf("Level %d", item.Level.Number)
		if item.Level.Name != "" {
			label += " - " + item.Level.Name
		}

		// Center before styling so escape codes don't skew the padding.
		if item.Locked {
			line := centerText(fmt.Sprintf("%s%s  (locked)", cursor, label), m.width)
			b.WriteString(menuLockedStyle.Render(line))
		} else {
			line := centerText(fmt.Sprintf("%s%s  best: %s", cursor, label, item.Best), m.width)
			if i == m.cursor {
				line = menuSelectedStyle.Render(line)
			}
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records screen.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
