// Package tui provides the Bubble Tea integration for the parking puzzle:
// the level menu, the play screen, the records screen and SSH serving.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/obhlivoj/parking-panic/internal/config"
	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/records"
	"github.com/obhlivoj/parking-panic/internal/storage"
)

// AppDeps bundles everything the full application flow needs. Store may be
// nil (no play history); Records may be nil (no persistence).
type AppDeps struct {
	Catalog     []levels.Level
	Records     *records.Table
	RecordsPath string
	Store       *storage.Store
	UI          config.UIConfig
}

// appScreen is the active screen of the application flow.
type appScreen int

const (
	screenMenu appScreen = iota
	screenPlay
	screenRecords
)

// AppModel manages the full session flow: menu -> play -> menu, with the
// records screen reachable from the menu. This is the top-level model used
// both locally and for SSH sessions.
type AppModel struct {
	deps   AppDeps
	screen appScreen

	menu     MenuModel
	play     *PlayModel
	recModel *RecordsModel

	width    int
	height   int
	quitting bool
}

// NewAppModel creates the top-level model starting at the level menu.
func NewAppModel(deps AppDeps) AppModel {
	return AppModel{
		deps: deps,
		menu: NewMenuModel(deps.Catalog, deps.Records),
	}
}

// terminalSize returns the local terminal dimensions, with defaults when
// stdout is not a terminal. Resizes still arrive as WindowSizeMsg.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// Init initializes the application flow.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so freshly opened screens get it.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is active.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRecords() {
		rec := NewRecordsModel(m.deps.Records, m.deps.Store, m.width, m.height)
		m.recModel = &rec
		m.screen = screenRecords
		return m, m.recModel.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		play := NewPlayModel(selected.Level, m.deps.Records, m.deps.RecordsPath, m.deps.Store, m.deps.UI)
		play.width = m.width
		play.height = m.height
		m.play = &play
		m.screen = screenPlay
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while a level attempt is active.
func (m AppModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.BackToMenu() {
		m.play = nil
		m.screen = screenMenu
		// Rebuild so best results and newly unlocked levels show up.
		m.menu = NewMenuModel(m.deps.Catalog, m.deps.Records)
		return m, m.menu.Init()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRecords handles updates while the records screen is active.
func (m AppModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.recModel.Update(msg)
	if recModel, ok := newModel.(RecordsModel); ok {
		m.recModel = &recModel
	}

	if m.recModel.IsGoingBack() {
		m.recModel = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.deps.Catalog, m.deps.Records)
		return m, m.menu.Init()
	}

	if m.recModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenRecords:
		return m.recModel.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the full menu-driven flow in the local terminal.
func RunApp(deps AppDeps) error {
	model := NewAppModel(deps)
	model.width, model.height = terminalSize()
	model.menu.width, model.menu.height = model.width, model.height

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
