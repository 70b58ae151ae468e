package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/obhlivoj/parking-panic/internal/config"
	"github.com/obhlivoj/parking-panic/internal/game"
	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/records"
	"github.com/obhlivoj/parking-panic/internal/storage"
)

var (
	playTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	playDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	playWinStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	playWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// PlayModel is the Bubble Tea model for one level attempt. A letter key picks
// a car, arrow keys slide it, u undoes and r restarts. The win is written to
// the records table and the play history when it happens.
type PlayModel struct {
	level       levels.Level
	eng         *game.Engine
	table       *records.Table
	recordsPath string
	store       *storage.Store
	ui          config.UIConfig

	width    int
	height   int
	selected byte // car picked for arrow moves, 0 when none
	status   string
	saved    bool // result persisted for the current attempt

	exitOnBack bool // standalone play treats esc as quit
	backToMenu bool
	quitting   bool
}

// NewPlayModel creates a play model for the given level. table and store may
// be nil; persistence is then skipped.
func NewPlayModel(level levels.Level, table *records.Table, recordsPath string, store *storage.Store, ui config.UIConfig) PlayModel {
	return PlayModel{
		level:       level,
		eng:         level.NewEngine(),
		table:       table,
		recordsPath: recordsPath,
		store:       store,
		ui:          ui,
	}
}

// Init initializes the play model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the play screen.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input for the play screen.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.persistAbandoned()
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.persistAbandoned()
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case "r":
		m.eng.Reset()
		m.selected = 0
		m.saved = false
		m.status = ""
		return m, nil

	case "u", "*":
		if m.eng.Victory() {
			return m, nil
		}
		if res := m.eng.Undo(); res.Err != nil {
			m.status = "nothing to undo"
		} else {
			m.status = ""
		}
		return m, nil

	case "enter":
		if m.eng.Victory() {
			if m.exitOnBack {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
		}
		return m, nil
	}

	if m.eng.Victory() {
		return m, nil
	}

	// A single lowercase letter picks the car to slide.
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		name := key[0] - 'a' + 'A'
		if state, ok := m.eng.CarState(name); ok && !state.Exited {
			m.selected = name
			m.status = ""
		} else {
			m.status = fmt.Sprintf("no car %c on the lot", name)
		}
		return m, nil
	}

	if dir, ok := m.mapArrow(key); ok {
		m.applyMove(dir)
	}
	return m, nil
}

// mapArrow translates an arrow key to a move direction for the selected car.
// Horizontal cars slide right (forward) and left; vertical cars slide down
// (forward) and up.
func (m *PlayModel) mapArrow(key string) (game.Direction, bool) {
	if m.selected == 0 {
		return 0, false
	}
	state, ok := m.eng.CarState(m.selected)
	if !ok {
		return 0, false
	}

	if state.Orientation == game.Horizontal {
		switch key {
		case "right":
			return game.Forward, true
		case "left":
			return game.Backward, true
		}
		return 0, false
	}

	switch key {
	case "down":
		return game.Forward, true
	case "up":
		return game.Backward, true
	}
	return 0, false
}

// applyMove slides the selected car and reacts to the result.
func (m *PlayModel) applyMove(dir game.Direction) {
	res := m.eng.Apply(m.selected, dir)

	switch {
	case res.Victory:
		m.status = ""
		m.persistWin()
	case errors.Is(res.Err, game.ErrBlocked):
		m.status = "blocked by another car"
	case errors.Is(res.Err, game.ErrIllegalMove):
		m.status = "the wall is in the way"
	case res.Err != nil:
		m.status = res.Err.Error()
	default:
		m.status = ""
	}
}

// persistWin records the finished attempt, once.
func (m *PlayModel) persistWin() {
	if m.saved {
		return
	}
	m.saved = true

	if m.table != nil {
		m.table.Update(m.level.Number, m.eng.Moves())
		if m.recordsPath != "" {
			//nolint:errcheck // Best-effort save, the win screen shows regardless
			m.table.Save(m.recordsPath)
		}
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SavePlay(m.level.Number, m.eng.Moves(), true)
	}
}

// persistAbandoned records a walked-away attempt in the play history.
func (m *PlayModel) persistAbandoned() {
	if m.saved || m.eng.Moves() == 0 {
		return
	}
	m.saved = true

	if m.store != nil {
		//nolint:errcheck // Best-effort save
		m.store.SavePlay(m.level.Number, m.eng.Moves(), false)
	}
}

// View renders the play screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("Level %d", m.level.Number)
	if m.level.Name != "" {
		title += " - " + m.level.Name
	}
	b.WriteString(playTitleStyle.Render(title))

	if m.ui.ShowMoves {
		b.WriteString(playDimStyle.Render(fmt.Sprintf("   moves: %d", m.eng.Moves())))
	}
	if m.ui.ShowRecord && m.table != nil {
		record := records.NotSet
		if best, ok := m.table.Best(m.level.Number); ok {
			record = fmt.Sprintf("%d", best)
		}
		b.WriteString(playDimStyle.Render("   best: " + record))
	}
	b.WriteString("\n\n")

	screen := game.RenderLot(m.eng.Board())
	if m.ui.Color {
		b.WriteString(RenderScreen(screen))
	} else {
		b.WriteString(screen.String())
	}
	b.WriteString("\n")

	switch {
	case m.eng.Victory():
		b.WriteString(playWinStyle.Render(fmt.Sprintf("Parked! %d moves.", m.eng.Moves())))
		b.WriteString(playDimStyle.Render("  Enter: back  |  r: play again  |  q: quit"))
	case m.status != "":
		b.WriteString(playWarnStyle.Render(m.status))
	case m.selected != 0:
		b.WriteString(playDimStyle.Render(fmt.Sprintf("car %c selected - arrows to slide", m.selected)))
	default:
		b.WriteString(playDimStyle.Render("press a car's letter, then use the arrows"))
	}
	b.WriteString("\n")
	b.WriteString(playDimStyle.Render("a-z: pick car  |  arrows: slide  |  u: undo  |  r: restart  |  esc: back  |  q: quit"))

	return b.String()
}

// Selected returns the car currently picked for arrow moves, 0 when none.
func (m PlayModel) Selected() byte {
	return m.selected
}

// Won reports whether the attempt reached the exit.
func (m PlayModel) Won() bool {
	return m.eng.Victory()
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// RunPlay runs a single level attempt standalone (no surrounding menu).
func RunPlay(level levels.Level, table *records.Table, recordsPath string, store *storage.Store, ui config.UIConfig) error {
	model := NewPlayModel(level, table, recordsPath, store, ui)
	model.exitOnBack = true
	model.width, model.height = terminalSize()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
