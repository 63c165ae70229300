package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/game"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// Model is the Bubble Tea model for walking through one map.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	player     string
	run        uint64
	embedded   bool // running inside a SessionModel
	quitting   bool
	backToMenu bool
	err        error
}

// startErrMsg carries a failed reset out of Init.
type startErrMsg struct{ err error }

// NewModel creates a new Bubble Tea model for the given game. player is
// recorded with every saved run and may be empty for local play.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		player:     player,
		run:        nextRun(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("cannot start map", "map", m.game.ID(), "error", err)
		return func() tea.Msg { return startErrMsg{err: err} }
	}
	return tickCmd(m.config.TickRate, m.run)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startErrMsg:
		m.err = msg.err
		m.quitting = true
		return m, m.exit()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Run != m.run || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, m.exit()
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.saveRun()
		m.backToMenu = true
		return m, m.exit()
	}

	return m, nil
}

// exit ends the local program; inside a session the parent takes over.
func (m Model) exit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// handleResize processes window resize events. The run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if err := m.game.Resize(m.config); err != nil {
		m.logger.Warn("resize failed", "width", msg.Width, "height", msg.Height, "error", err)
	}
	return m, nil
}

// handleTick steps the engine by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart wipes the run's stats, so keep the finished run first.
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.run)
}

// saveRun records the current run if it went anywhere.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	stats := m.game.Stats()
	if stats.Ticks == 0 {
		return
	}
	id, err := m.store.SaveRun(storage.RunRecord{
		MapID:    m.game.ID(),
		Ticks:    stats.Ticks,
		Distance: stats.Distance,
		Bumps:    stats.Bumps,
		Player:   m.player,
	})
	if err != nil {
		m.logger.Warn("could not save run", "map", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "map", m.game.ID(), "ticks", stats.Ticks, "distance", stats.Distance)
}

// saveScreenshot saves the current screen to ~/.raycaster/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".raycaster", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the error that stopped the map from starting, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for g and blocks until the player
// leaves the map.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, store, cfg, logger, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fmt.Errorf("tui: starting %s: %w", g.ID(), fm.Err())
	}
	return nil
}
