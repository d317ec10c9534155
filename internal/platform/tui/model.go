package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/registry"
	"github.com/vovakirdan/tui-kong/internal/storage"
)

// logger receives persistence problems. Discards by default.
var logger = log.New(io.Discard)

// SetLogger routes the package's log output to l. A nil logger discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	latch      *InputLatch
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// holdTicks scales the movement latch to the tick rate.
func holdTicks(tickRate int) int {
	if tickRate <= 0 {
		return DefaultHoldTicks
	}
	return max(1, DefaultHoldTicks*tickRate/60)
}

// NewModel creates a new Bubble Tea model for the given game.
// Games that keep a high score get one backed by store.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if user, ok := game.(registry.HighScoreUser); ok && store != nil {
		user.UseHighScores(storage.NewHighScoreBook(store, game.ID()))
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		latch:  NewInputLatch(holdTicks(cfg.TickRate)),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
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

	action, isQuit := m.keys.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.quitting = true
		return m, tea.Quit
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events.
// The field scales to the screen, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	// Record the run once per game over
	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveRun()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores a finished run in the score table.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	level := 0
	if lr, ok := m.game.(registry.LevelReporter); ok {
		level = lr.Level()
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, level); err != nil {
		logger.Warn("run not saved", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot not saved", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
