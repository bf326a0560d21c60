package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/stroids/internal/core"
	"github.com/vovakirdan/stroids/internal/games/stroids"
	"github.com/vovakirdan/stroids/internal/games/stroids/engine"
	"github.com/vovakirdan/stroids/internal/registry"
	"github.com/vovakirdan/stroids/internal/storage"
)

// recordable is implemented by games that report engine events and can be
// saved for replay.
type recordable interface {
	Recording() stroids.Recording
	LastStep() engine.StepResult
}

// Options configures a GameModel.
type Options struct {
	Store         *storage.Store // Optional; runs are not saved when nil
	Logger        *log.Logger    // Optional; defaults to a discarding logger
	HoldTicks     int            // Ticks a key press stays held
	ScreenshotDir string         // Defaults to ~/.stroids/screenshots
	InMenu        bool           // Esc returns to a menu instead of quitting
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	help      help.Model
	hold      *HoldTracker
	gameState core.GameState

	lastTick   uint64 // Last engine tick whose events were logged
	quitting   bool
	backToMenu bool
	saved      bool
	savedRun   uuid.UUID
}

// NewGameModel creates a model for the given game. The bottom row of the
// terminal is reserved for key help.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		help:      h,
		hold:      NewHoldTracker(opts.HoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Back):
		m.saveRun()
		m.hold.Release()
		if m.opts.InMenu {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	action, quit := m.keyMapper.MapKey(msg)
	if quit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	m.hold.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.hold.Frame())
	m.gameState = result.State
	m.logStep()

	return m, tickCmd(m.config.TickRate)
}

// logStep logs engine transitions once per simulated tick.
func (m *GameModel) logStep() {
	r, ok := m.game.(recordable)
	if !ok {
		return
	}
	step := r.LastStep()
	if step.Tick == 0 || step.Tick == m.lastTick {
		return
	}
	m.lastTick = step.Tick

	if len(step.Destroyed) > 0 {
		m.opts.Logger.Debug("asteroids destroyed", "tick", step.Tick, "count", len(step.Destroyed), "score", step.Score)
	}
	if step.Killed {
		m.opts.Logger.Info("ship destroyed", "tick", step.Tick, "score", step.Score, "level", step.Level)
	}
	if step.Transition == engine.TransitionFieldCleared {
		m.opts.Logger.Info("field cleared", "tick", step.Tick, "level", step.Level, "score", step.Score)
	}
}

// saveRun stores the session for replay. It runs at most once per model.
func (m *GameModel) saveRun() {
	if m.saved || m.opts.Store == nil {
		return
	}
	r, ok := m.game.(recordable)
	if !ok {
		return
	}
	m.saved = true

	rec := r.Recording()
	if len(rec.Frames) == 0 {
		return
	}
	run, err := rec.ToRun(int64(m.gameState.Score), m.gameState.Level)
	if err != nil {
		m.opts.Logger.Error("cannot encode run", "error", err)
		return
	}
	id, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.opts.Logger.Error("cannot save run", "error", err)
		return
	}
	m.savedRun = id
	m.opts.Logger.Info("run saved", "id", id, "ticks", run.Ticks, "score", run.FinalScore)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("cannot resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".stroids", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot write screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SavedRun returns the ID of the run stored on exit, or uuid.Nil.
func (m GameModel) SavedRun() uuid.UUID {
	return m.savedRun
}

// Result reports how a game session ended.
type Result struct {
	RunID      uuid.UUID // uuid.Nil when nothing was saved
	BackToMenu bool
}

// gameRunner ends the program when a menu-mode game asks to go back, since
// no session model is around to take over.
type gameRunner struct {
	GameModel
}

func (r gameRunner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.GameModel.Update(msg)
	r.GameModel = next.(GameModel)
	if r.BackToMenu() {
		return r, tea.Quit
	}
	return r, cmd
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	p := tea.NewProgram(
		gameRunner{NewGameModel(game, cfg, opts)},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	if r, ok := final.(gameRunner); ok {
		return Result{RunID: r.SavedRun(), BackToMenu: r.BackToMenu()}, nil
	}
	return Result{}, nil
}
