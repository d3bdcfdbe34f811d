package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/circuit-arcade/internal/core"
	"github.com/vovakirdan/circuit-arcade/internal/registry"
	"github.com/vovakirdan/circuit-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one arcade game.
//
// Ticks are scheduled only while the game is running, one per interval, and
// carry the game generation they were armed for. Any lifecycle change bumps
// the generation, which strands ticks already in flight.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	best       int // persisted high score for this game
	standalone bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // whether the current game over has been recorded
}

// NewModel creates a model for game. Scores are stored under player when a
// store is given.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := log.Default().With("game", game.ID())
	if player != "" {
		logger = logger.With("player", player)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		player: player,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}

	game.OnTransition(func(from, to core.Phase) {
		logger.Debug("phase", "from", from, "to", to, "score", game.State().Score)
	})
	return m
}

// Init puts the game in the idle phase. No tick is scheduled until the
// player starts.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// A pausable game must be paused before leaving. A game that cannot
		// pause may be abandoned mid-run; the run is not recorded.
		if m.game.Running() && m.game.Pausable() {
			return m, nil
		}
		if m.game.Running() {
			m.logger.Debug("run abandoned", "score", m.game.State().Score)
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	default:
		gen := m.game.Generation()
		m.game.Dispatch(action)
		m.settle()
		return m, m.rearm(gen)
	}
}

// handleTick advances the game by one step if the tick is current.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.game.Generation() || !m.game.Running() {
		return m, nil
	}
	m.game.Tick()
	m.settle()
	if !m.game.Running() {
		return m, nil
	}
	return m, tickCmd(m.game.Interval(), m.game.Generation())
}

// rearm schedules a tick when the generation moved on and the clock runs.
func (m *Model) rearm(before uint64) tea.Cmd {
	if m.game.Generation() == before || !m.game.Running() {
		return nil
	}
	return tickCmd(m.game.Interval(), m.game.Generation())
}

// settle records a finished run once.
func (m *Model) settle() {
	st := m.game.State()
	if !st.GameOver() {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if st.Score > m.best {
		m.best = st.Score
	}
	if m.store == nil || st.Score <= 0 {
		return
	}
	run, err := m.store.SaveRun(storage.Run{GameID: m.game.ID(), Player: m.player, Score: st.Score})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("run recorded", "score", run.Score, "run", run.RunID)
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.best > 0 {
		footer = fmt.Sprintf("%s  best %d", footer, m.best)
	}
	// the game gets whatever rows the help bar leaves
	if h := max(m.config.ScreenH-lipgloss.Height(footer), 1); h != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, h)
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
