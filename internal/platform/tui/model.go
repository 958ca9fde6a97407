package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordflap/internal/core"
	"github.com/vovakirdan/wordflap/internal/leaderboard"
	"github.com/vovakirdan/wordflap/internal/loop"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Game is what the model drives. The game holds no Bubble Tea state; the
// model owns input mapping, timing and rendering.
type Game interface {
	// Reset sizes the playfield and returns to the title card.
	Reset(cfg core.RuntimeConfig)

	// Dispatch interprets the input events queued since the last frame.
	Dispatch(in core.InputFrame)

	// Step advances the simulation by one fixed step.
	Step(dt time.Duration)

	// Render draws the latest whole step into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Options tunes the model. Zero values pick defaults.
type Options struct {
	FPS           int        // Render rate; the simulation rate comes from RuntimeConfig.TickRate
	Clock         loop.Clock // Wall clock feeding the accumulator
	Logger        *log.Logger
	ScreenshotDir string
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	fps        int
	acc        *loop.Accumulator
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	shotDir    string
	quitting   bool
}

// NewModel creates a model and resets the game to the terminal size.
// The playfield keeps that size for the whole session; later resizes only
// change the screen buffer.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "~/.wordflap/screenshots"
	}

	playH := core.Max(1, cfg.ScreenH-helpHeight)
	gameCfg := cfg
	gameCfg.ScreenH = playH
	game.Reset(gameCfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playH),
		config:     cfg,
		fps:        opts.FPS,
		acc:        loop.NewAccumulator(opts.Clock, loop.StepForRate(cfg.TickRate)),
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     opts.Logger,
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.acc.Reset()
	return tickCmd(m.fps)
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

// handleKey queues the key's event for the next frame. The game interprets
// it at dispatch, against the screen it is on by then.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick dispatches queued input, then runs as many whole simulation
// steps as the elapsed wall time pays for.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		m.game.Dispatch(m.inputFrame)
		m.inputFrame.Clear()
		if m.game.State().Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	steps := m.acc.Poll()
	for i := 0; i < steps; i++ {
		m.game.Step(m.acc.Step())
	}

	prev := m.gameState
	m.gameState = m.game.State()
	if m.gameState.Screen != prev.Screen {
		m.logger.Debug("screen changed", "from", prev.Screen, "to", m.gameState.Screen)
	}

	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current frame to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := leaderboard.ExpandPath(m.shotDir)
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("wordflap_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
