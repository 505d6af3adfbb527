package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapfish/internal/config"
	"github.com/vovakirdan/flapfish/internal/core"
	"github.com/vovakirdan/flapfish/internal/game"
	"github.com/vovakirdan/flapfish/internal/platform"
	"github.com/vovakirdan/flapfish/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Config  config.FlapfishConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
	Host    string // recorded with scores, platform.HostTUI when empty

	// ScreenshotDir overrides ~/.flapfish/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one flapfish App.
type Model struct {
	app        *game.App
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	lastTick   time.Time
	board      *ScoreboardModel
	shotDir    string
	status     string
	quitting   bool
}

// NewModel creates a new Bubble Tea model with a fresh App in MainMenu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Player == "" {
		cfg.Player = platform.PlayerName()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	host := opts.Host
	if host == "" {
		host = platform.HostTUI
	}

	app := game.New(opts.Config,
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
		game.WithTransitionHook(platform.RecordScores(platform.Saver(opts.Store), cfg.Player, host, logger)),
	)

	return Model{
		app:        app,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// App returns the hosted game.
func (m Model) App() *game.App {
	return m.app
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keyMapper.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.app.State() == game.MainMenu {
			m.openBoard()
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back abandons a run in progress.
	if m.inputFrame.JustPressed(core.ActionBack) {
		switch m.app.State() {
		case game.CountDown, game.Game:
			m.app.Set(game.MainMenu)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The play field is fixed, so
// only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.app.Frame(game.Frame{Delta: delta, Input: m.inputFrame.Clone()})
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) openBoard() {
	var src ScoreSource
	if m.store != nil {
		src = m.store
	}
	board := NewScoreboardModel(src, m.config.ScreenW, m.config.ScreenH)
	m.board = &board
}

// updateBoard routes messages to the scoreboard. Ticks keep arriving but the
// game is paused on the main menu, so they only keep the loop alive.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.lastTick = time.Time(t)
		return m, tickCmd(m.config.TickRate)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	next, cmd := m.board.Update(msg)
	board, _ := next.(ScoreboardModel)
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot(time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

func (m *Model) writeScreenshot(now time.Time) (string, error) {
	m.render()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".flapfish", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("flapfish_%s.txt", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render projects the world into the screen buffer.
func (m *Model) render() {
	win := m.app.Config().Window
	DrawWorld(m.screen, m.app.World(), win.Width, win.Height)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawText(m.screen.Width()-len(m.status)-2, 0, m.status, core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
