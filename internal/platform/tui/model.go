package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/raster"
	"github.com/anago-arcade/anago/internal/registry"
)

// maxFrameDelta keeps a stalled terminal from teleporting entities.
const maxFrameDelta = 100 * time.Millisecond

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game   registry.Game
	driver *core.FrameDriver
	screen *core.Screen
	view   core.Viewport
	opts   Options
	config core.RuntimeConfig
	keys   *KeyMapper
	hold   *HoldTracker
	gen    uint64

	pointerHeld bool
	gameState   core.GameState
	status      string
	quitting    bool
	backToMenu  bool
	standalone  bool // back quits the program
}

// NewGameModel creates a model for game. The game is reset by Init.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	driver := core.NewFrameDriver(game)
	driver.MaxDelta = maxFrameDelta

	m := GameModel{
		game:   game,
		driver: driver,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts.withDefaults(),
		config: cfg,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(),
		gen:    nextTickGen(),
	}
	m.fit()
	return m
}

// fit recomputes the viewport, keeping the last row for the status line.
func (m *GameModel) fit() {
	w, h := m.game.Size()
	m.view = core.NewViewport(float64(w), float64(h), m.screen.Width(), max(m.screen.Height()-1, 1))
}

// Init mounts the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.gen, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.fit()
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kind, intent := m.keys.MapKey(msg)
	switch kind {
	case GameKeyQuit:
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit

	case GameKeyBack:
		m.driver.Stop()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case GameKeyScreenshot:
		paths, err := m.saveScreenshot()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
			m.status = "Screenshot failed"
		} else {
			m.status = "Saved " + filepath.Base(paths[1])
		}
		return m, nil

	case GameKeyIntent:
		now := time.Now()
		for _, rel := range m.hold.Press(intent, now) {
			m.driver.Queue(core.InputEvent{Kind: core.KeyRelease, Intent: rel})
		}
		m.driver.Queue(core.InputEvent{Kind: core.KeyPress, Intent: intent})
	}

	return m, nil
}

// handleMouse converts cell coordinates to logical pointer events.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	x, y, inside := m.view.ToLogical(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		m.pointerHeld = true
		m.driver.Queue(core.InputEvent{Kind: core.PointerDown, X: x, Y: y})
	case tea.MouseActionMotion:
		m.driver.Queue(core.InputEvent{Kind: core.PointerMove, X: x, Y: y, Held: m.pointerHeld})
	case tea.MouseActionRelease:
		if !m.pointerHeld {
			return
		}
		m.pointerHeld = false
		m.driver.Queue(core.InputEvent{Kind: core.PointerUp, X: x, Y: y})
	}
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.driver.Stopped() {
		return m, nil
	}

	for _, rel := range m.hold.Expire(now) {
		m.driver.Queue(core.InputEvent{Kind: core.KeyRelease, Intent: rel})
	}

	result, _ := m.driver.Tick(now)
	m.gameState = result.State

	// Finished is set once per terminal state, so each run saves once.
	if result.Finished && result.State.Score > 0 && m.opts.Store != nil {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), result.State.Score); err != nil {
			m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
	}

	return m, tickCmd(m.gen, m.config.TickRate)
}

// saveScreenshot writes the current frame as text and as PNG.
func (m *GameModel) saveScreenshot() ([2]string, error) {
	var paths [2]string
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return paths, fmt.Errorf("tui: screenshot dir: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s", m.game.ID(), stamp))
	paths[0], paths[1] = base+".txt", base+".png"

	m.draw()
	if err := os.WriteFile(paths[0], []byte(m.screen.String()), 0o600); err != nil {
		return paths, fmt.Errorf("tui: screenshot: %w", err)
	}

	w, h := m.game.Size()
	cv := raster.New(w, h, 2)
	m.game.Draw(cv, m.driver.Elapsed())
	f, err := os.Create(paths[1])
	if err != nil {
		return paths, fmt.Errorf("tui: screenshot: %w", err)
	}
	defer f.Close()
	if err := cv.EncodePNG(f); err != nil {
		return paths, fmt.Errorf("tui: screenshot: %w", err)
	}
	return paths, nil
}

func (m *GameModel) draw() {
	m.screen.Clear()
	m.game.Draw(core.NewCellCanvas(m.screen, m.view), m.driver.Elapsed())

	line := fmt.Sprintf(" %s  ·  esc back  ·  ctrl+s screenshot", m.game.Title())
	if m.status != "" {
		line += "  ·  " + m.status
	}
	row := m.screen.Height() - 1
	for x, r := range []rune(line) {
		m.screen.SetCell(x, row, core.Cell{Rune: r, Fg: core.ColorLavender, Bg: core.ColorDeep})
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.draw()
	return m.opts.Painter.RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
