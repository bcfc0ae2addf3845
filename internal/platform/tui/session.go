package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

type screenKind int

const (
	screenLobby screenKind = iota
	screenGame
	screenMeme
	screenScores
)

// SessionModel manages the full arcade flow: lobby -> game, meme maker or
// scores -> lobby. Local runs and SSH sessions both use it.
type SessionModel struct {
	opts     Options
	config   core.RuntimeConfig
	username string

	screen   screenKind
	menu     MenuModel
	game     *GameModel
	meme     *MemeModel
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, username string) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		opts:     opts,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(cfg, opts.Painter),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenMeme:
		return m.updateMeme(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) toLobby() (tea.Model, tea.Cmd) {
	m.screen = screenLobby
	m.game, m.meme, m.scores = nil, nil, nil
	m.menu = NewMenuModel(m.config, m.opts.Painter)
	return m, m.menu.Init()
}

// updateMenu handles updates when in the lobby.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case ItemGame:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "game", selected.GameID, "error", err)
			return m.toLobby()
		}
		cfg := m.config
		cfg.Seed = 0
		gm := NewGameModel(game, cfg, m.opts)
		m.game = &gm
		m.screen = screenGame
		m.opts.Logger.Debug("game started", "user", m.username, "game", selected.GameID)
		return m, m.game.Init()

	case ItemMeme:
		mm := NewMemeModel(m.config, m.opts)
		m.meme = &mm
		m.screen = screenMeme
		return m, m.meme.Init()

	case ItemScores:
		sb := NewScoreboardModel(m.opts.Store, m.opts.Painter, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.screen = screenScores
		return m, m.scores.Init()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toLobby()
	}
	return m, cmd
}

// updateMeme handles updates when in the meme maker.
func (m SessionModel) updateMeme(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.meme.Update(msg)
	if mm, ok := newModel.(MemeModel); ok {
		m.meme = &mm
	}

	if m.meme.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.meme.IsGoingBack() {
		return m.toLobby()
	}
	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toLobby()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenMeme:
		return m.meme.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunArcade runs the lobby and everything reachable from it.
func RunArcade(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, ""),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
