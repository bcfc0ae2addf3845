package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
	"github.com/anago-arcade/anago/internal/storage"
)

const (
	topScores   = 50
	overviewTab = 0 // tab 0 sums up every game; game i sits on tab i+1
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the score history kept in storage: an overview
// of every game, then one tab per game with its best runs.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	painter *Painter
	keys    ScoreboardKeyMap
	help    help.Model
	table   table.Model

	tab    int
	stats  map[string]*storage.GameStats
	width  int
	height int

	quitting   bool
	goingBack  bool
	standalone bool // back quits the program
}

// NewScoreboardModel opens the scoreboard on the overview tab. A nil
// store shows empty tables.
func NewScoreboardModel(store *storage.Store, painter *Painter, width, height int) ScoreboardModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	m := ScoreboardModel{
		store:   store,
		games:   registry.List(),
		painter: painter,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.reload()
	return m
}

// reload refreshes the stats and rebuilds the table for the current tab.
func (m *ScoreboardModel) reload() {
	m.stats = map[string]*storage.GameStats{}
	if m.store != nil {
		if all, err := m.store.AllStats(); err == nil {
			m.stats = all
		}
	}

	if m.tab == overviewTab {
		m.table = m.newTable([]table.Column{
			{Title: "Game", Width: 18},
			{Title: "Best", Width: 8},
			{Title: "Runs", Width: 6},
			{Title: "Last played", Width: 14},
		})
		rows := make([]table.Row, 0, len(m.games))
		for _, g := range m.games {
			row := table.Row{g.Title, "-", "0", "never"}
			if st := m.stats[g.ID]; st != nil && st.GamesCount > 0 {
				row = table.Row{g.Title, strconv.Itoa(st.HighScore), strconv.Itoa(st.GamesCount), st.LastPlayed.Format("Jan 02 15:04")}
			}
			rows = append(rows, row)
		}
		m.table.SetRows(rows)
		return
	}

	m.table = m.newTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "When", Width: 14},
	})
	var entries []storage.ScoreEntry
	if m.store != nil {
		entries, _ = m.store.TopScores(m.games[m.tab-1].ID, topScores)
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.CreatedAt.Format("Jan 02 15:04")}
	}
	m.table.SetRows(rows)
}

func (m ScoreboardModel) newTable(cols []table.Column) table.Model {
	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 4)),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Hex(core.ColorGrid)).
		BorderBottom(true).
		Foreground(Hex(core.ColorLavender)).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(Hex(core.ColorWhite)).
		Background(Hex(core.ColorPurple)).
		Bold(false)
	t.SetStyles(st)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % (len(m.games) + 1)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(m.games)) % (len(m.games) + 1)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Tab returns the selected tab: 0 for the overview, i+1 for game i.
func (m ScoreboardModel) Tab() int {
	return m.tab
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	r := m.painter.Renderer()

	title := r.NewStyle().Bold(true).Foreground(Hex(core.ColorGold)).
		Render("HIGH SCORES")

	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = r.NewStyle().Foreground(Hex(core.ColorSlate)).Italic(true).Padding(1, 2).
			Render("No runs yet. Finish a game to put a score on the board.")
	}
	card := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Hex(core.ColorPurple)).
		Padding(0, 1).
		Render(body)

	parts := []string{
		centerText(title, m.width),
		centerText(m.tabsLine(), m.width),
		centerText(m.summary(), m.width),
		"",
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card),
		"",
		r.NewStyle().Foreground(Hex(core.ColorSlate)).Render(m.help.View(m.keys)),
	}
	return strings.Join(parts, "\n")
}

func (m ScoreboardModel) tabsLine() string {
	r := m.painter.Renderer()
	idle := r.NewStyle().Foreground(Hex(core.ColorSlate)).Padding(0, 1)
	active := r.NewStyle().Bold(true).Foreground(Hex(core.ColorWhite)).Background(Hex(core.ColorPurple)).Padding(0, 1)

	names := []string{"All"}
	for _, g := range m.games {
		names = append(names, g.Title)
	}
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == m.tab {
			tabs[i] = active.Render(name)
		} else {
			tabs[i] = idle.Render(name)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width {
		return active.Render("‹ " + names[m.tab] + " ›")
	}
	return line
}

// summary is the one-line stats of the selected tab.
func (m ScoreboardModel) summary() string {
	style := m.painter.Renderer().NewStyle().Foreground(Hex(core.ColorLavender))
	if m.tab == overviewTab {
		runs := 0
		for _, st := range m.stats {
			runs += st.GamesCount
		}
		return style.Render(fmt.Sprintf("%d runs across %d games", runs, len(m.games)))
	}

	st := m.stats[m.games[m.tab-1].ID]
	if st == nil || st.GamesCount == 0 {
		return style.Render(m.games[m.tab-1].Subtitle)
	}
	return style.Render(fmt.Sprintf("%d runs · best %d · avg %.1f", st.GamesCount, st.HighScore, st.AvgScore))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard on its own. It returns true when the
// user went back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(store, nil, width, height)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
