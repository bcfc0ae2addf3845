package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
)

// ItemKind tells what a lobby entry opens.
type ItemKind int

const (
	ItemGame ItemKind = iota
	ItemMeme
	ItemScores
)

// MenuItem represents a selectable entry of the lobby.
type MenuItem struct {
	Kind     ItemKind
	GameID   string
	Title    string
	Subtitle string
}

// LobbyItems returns the games in index order followed by the meme maker
// and the scoreboard.
func LobbyItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	for _, g := range games {
		items = append(items, MenuItem{Kind: ItemGame, GameID: g.ID, Title: g.Title, Subtitle: g.Subtitle})
	}
	items = append(items,
		MenuItem{Kind: ItemMeme, Title: "Anago Meme Maker", Subtitle: "Stack hats · eyes · glasses · mouth · neck · nose"},
		MenuItem{Kind: ItemScores, Title: "High Scores", Subtitle: "Best runs per game"},
	)
	return items
}

// MenuModel is the Bubble Tea model for the lobby.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	painter   *Painter
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new lobby model.
func NewMenuModel(cfg core.RuntimeConfig, painter *Painter) MenuModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	return MenuModel{
		items:     LobbyItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		painter:   painter,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if i, ok := shortcut(key); ok && i < len(m.items) {
		m.cursor = i
		m.choose(i)
		return m, nil
	}

	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(key) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		m.choose(m.cursor)
	case MenuActionScoreboard:
		m.chooseKind(ItemScores)
	case MenuActionMeme:
		m.chooseKind(ItemMeme)
	}
	return m, nil
}

// shortcut maps the digit keys 1-9 to lobby positions.
func shortcut(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

func (m *MenuModel) choose(i int) {
	if i >= 0 && i < len(m.items) {
		item := m.items[i]
		m.selected = &item
	}
}

func (m *MenuModel) chooseKind(kind ItemKind) {
	for i, item := range m.items {
		if item.Kind == kind {
			m.choose(i)
			return
		}
	}
}

// View renders the lobby.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	r := m.painter.Renderer()

	titleStyle := r.NewStyle().Bold(true).Foreground(Hex(core.ColorWhite))
	subStyle := r.NewStyle().Foreground(Hex(core.ColorSlate))
	cardStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Hex(core.ColorGrid)).
		Padding(0, 2).
		Width(48)
	activeStyle := cardStyle.BorderForeground(Hex(core.ColorPurple))
	itemTitle := r.NewStyle().Bold(true).Foreground(Hex(core.ColorLavender))
	activeTitle := itemTitle.Foreground(Hex(core.ColorPink))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("$ANAGO ARCADE"))
	b.WriteString("\n")
	b.WriteString(subStyle.Render("Pick a game. Farm clout. Touch grass later."))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(m.items))
	for i, item := range m.items {
		card, title := cardStyle, itemTitle
		if i == m.cursor {
			card, title = activeStyle, activeTitle
		}
		label := item.Title
		if i < 9 {
			label = fmt.Sprintf("%d  %s", i+1, item.Title)
		}
		cards = append(cards, card.Render(title.Render(label)+"\n"+subStyle.Render(item.Subtitle)))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Center, cards...))

	b.WriteString("\n\n")
	b.WriteString(subStyle.Render("↑/↓ move · 1-9 jump · enter play · m meme maker · tab scores · q quit"))

	return r.NewStyle().Width(m.width).Align(lipgloss.Center).Render(b.String())
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
