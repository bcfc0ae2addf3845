package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/meme"
)

// MemeKeyMap defines the key bindings for the meme maker.
type MemeKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevCat   key.Binding
	NextCat   key.Binding
	Toggle    key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Randomize key.Binding
	Reset     key.Binding
	Export    key.Binding
	Copy      key.Binding
	Save      key.Binding
	Load      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MemeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextCat, k.Top, k.Bottom, k.Randomize, k.Reset, k.Export, k.Copy, k.Save, k.Load, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k MemeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevCat, k.NextCat, k.Toggle},
		{k.Top, k.Bottom, k.Randomize, k.Reset},
		{k.Export, k.Copy, k.Save, k.Load, k.Back, k.Quit},
	}
}

// DefaultMemeKeyMap returns default key bindings.
func DefaultMemeKeyMap() MemeKeyMap {
	return MemeKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev trait")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next trait")),
		PrevCat:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev category")),
		NextCat:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("tab", "category")),
		Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "wear/remove")),
		Top:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "top text")),
		Bottom:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bottom text")),
		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		Reset:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save look")),
		Load:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "load look")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type memeFocus int

const (
	focusTraits memeFocus = iota
	focusTop
	focusBottom
	focusName
)

// MemeModel is the Bubble Tea model of the meme maker.
type MemeModel struct {
	catalog  *meme.Catalog
	look     *meme.Look
	composer *meme.Composer
	opts     Options
	rng      *rand.Rand

	tab    int
	cursor int
	focus  memeFocus
	top    textinput.Model
	bottom textinput.Model
	name   textinput.Model

	preview    string
	status     string
	loadNext   int
	keys       MemeKeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	goingBack  bool
	standalone bool // back quits the program
}

func newCaptionInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 64
	in.Width = 32
	return in
}

// NewMemeModel creates the meme maker. Config traits that fail to load
// are reported in the status line and the built-in catalog is used.
func NewMemeModel(cfg core.RuntimeConfig, opts Options) MemeModel {
	opts = opts.withDefaults()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := MemeModel{
		look:     meme.NewLook(),
		composer: meme.NewComposer(opts.Meme, opts.Assets),
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
		top:      newCaptionInput("Top text"),
		bottom:   newCaptionInput("Bottom text"),
		name:     newCaptionInput("Look name"),
		keys:     DefaultMemeKeyMap(),
		help:     help.New(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}

	catalog, err := meme.NewCatalog(opts.Meme.Traits)
	if err != nil {
		opts.Logger.Warn("bad meme traits in config", "error", err)
		m.status = "Config traits ignored: " + err.Error()
		catalog = meme.DefaultCatalog()
	}
	m.catalog = catalog

	if missing := m.composer.Missing(m.look); len(missing) > 0 {
		opts.Logger.Debug("meme base asset missing, drawing fallback", "path", missing[0])
	}
	m.refresh()
	return m
}

// Init initializes the meme maker.
func (m MemeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MemeModel) category() meme.Category {
	return meme.Categories[m.tab]
}

func (m MemeModel) traits() []meme.Trait {
	return m.catalog.InCategory(m.category())
}

// previewRows is the height of the preview in cells.
func (m MemeModel) previewRows() int {
	rows := m.height - 8
	if rows > 32 {
		rows = 32
	}
	if rows < 8 {
		rows = 8
	}
	return rows
}

// refresh recomposes the preview after any change to the look.
func (m *MemeModel) refresh() {
	m.look.Top, m.look.Bottom = m.top.Value(), m.bottom.Value()
	px := m.previewRows() * 2
	img := m.composer.ComposeAt(m.look, float64(px)/float64(m.composer.Size()))
	m.preview = m.opts.Painter.RenderHalfBlocks(img, core.ColorDeep)
}

// Update handles messages for the meme maker.
func (m MemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.focus != focusTraits {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *MemeModel) input() *textinput.Model {
	switch m.focus {
	case focusTop:
		return &m.top
	case focusBottom:
		return &m.bottom
	default:
		return &m.name
	}
}

// updateInput routes keys to the focused text field.
func (m MemeModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.input()
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter", "tab":
		if m.focus == focusName && msg.String() == "enter" {
			m.saveLook(strings.TrimSpace(in.Value()))
			in.SetValue("")
		}
		in.Blur()
		m.focus = focusTraits
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if m.focus != focusName {
		m.refresh()
	}
	return m, cmd
}

// handleKey processes keys while the trait list has focus.
func (m MemeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.goingBack = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.traits())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.NextCat):
		m.tab = (m.tab + 1) % len(meme.Categories)
		m.cursor = 0

	case key.Matches(msg, m.keys.PrevCat):
		m.tab = (m.tab + len(meme.Categories) - 1) % len(meme.Categories)
		m.cursor = 0

	case key.Matches(msg, m.keys.Toggle):
		if traits := m.traits(); len(traits) > 0 {
			m.look.Toggle(traits[m.cursor])
			m.status = ""
			m.refresh()
		}

	case key.Matches(msg, m.keys.Top):
		m.focus = focusTop
		return m, m.top.Focus()

	case key.Matches(msg, m.keys.Bottom):
		m.focus = focusBottom
		return m, m.bottom.Focus()

	case key.Matches(msg, m.keys.Randomize):
		m.look.Randomize(m.catalog, m.rng, m.opts.Meme.EquipChance)
		m.status = ""
		m.refresh()

	case key.Matches(msg, m.keys.Reset):
		m.top.SetValue("")
		m.bottom.SetValue("")
		m.look.Reset()
		m.status = ""
		m.refresh()

	case key.Matches(msg, m.keys.Export):
		m.export()

	case key.Matches(msg, m.keys.Copy):
		m.copyImage()

	case key.Matches(msg, m.keys.Save):
		m.focus = focusName
		return m, m.name.Focus()

	case key.Matches(msg, m.keys.Load):
		m.loadLook()
	}
	return m, nil
}

func (m *MemeModel) export() {
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}
	path, err := meme.ExportPNG(dir, m.opts.Meme.Export.Filename, m.composer.Compose(m.look))
	if err != nil {
		m.opts.Logger.Error("meme export failed", "error", err)
		m.status = meme.ExportFailedText
		return
	}
	m.opts.Logger.Info("meme exported", "path", path)
	m.status = "Saved " + path
}

func (m *MemeModel) copyImage() {
	if m.opts.Clipboard == nil || !m.opts.Clipboard.Supported() {
		m.status = meme.CopyUnsupportText
		return
	}
	data, err := meme.EncodePNG(m.composer.Compose(m.look))
	if err == nil {
		err = m.opts.Clipboard.CopyPNG(data)
	}
	switch {
	case errors.Is(err, meme.ErrClipboardUnsupported):
		m.status = meme.CopyUnsupportText
	case err != nil:
		m.opts.Logger.Error("meme copy failed", "error", err)
		m.status = meme.CopyFailedText
	default:
		m.status = meme.CopiedText
	}
}

func (m *MemeModel) saveLook(name string) {
	if name == "" {
		m.status = "Look not saved: empty name"
		return
	}
	if err := m.opts.Looks.Save(name, m.look.Save()); err != nil {
		m.opts.Logger.Warn("could not persist look", "name", name, "error", err)
		m.status = "Look kept for this session only"
		return
	}
	m.status = fmt.Sprintf("Saved look %q", name)
}

// loadLook cycles through saved looks.
func (m *MemeModel) loadLook() {
	names := m.opts.Looks.Names()
	if len(names) == 0 {
		m.status = "No saved looks yet"
		return
	}
	name := names[m.loadNext%len(names)]
	m.loadNext++

	saved, err := m.opts.Looks.Load(name)
	if err != nil {
		m.status = err.Error()
		return
	}
	missing := m.look.Restore(m.catalog, saved)
	m.top.SetValue(saved.Top)
	m.bottom.SetValue(saved.Bottom)
	m.refresh()

	m.status = fmt.Sprintf("Loaded look %q", name)
	if len(missing) > 0 {
		m.status += fmt.Sprintf(" (%d traits unavailable)", len(missing))
	}
}

// View renders the meme maker.
func (m MemeModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	r := m.opts.Painter.Renderer()

	title := r.NewStyle().Bold(true).Foreground(Hex(core.ColorWhite)).Render("ANAGO MEME MAKER")
	dim := r.NewStyle().Foreground(Hex(core.ColorSlate))
	tabOn := r.NewStyle().Bold(true).Foreground(Hex(core.ColorWhite)).Background(Hex(core.ColorPurple)).Padding(0, 1)
	tabOff := dim.Padding(0, 1)

	tabs := make([]string, len(meme.Categories))
	for i, c := range meme.Categories {
		label := c.Label()
		if _, ok := m.look.Equipped(c); ok {
			label += "*"
		}
		if i == m.tab {
			tabs[i] = tabOn.Render(label)
		} else {
			tabs[i] = tabOff.Render(label)
		}
	}

	var list strings.Builder
	traits := m.traits()
	rows := m.previewRows() - 6
	if rows < 4 {
		rows = 4
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	equipped, _ := m.look.Equipped(m.category())
	for i := start; i < len(traits) && i < start+rows; i++ {
		t := traits[i]
		mark := "  "
		if t.ID == equipped.ID {
			mark = "✓ "
		}
		line := mark + t.Label
		st := r.NewStyle().Foreground(Hex(core.ColorLavender))
		if i == m.cursor && m.focus == focusTraits {
			st = st.Bold(true).Foreground(Hex(core.ColorPink))
			line = "> " + line
		} else {
			line = "  " + line
		}
		list.WriteString(st.Render(line))
		list.WriteString("\n")
	}

	inputs := []string{
		dim.Render("Top    ") + m.top.View(),
		dim.Render("Bottom ") + m.bottom.View(),
	}
	if m.focus == focusName {
		inputs = append(inputs, dim.Render("Name   ")+m.name.View())
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		list.String(),
		strings.Join(inputs, "\n"),
	)

	frame := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Hex(core.ColorPurple))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		r.NewStyle().Width(44).Render(left),
		"  ",
		frame.Render(m.preview),
	)

	status := r.NewStyle().Foreground(Hex(core.ColorGold)).Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		status,
		dim.Render(m.help.View(m.keys)),
	)
}

// Look returns the look being edited.
func (m MemeModel) Look() *meme.Look {
	return m.look
}

// Status returns the last status message.
func (m MemeModel) Status() string {
	return m.status
}

// IsGoingBack returns true if user wants to go back to the lobby.
func (m MemeModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m MemeModel) IsQuitting() bool {
	return m.quitting
}

// RunMeme runs the meme maker on its own.
func RunMeme(cfg core.RuntimeConfig, opts Options) error {
	model := NewMemeModel(cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
