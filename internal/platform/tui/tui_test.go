package tui

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
	"github.com/anago-arcade/anago/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

// fakeGame starts on Primary and ends with 5 points on Down.
type fakeGame struct {
	session core.Session
	events  []core.InputEvent
	resets  int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Subtitle() string { return "test double" }
func (g *fakeGame) Size() (int, int) { return 100, 50 }
func (g *fakeGame) State() core.GameState { return g.session.Snapshot() }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.session = core.Session{}
}

func (g *fakeGame) Update(_ time.Duration, in core.InputFrame) core.StepResult {
	before := g.session.State
	for _, ev := range in.Events {
		g.events = append(g.events, ev)
		if ev.Kind != core.KeyPress {
			continue
		}
		switch ev.Intent {
		case core.IntentPrimary:
			g.session.Start()
		case core.IntentDown:
			g.session.AddScore(5)
			g.session.Finish(false)
		}
	}
	return core.StepResult{
		State:    g.session.Snapshot(),
		Finished: !before.Terminal() && g.session.State.Terminal(),
	}
}

func (g *fakeGame) Draw(dst core.Canvas, _ time.Duration) {
	dst.Clear(core.ColorNight)
	dst.FillRect(core.Box{W: 10, H: 10}, core.Solid(core.ColorPurple))
}

func plainPainter() *Painter {
	return NewPainter(lipgloss.NewRenderer(io.Discard))
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		kind   GameKey
		intent core.Intent
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, GameKeyIntent, core.IntentPrimary},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, GameKeyIntent, core.IntentPrimary},
		{"w", keyRunes("w"), GameKeyIntent, core.IntentUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, GameKeyIntent, core.IntentDown},
		{"a", keyRunes("a"), GameKeyIntent, core.IntentLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, GameKeyIntent, core.IntentRight},
		{"r", keyRunes("r"), GameKeyIntent, core.IntentRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, GameKeyBack, core.IntentNone},
		{"q", keyRunes("q"), GameKeyBack, core.IntentNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, GameKeyQuit, core.IntentNone},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, GameKeyScreenshot, core.IntentNone},
		{"unbound", keyRunes("z"), GameKeyNone, core.IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, intent := km.MapKey(tt.msg)
			if kind != tt.kind || intent != tt.intent {
				t.Errorf("MapKey() = %v, %v, expected %v, %v", kind, intent, tt.kind, tt.intent)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	t0 := time.Unix(0, 0)

	t.Run("first repeat window", func(t *testing.T) {
		h := NewHoldTracker()
		h.Press(core.IntentLeft, t0)
		if got := h.Expire(t0.Add(500 * time.Millisecond)); len(got) != 0 {
			t.Errorf("Expire() = %v before the repeat delay, expected none", got)
		}
		got := h.Expire(t0.Add(600 * time.Millisecond))
		if len(got) != 1 || got[0] != core.IntentLeft {
			t.Errorf("Expire() = %v, expected [Left]", got)
		}
		if h.Held(core.IntentLeft) {
			t.Error("Left should no longer be held")
		}
	})

	t.Run("repeats shorten the window", func(t *testing.T) {
		h := NewHoldTracker()
		h.Press(core.IntentRight, t0)
		h.Press(core.IntentRight, t0.Add(30*time.Millisecond))
		if got := h.Expire(t0.Add(100 * time.Millisecond)); len(got) != 0 {
			t.Errorf("Expire() = %v while repeating, expected none", got)
		}
		if got := h.Expire(t0.Add(200 * time.Millisecond)); len(got) != 1 {
			t.Errorf("Expire() = %v after repeats stop, expected [Right]", got)
		}
	})

	t.Run("opposite releases", func(t *testing.T) {
		h := NewHoldTracker()
		h.Press(core.IntentLeft, t0)
		got := h.Press(core.IntentRight, t0.Add(10*time.Millisecond))
		if len(got) != 1 || got[0] != core.IntentLeft {
			t.Errorf("Press(Right) released %v, expected [Left]", got)
		}
	})

	t.Run("non-directional ignored", func(t *testing.T) {
		h := NewHoldTracker()
		h.Press(core.IntentPrimary, t0)
		if h.Held(core.IntentPrimary) {
			t.Error("Primary should not be tracked")
		}
	})
}

func TestRenderScreenPlain(t *testing.T) {
	scr := core.NewScreen(4, 2)
	scr.SetCell(0, 0, core.Cell{Rune: 'a', Fg: core.ColorGold, Bg: core.ColorPurple})
	scr.SetCell(1, 0, core.Cell{Rune: 'b', Fg: core.ColorGold, Bg: core.ColorPurple})
	scr.DrawText(0, 1, "cd")

	if got := plainPainter().RenderScreen(scr); got != scr.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, scr.String())
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))
	out := plainPainter().RenderHalfBlocks(img, core.ColorDeep)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderHalfBlocks() = %d lines, expected 2", len(lines))
	}
	for _, line := range lines {
		if line != "▀▀▀" {
			t.Errorf("line = %q, expected three half blocks", line)
		}
	}
}

func TestOver(t *testing.T) {
	back := color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}
	if got := over(color.RGBA{}, back); got != back {
		t.Errorf("over(transparent) = %v, expected background", got)
	}
	red := color.RGBA{R: 0xFF, A: 0xFF}
	if got := over(red, back); got != red {
		t.Errorf("over(opaque) = %v, expected source", got)
	}
}

func newTestGameModel(t *testing.T, g *fakeGame) (GameModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(storage.Memory)
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewGameModel(g, cfg, Options{Store: store, Painter: plainPainter(), ScreenshotDir: t.TempDir()})
	m.Init()
	return m, store
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelRunsGame(t *testing.T) {
	g := &fakeGame{}
	m, store := newTestGameModel(t, g)
	if g.resets != 1 {
		t.Errorf("Reset() called %d times, expected 1", g.resets)
	}

	t0 := time.Now()
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(m, TickMsg{Gen: m.gen, Time: t0})
	if m.State().Lifecycle != core.Playing {
		t.Fatalf("state = %v, expected playing after space", m.State().Lifecycle)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, TickMsg{Gen: m.gen, Time: t0.Add(16 * time.Millisecond)})
	m = send(m, TickMsg{Gen: m.gen, Time: t0.Add(32 * time.Millisecond)})
	if m.State().Lifecycle != core.GameOver {
		t.Fatalf("state = %v, expected gameover", m.State().Lifecycle)
	}

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 5 {
		t.Errorf("saved scores = %v, expected one score of 5", scores)
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestGameModel(t, g)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(m, TickMsg{Gen: m.gen + 1000, Time: time.Now()})
	if len(g.events) != 0 {
		t.Errorf("foreign tick delivered %d events, expected none", len(g.events))
	}
}

func TestGameModelReleasesHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestGameModel(t, g)

	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(m, TickMsg{Gen: m.gen, Time: time.Now().Add(time.Second)})

	var pressed, released bool
	for _, ev := range g.events {
		if ev.Intent != core.IntentLeft {
			continue
		}
		pressed = pressed || ev.Kind == core.KeyPress
		released = released || ev.Kind == core.KeyRelease
	}
	if !pressed || !released {
		t.Errorf("events = %+v, expected a press and an emulated release", g.events)
	}
}

func TestGameModelPointer(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestGameModel(t, g)

	m = send(m, tea.MouseMsg{X: 40, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(m, tea.MouseMsg{X: 42, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = send(m, tea.MouseMsg{X: 42, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = send(m, TickMsg{Gen: m.gen, Time: time.Now()})

	if len(g.events) != 3 {
		t.Fatalf("events = %+v, expected down, move, up", g.events)
	}
	down := g.events[0]
	if down.Kind != core.PointerDown || down.X < 45 || down.X > 55 {
		t.Errorf("first event = %+v, expected PointerDown near x=50", down)
	}
	if !g.events[1].Held || g.events[1].Kind != core.PointerMove {
		t.Errorf("second event = %+v, expected a held PointerMove", g.events[1])
	}
	if g.events[2].Kind != core.PointerUp {
		t.Errorf("third event = %+v, expected PointerUp", g.events[2])
	}
}

func TestGameModelScreenshot(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestGameModel(t, g)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "Saved ") {
		t.Fatalf("status = %q, expected a saved screenshot", m.status)
	}
	for _, ext := range []string{"*.txt", "*.png"} {
		files, _ := filepath.Glob(filepath.Join(m.opts.ScreenshotDir, ext))
		if len(files) != 1 {
			t.Errorf("%s files = %v, expected one", ext, files)
		}
	}
}

func TestGameModelBack(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestGameModel(t, g)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should go back to the lobby")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}
}

func TestLobby(t *testing.T) {
	items := LobbyItems()
	if len(items) < 2 {
		t.Fatalf("LobbyItems() = %d, expected at least meme and scores", len(items))
	}
	if items[len(items)-2].Kind != ItemMeme || items[len(items)-1].Kind != ItemScores {
		t.Errorf("last items = %+v, expected meme maker then scores", items[len(items)-2:])
	}

	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 40}, plainPainter())
	if !strings.Contains(m.View(), "$ANAGO ARCADE") {
		t.Error("lobby should show the $ANAGO ARCADE title")
	}
	next, _ := m.Update(keyRunes("m"))
	if sel := next.(MenuModel).Selected(); sel == nil || sel.Kind != ItemMeme {
		t.Errorf("Selected() = %+v, expected the meme maker", sel)
	}
}

func TestLobbyNavigation(t *testing.T) {
	items := LobbyItems()
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 40}, plainPainter())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := next.(MenuModel).cursor; got != len(items)-1 {
		t.Errorf("cursor after up = %d, expected wrap to %d", got, len(items)-1)
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := next.(MenuModel).cursor; got != 0 {
		t.Errorf("cursor after down = %d, expected wrap to 0", got)
	}

	next, _ = next.Update(keyRunes(strconv.Itoa(len(items))))
	if sel := next.(MenuModel).Selected(); sel == nil || sel.Kind != ItemScores {
		t.Errorf("Selected() = %+v, expected the last item (scores)", sel)
	}
}

func TestSessionNavigation(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40}
	var model tea.Model = NewSessionModel(cfg, Options{Painter: plainPainter()}, "tester")

	model, _ = model.Update(keyRunes("m"))
	if s := model.(SessionModel); s.screen != screenMeme {
		t.Fatalf("screen = %v, expected meme maker", s.screen)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s := model.(SessionModel); s.screen != screenLobby {
		t.Fatalf("screen = %v, expected lobby after esc", s.screen)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s := model.(SessionModel); s.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", s.screen)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s := model.(SessionModel); s.screen != screenLobby {
		t.Errorf("screen = %v, expected lobby after esc", s.screen)
	}
}

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(storage.Memory)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, score := range []int{30, 50} {
		if _, err := store.SaveScore("fake", score); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, plainPainter(), 100, 30)
	if m.Tab() != 0 {
		t.Fatalf("Tab() = %d, expected the overview", m.Tab())
	}
	var found bool
	for _, row := range m.table.Rows() {
		if row[0] == "Fake" {
			found = true
			if row[1] != "50" || row[2] != "2" {
				t.Errorf("overview row = %v, expected best 50 over 2 runs", row)
			}
		}
	}
	if !found {
		t.Error("overview should list every registered game")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.Tab() != 1 {
		t.Fatalf("Tab() = %d, expected 1", m.Tab())
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "50" {
		t.Errorf("game rows = %v, expected 50 first", rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
