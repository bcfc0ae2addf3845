package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/meme"
)

type fakeClipboard struct {
	supported bool
	err       error
	got       []byte
}

func (c *fakeClipboard) Supported() bool { return c.supported }

func (c *fakeClipboard) CopyPNG(data []byte) error {
	c.got = data
	return c.err
}

func newTestMemeModel(t *testing.T, opts Options) MemeModel {
	t.Helper()
	opts.Painter = plainPainter()
	if opts.ExportDir == "" {
		opts.ExportDir = t.TempDir()
	}
	return NewMemeModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, Seed: 7}, opts)
}

func memeSend(m MemeModel, msgs ...tea.Msg) MemeModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MemeModel)
	}
	return m
}

func TestMemeModelToggle(t *testing.T) {
	m := newTestMemeModel(t, Options{})

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	hat, ok := m.Look().Equipped(meme.Hats)
	if !ok {
		t.Fatal("enter should equip the first hat")
	}

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	next, _ := m.Look().Equipped(meme.Hats)
	if next.ID == hat.ID {
		t.Errorf("second hat = %q, expected it to replace %q", next.ID, hat.ID)
	}

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Look().Equipped(meme.Hats); ok {
		t.Error("toggling the worn hat should remove it")
	}
}

func TestMemeModelCategories(t *testing.T) {
	m := newTestMemeModel(t, Options{})

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Look().Equipped(meme.Eyes); !ok {
		t.Error("right then enter should equip eyes")
	}

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.category(); got != meme.Categories[len(meme.Categories)-1] {
		t.Errorf("category() = %v, expected wrap to %v", got, meme.Categories[len(meme.Categories)-1])
	}
}

func TestMemeModelCaptions(t *testing.T) {
	m := newTestMemeModel(t, Options{})

	m = memeSend(m, keyRunes("t"), keyRunes("gm"), tea.KeyMsg{Type: tea.KeyEnter})
	m = memeSend(m, keyRunes("b"), keyRunes("wagmi"), tea.KeyMsg{Type: tea.KeyEsc})

	top, bottom := m.Look().Captions()
	if top != "GM" || bottom != "WAGMI" {
		t.Errorf("Captions() = %q, %q, expected GM, WAGMI", top, bottom)
	}
	if m.IsGoingBack() {
		t.Error("esc while editing should only leave the text field")
	}

	m = memeSend(m, keyRunes("x"))
	if top, bottom := m.Look().Captions(); top != "" || bottom != "" {
		t.Errorf("Captions() after reset = %q, %q, expected empty", top, bottom)
	}
}

func TestMemeModelRandomizeAndReset(t *testing.T) {
	m := newTestMemeModel(t, Options{})

	for i := 0; i < 5 && len(m.Look().Layers()) == 0; i++ {
		m = memeSend(m, keyRunes("r"))
	}
	if len(m.Look().Layers()) == 0 {
		t.Fatal("randomize never equipped a trait")
	}

	m = memeSend(m, keyRunes("x"))
	if n := len(m.Look().Layers()); n != 0 {
		t.Errorf("Layers() after reset = %d, expected 0", n)
	}
}

func TestMemeModelExport(t *testing.T) {
	dir := t.TempDir()
	m := newTestMemeModel(t, Options{ExportDir: dir})

	m = memeSend(m, keyRunes("e"))
	path := filepath.Join(dir, "anago-meme.png")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export did not write %s: %v", path, err)
	}
	if !strings.HasPrefix(m.Status(), "Saved ") {
		t.Errorf("Status() = %q, expected a saved message", m.Status())
	}
}

func TestMemeModelCopy(t *testing.T) {
	tests := []struct {
		name     string
		clip     meme.Clipboard
		expected string
	}{
		{"no clipboard", nil, meme.CopyUnsupportText},
		{"unsupported", &fakeClipboard{}, meme.CopyUnsupportText},
		{"failure", &fakeClipboard{supported: true, err: errors.New("boom")}, meme.CopyFailedText},
		{"success", &fakeClipboard{supported: true}, meme.CopiedText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMemeModel(t, Options{Clipboard: tt.clip})
			m = memeSend(m, keyRunes("c"))
			if m.Status() != tt.expected {
				t.Errorf("Status() = %q, expected %q", m.Status(), tt.expected)
			}
		})
	}

	clip := &fakeClipboard{supported: true}
	m := newTestMemeModel(t, Options{Clipboard: clip})
	memeSend(m, keyRunes("c"))
	if !strings.HasPrefix(string(clip.got), "\x89PNG") {
		t.Error("clipboard should receive PNG bytes")
	}
}

func TestMemeModelLooks(t *testing.T) {
	looks := meme.NewLookStore(nil)
	m := newTestMemeModel(t, Options{Looks: looks})

	m = memeSend(m, keyRunes("o"))
	if m.Status() != "No saved looks yet" {
		t.Errorf("Status() = %q, expected no saved looks", m.Status())
	}

	m = memeSend(m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("t"), keyRunes("gm"), tea.KeyMsg{Type: tea.KeyEnter})
	m = memeSend(m, keyRunes("s"), keyRunes("mine"), tea.KeyMsg{Type: tea.KeyEnter})
	if names := looks.Names(); len(names) != 1 || names[0] != "mine" {
		t.Fatalf("Names() = %v, expected [mine]", names)
	}

	m = memeSend(m, keyRunes("x"), keyRunes("o"))
	if _, ok := m.Look().Equipped(meme.Hats); !ok {
		t.Error("loading the look should restore the hat")
	}
	if top, _ := m.Look().Captions(); top != "GM" {
		t.Errorf("top caption = %q, expected GM", top)
	}
}

func TestMemeModelBack(t *testing.T) {
	m := newTestMemeModel(t, Options{})
	m = memeSend(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.View() != "" {
		t.Error("esc should leave the meme maker")
	}
}
