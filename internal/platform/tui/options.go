package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/meme"
	"github.com/anago-arcade/anago/internal/storage"
)

// Options carries the shared services every screen of a session uses.
// Zero fields fall back to harmless defaults.
type Options struct {
	Store         *storage.Store
	Assets        *assets.Loader
	Meme          config.MemeConfig
	Looks         *meme.LookStore
	Clipboard     meme.Clipboard
	Painter       *Painter
	ScreenshotDir string
	ExportDir     string
	Logger        *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Painter == nil {
		o.Painter = NewPainter(nil)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Looks == nil {
		o.Looks = meme.NewLookStore(nil)
	}
	if o.Meme.Size == 0 {
		o.Meme = config.DefaultMemeConfig()
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = DefaultScreenshotDir()
	}
	return o
}

// DefaultScreenshotDir returns ~/.anago/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".anago", "screenshots")
	}
	return filepath.Join(home, ".anago", "screenshots")
}
