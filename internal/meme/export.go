package meme

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Messages shown by the meme maker controls.
const (
	ExportFailedText  = "Failed to export PNG. Try again."
	CopiedText        = "Copied image to clipboard ✅"
	CopyFailedText    = "Failed to copy image. Your terminal may not support this."
	CopyUnsupportText = "Copy not supported"
)

var (
	// ErrExport wraps every export failure.
	ErrExport = errors.New("meme: export failed")
	// ErrClipboardUnsupported is returned when the output cannot carry OSC 52.
	ErrClipboardUnsupported = errors.New("meme: clipboard not supported")
)

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	return buf.Bytes(), nil
}

// ExportPNG writes img to path. When path names a directory the file is
// created inside it under name.
func ExportPNG(path, name string, img image.Image) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, name)
	}
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExport, err)
	}
	return path, nil
}

// Clipboard copies a rendered meme somewhere the user can paste it.
type Clipboard interface {
	Supported() bool
	CopyPNG(data []byte) error
}

// OSC52Clipboard copies through the terminal with an OSC 52 escape
// sequence. The payload is a PNG data URL since OSC 52 carries text.
type OSC52Clipboard struct {
	out  io.Writer
	tty  bool
	tmux bool
}

// NewOSC52Clipboard writes sequences to out. tty reports whether out is
// an interactive terminal; without one copying is unsupported. tmux wraps
// the sequence so tmux passes it through to the outer terminal.
func NewOSC52Clipboard(out io.Writer, tty, tmux bool) *OSC52Clipboard {
	return &OSC52Clipboard{out: out, tty: tty, tmux: tmux}
}

// InTmux reports whether an environment (os.Environ, or an SSH session's
// Environ) belongs to a shell inside tmux.
func InTmux(environ []string) bool {
	for _, kv := range environ {
		if v, ok := strings.CutPrefix(kv, "TMUX="); ok && v != "" {
			return true
		}
	}
	return false
}

// Supported reports whether copying can work.
func (c *OSC52Clipboard) Supported() bool {
	return c != nil && c.out != nil && c.tty
}

// CopyPNG sends data to the terminal clipboard.
func (c *OSC52Clipboard) CopyPNG(data []byte) error {
	if !c.Supported() {
		return ErrClipboardUnsupported
	}
	seq := osc52.New(DataURL(data))
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("meme: copy: %w", err)
	}
	return nil
}

// DataURL returns data as a base64 PNG data URL.
func DataURL(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
