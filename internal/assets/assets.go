// Package assets loads optional assets (sprites, meme layers, sounds) from
// a directory on disk. Every consumer has a procedural fallback, so a missing
// asset is reported with ErrMissing rather than treated as fatal.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

// ErrMissing reports an asset that is not available.
var ErrMissing = errors.New("assets: missing")

// Loader decodes images from a filesystem and caches the results,
// including failures, so a missing file is only looked up once.
type Loader struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]entry
}

type entry struct {
	img image.Image
	err error
}

// NewLoader creates a loader rooted at dir. An empty dir yields a loader
// for which every asset is missing.
func NewLoader(dir string) *Loader {
	if dir == "" {
		return NewFSLoader(nil)
	}
	return NewFSLoader(os.DirFS(dir))
}

// NewFSLoader creates a loader over an arbitrary filesystem.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]entry)}
}

// clean turns web-style paths ("/meme-maker/hats/x.png") into fs paths.
func clean(p string) string {
	return path.Clean(strings.TrimPrefix(p, "/"))
}

// Image returns the decoded image at p.
func (l *Loader) Image(p string) (image.Image, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, p)
	}
	key := clean(p)

	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.cache[key]; ok {
		return e.img, e.err
	}
	img, err := l.decode(key)
	l.cache[key] = entry{img: img, err: err}
	return img, err
}

func (l *Loader) decode(key string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	f, err := l.fsys.Open(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", key, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", key, err)
	}
	return img, nil
}

// Bytes returns the raw contents of the asset at p. Sounds are decoded
// by the frontend that plays them, so they are not cached here.
func (l *Loader) Bytes(p string) ([]byte, error) {
	key := clean(p)
	if l == nil || l.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	b, err := fs.ReadFile(l.fsys, key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", key, err)
	}
	return b, nil
}

// Exists reports whether an asset file is present without decoding it.
func (l *Loader) Exists(p string) bool {
	if l == nil || l.fsys == nil {
		return false
	}
	_, err := fs.Stat(l.fsys, clean(p))
	return err == nil
}
