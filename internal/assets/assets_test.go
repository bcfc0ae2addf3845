package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 122, G: 63, B: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoaderImage(t *testing.T) {
	fsys := fstest.MapFS{
		"meme-maker/base/anago.png": {Data: pngBytes(t)},
		"broken.png":                {Data: []byte("not a png")},
	}
	l := NewFSLoader(fsys)

	img, err := l.Image("/meme-maker/base/anago.png")
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("Image() width = %d, expected 4", img.Bounds().Dx())
	}

	if _, err := l.Image("meme-maker/hats/none.png"); !errors.Is(err, ErrMissing) {
		t.Errorf("Image(missing) error = %v, expected ErrMissing", err)
	}

	_, err = l.Image("broken.png")
	if err == nil || errors.Is(err, ErrMissing) {
		t.Errorf("Image(broken) error = %v, expected a decode error", err)
	}

	if !l.Exists("/broken.png") || l.Exists("nope.png") {
		t.Error("Exists() mismatch")
	}
}

func TestLoaderBytes(t *testing.T) {
	wav := []byte("RIFF\x24\x00\x00\x00WAVE")
	l := NewFSLoader(fstest.MapFS{"sounds/dog_shoot.wav": {Data: wav}})

	got, err := l.Bytes("/sounds/dog_shoot.wav")
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !bytes.Equal(got, wav) {
		t.Errorf("Bytes() = %q, expected %q", got, wav)
	}

	if _, err := l.Bytes("sounds/boss_hit.wav"); !errors.Is(err, ErrMissing) {
		t.Errorf("Bytes(missing) error = %v, expected ErrMissing", err)
	}
}

func TestEmptyLoader(t *testing.T) {
	for _, l := range []*Loader{nil, NewLoader("")} {
		if _, err := l.Image("a.png"); !errors.Is(err, ErrMissing) {
			t.Errorf("Image() error = %v, expected ErrMissing", err)
		}
		if _, err := l.Bytes("a.wav"); !errors.Is(err, ErrMissing) {
			t.Errorf("Bytes() error = %v, expected ErrMissing", err)
		}
		if l.Exists("a.png") {
			t.Error("Exists() should be false without a root")
		}
	}
}
