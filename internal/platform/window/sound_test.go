package window

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/core"
)

func TestSoundBankSilentFallbacks(t *testing.T) {
	loader := assets.NewFSLoader(fstest.MapFS{
		"sounds/dog_shoot.wav": {Data: []byte("RIFF")},
	})
	tests := []struct {
		name   string
		loader *assets.Loader
	}{
		{"no assets", nil},
		{"missing file", assets.NewLoader("")},
		{"no audio device", loader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSoundBank(nil, tt.loader, log.New(io.Discard))

			b.Play([]core.Sound{"dog_shoot", "dog_shoot", "game_over"})

			if len(b.players) != 2 {
				t.Errorf("len(players) = %d, expected each sound loaded once", len(b.players))
			}
			for s, p := range b.players {
				if p != nil {
					t.Errorf("players[%s] = %v, expected silent", s, p)
				}
			}
		})
	}
}

func TestNilSoundBank(t *testing.T) {
	var b *soundBank
	b.Play([]core.Sound{"boss_hit"})
}
