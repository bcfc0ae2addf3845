package window

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/core"
)

const sampleRate = 44100

var errNoAudio = errors.New("window: no audio context")

// soundBank plays the effects a game reports from Update. Each effect
// gets one player, loaded on first use. A missing or broken file leaves
// that effect silent for the rest of the run.
type soundBank struct {
	ctx     *audio.Context
	loader  *assets.Loader
	logger  *log.Logger
	players map[core.Sound]*audio.Player // nil means silent
}

func newSoundBank(ctx *audio.Context, loader *assets.Loader, logger *log.Logger) *soundBank {
	return &soundBank{
		ctx:     ctx,
		loader:  loader,
		logger:  logger,
		players: make(map[core.Sound]*audio.Player),
	}
}

// audioContext returns the process-wide context; ebiten allows only one.
func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// Play starts each effect from the beginning, cutting off a previous
// play of the same effect.
func (b *soundBank) Play(sounds []core.Sound) {
	if b == nil {
		return
	}
	for _, s := range sounds {
		p := b.player(s)
		if p == nil {
			continue
		}
		if err := p.Rewind(); err != nil {
			b.logger.Debug("rewind failed", "sound", s, "error", err)
		}
		p.Play()
	}
}

func (b *soundBank) player(s core.Sound) *audio.Player {
	if p, ok := b.players[s]; ok {
		return p
	}
	p, err := b.load(s)
	switch {
	case err == nil:
	case errors.Is(err, assets.ErrMissing), errors.Is(err, errNoAudio):
		b.logger.Debug("sound muted", "sound", s, "reason", err)
	default:
		b.logger.Warn("sound muted", "sound", s, "error", err)
	}
	b.players[s] = p
	return p
}

func (b *soundBank) load(s core.Sound) (*audio.Player, error) {
	data, err := b.loader.Bytes(s.Path())
	if err != nil {
		return nil, err
	}
	if b.ctx == nil {
		return nil, errNoAudio
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("window: decode %s: %w", s.Path(), err)
	}
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("window: player for %s: %w", s.Path(), err)
	}
	return p, nil
}
