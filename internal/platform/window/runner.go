// Package window runs a game in a desktop window with ebiten. It feeds
// the same input events and canvas calls as the terminal frontend, so
// games behave identically in both.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/registry"
	"github.com/anago-arcade/anago/internal/storage"
)

// Options configures a desktop run.
type Options struct {
	Store  *storage.Store
	Assets *assets.Loader // sound effects; nil plays nothing
	Logger *log.Logger
	Scale  float64 // window pixels per logical pixel
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game   registry.Game
	driver *core.FrameDriver
	canvas *Canvas
	sounds *soundBank
	opts   Options
	config core.RuntimeConfig

	clock    time.Time
	step     time.Duration
	cursorX  int
	cursorY  int
	pressed  []ebiten.Key
	released []ebiten.Key
	touches  []ebiten.TouchID
	state    core.GameState
}

// NewRunner resets game and wraps it for ebiten.RunGame.
func NewRunner(game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	w, h := game.Size()
	game.Reset(cfg)
	return &Runner{
		game:   game,
		driver: core.NewFrameDriver(game),
		canvas: NewCanvas(w, h),
		sounds: newSoundBank(nil, opts.Assets, opts.Logger),
		opts:   opts,
		config: cfg,
		clock:  time.Unix(0, 0),
		step:   time.Second / time.Duration(cfg.TickRate),
	}
}

// Update collects input and advances the game one fixed step. ebiten
// calls it TickRate times per second regardless of the display rate.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	r.released = inpututil.AppendJustReleasedKeys(r.released[:0])
	r.pressed = inpututil.AppendJustPressedKeys(r.pressed[:0])
	for _, ev := range keyEvents(r.pressed, r.released) {
		r.driver.Queue(ev)
	}
	r.queuePointer()

	r.clock = r.clock.Add(r.step)
	result, ok := r.driver.Tick(r.clock)
	if !ok {
		return nil
	}
	r.state = result.State
	r.sounds.Play(result.Sounds)
	if result.Finished && result.State.Score > 0 && r.opts.Store != nil {
		if _, err := r.opts.Store.SaveScore(r.game.ID(), result.State.Score); err != nil {
			r.opts.Logger.Warn("could not save score", "game", r.game.ID(), "error", err)
		}
	}
	return nil
}

// queuePointer turns mouse and touch edges into pointer events. Layout
// makes cursor positions logical already.
func (r *Runner) queuePointer() {
	x, y := ebiten.CursorPosition()
	held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.driver.Queue(core.InputEvent{Kind: core.PointerDown, X: float64(x), Y: float64(y)})
	}
	if x != r.cursorX || y != r.cursorY {
		r.cursorX, r.cursorY = x, y
		r.driver.Queue(core.InputEvent{Kind: core.PointerMove, X: float64(x), Y: float64(y), Held: held})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		r.driver.Queue(core.InputEvent{Kind: core.PointerUp, X: float64(x), Y: float64(y)})
	}

	r.touches = inpututil.AppendJustPressedTouchIDs(r.touches[:0])
	for _, id := range r.touches {
		tx, ty := ebiten.TouchPosition(id)
		r.driver.Queue(core.InputEvent{Kind: core.PointerDown, X: float64(tx), Y: float64(ty)})
	}
	r.touches = inpututil.AppendJustReleasedTouchIDs(r.touches[:0])
	for _, id := range r.touches {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		r.driver.Queue(core.InputEvent{Kind: core.PointerUp, X: float64(tx), Y: float64(ty)})
	}
}

// Draw paints the current frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.Target(screen)
	r.game.Draw(r.canvas, r.driver.Elapsed())
}

// Layout pins the screen to the game's logical size; ebiten scales it
// to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.game.Size()
}

// State returns the last reported game state.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run opens a window and plays game until it is closed or esc is pressed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	r := NewRunner(game, cfg, opts)
	r.sounds.ctx = audioContext()
	w, h := game.Size()

	ebiten.SetWindowSize(int(float64(w)*r.opts.Scale), int(float64(h)*r.opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(r.config.TickRate)

	r.opts.Logger.Debug("window opened", "game", game.ID(), "w", w, "h", h)
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	r.driver.Stop()
	return nil
}
