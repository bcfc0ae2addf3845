package snake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
)

const step = 120 * time.Millisecond

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func press(i core.Intent) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(i)
	return f
}

func TestInitialLayout(t *testing.T) {
	g := newGame(t, 1)

	if g.State().Lifecycle != core.Ready {
		t.Errorf("State().Lifecycle = %v, expected ready", g.State().Lifecycle)
	}
	if len(g.snake) != 1 || g.snake[0] != (Point{10, 10}) {
		t.Errorf("snake = %v, expected [{10 10}]", g.snake)
	}
	if g.heading != core.IntentRight {
		t.Errorf("heading = %v, expected Right", g.heading)
	}
	if g.onSnake(g.food) {
		t.Errorf("food %v spawned on the snake", g.food)
	}
	if w, h := g.Size(); w != 320 || h != 320 {
		t.Errorf("Size() = %dx%d, expected 320x320", w, h)
	}
}

func TestNoMotionWhileReady(t *testing.T) {
	g := newGame(t, 1)
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		g.Update(step, core.NewInputFrame())
	}

	if got := g.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Errorf("Snapshot() changed while ready: %+v -> %+v", before, got)
	}
}

func TestNoMotionWhileFinished(t *testing.T) {
	g := newGame(t, 3)
	g.food = Point{0, 0}
	g.Update(0, press(core.IntentRight))
	// A swipe that started before the crash.
	g.swipe.x, g.swipe.y, g.swipe.active = 100, 100, true
	for g.State().Lifecycle == core.Playing {
		g.Update(step, core.NewInputFrame())
	}
	if g.State().Lifecycle != core.GameOver {
		t.Fatalf("Lifecycle = %v, expected gameover", g.State().Lifecycle)
	}
	before, dir := g.Snapshot(), g.nextDir

	frames := []core.InputFrame{
		press(core.IntentUp),
		press(core.IntentLeft),
		{Events: []core.InputEvent{{Kind: core.PointerMove, X: 10, Y: 300, Held: true}}},
		{Events: []core.InputEvent{{Kind: core.PointerUp, X: 100, Y: 300}}},
		press(core.IntentDown),
	}
	for i := 0; i < 30; i++ {
		g.Update(step, frames[i%len(frames)])
	}

	if got := g.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Errorf("Snapshot() changed after gameover:\n%+v\n%+v", before, got)
	}
	if g.nextDir != dir {
		t.Errorf("nextDir = %v, expected %v kept after gameover", g.nextDir, dir)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	g := newGame(t, 1)
	g.session.Start()
	g.food = Point{0, 0}

	g.Update(100*time.Millisecond, core.NewInputFrame())
	if g.steps != 0 {
		t.Fatalf("steps = %d after 100ms, expected 0", g.steps)
	}
	g.Update(20*time.Millisecond, core.NewInputFrame())
	if g.steps != 1 {
		t.Fatalf("steps = %d after 120ms, expected 1", g.steps)
	}
	g.Update(3*step, core.NewInputFrame())
	if g.steps != 4 {
		t.Errorf("steps = %d after 480ms, expected 4", g.steps)
	}
	if g.snake[0] != (Point{14, 10}) {
		t.Errorf("head = %v, expected {14 10}", g.snake[0])
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(t, 42)
	g.food = Point{0, 0}

	g.Update(0, press(core.IntentRight))
	g.Update(step, press(core.IntentLeft))

	if g.heading != core.IntentRight {
		t.Errorf("heading = %v, expected Right", g.heading)
	}
	if g.snake[0] != (Point{11, 10}) {
		t.Errorf("head = %v, expected {11 10}", g.snake[0])
	}
}

func TestReversalCheckedAgainstHeading(t *testing.T) {
	g := newGame(t, 42)
	g.food = Point{0, 0}
	g.session.Start()

	// Left reverses the current heading and is rejected even though Up
	// is already latched.
	f := core.NewInputFrame()
	f.Set(core.IntentUp)
	f.Set(core.IntentLeft)
	g.Update(step, f)

	if g.heading != core.IntentUp {
		t.Errorf("heading = %v, expected Up", g.heading)
	}
}

func TestWallCollision(t *testing.T) {
	g := newGame(t, 3)
	g.food = Point{0, 0}
	g.Update(0, press(core.IntentRight))

	var res core.StepResult
	finished := 0
	for i := 0; i < 12; i++ {
		res = g.Update(step, core.NewInputFrame())
		if res.Finished {
			finished++
		}
	}

	if res.State.Lifecycle != core.GameOver {
		t.Errorf("Lifecycle = %v, expected gameover", res.State.Lifecycle)
	}
	if finished != 1 {
		t.Errorf("Finished reported %d times, expected 1", finished)
	}
}

func TestSelfCollision(t *testing.T) {
	g := newGame(t, 3)
	g.session.Start()
	g.food = Point{0, 0}
	g.snake = []Point{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}}
	g.heading, g.nextDir = core.IntentUp, core.IntentUp

	g.Update(step, press(core.IntentRight))

	if g.State().Lifecycle != core.GameOver {
		t.Errorf("Lifecycle = %v, expected gameover", g.State().Lifecycle)
	}
}

func TestEatGrows(t *testing.T) {
	g := newGame(t, 5)
	g.session.Start()
	g.food = Point{11, 10}

	g.Update(step, core.NewInputFrame())

	st := g.State()
	if st.Score != 1 || st.Best != 1 {
		t.Errorf("State() = %+v, expected score 1 best 1", st)
	}
	if len(g.snake) != 2 {
		t.Errorf("len(snake) = %d, expected 2", len(g.snake))
	}
	if g.onSnake(g.food) {
		t.Errorf("new food %v is on the snake", g.food)
	}
}

func TestRestartKeepsBest(t *testing.T) {
	g := newGame(t, 5)
	g.session.Start()
	g.food = Point{11, 10}
	g.Update(step, core.NewInputFrame())
	g.session.Finish(false)

	// Directions are ignored while game over.
	g.Update(0, press(core.IntentUp))
	if g.State().Lifecycle != core.GameOver {
		t.Fatalf("Lifecycle = %v, expected gameover", g.State().Lifecycle)
	}

	g.Update(0, press(core.IntentPrimary))
	st := g.State()
	if st.Lifecycle != core.Ready || st.Score != 0 || st.Best != 1 {
		t.Errorf("State() = %+v, expected ready with score 0 best 1", st)
	}
	if len(g.snake) != 1 {
		t.Errorf("len(snake) = %d, expected 1", len(g.snake))
	}
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   core.Intent
	}{
		{"down", 2, 40, core.IntentDown},
		{"up", -5, -30, core.IntentUp},
		{"too short", 10, 15, core.IntentRight},
		{"reverse rejected", -60, 0, core.IntentRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, 9)
			f := core.NewInputFrame()
			f.Add(core.InputEvent{Kind: core.PointerDown, X: 100, Y: 100})
			f.Add(core.InputEvent{Kind: core.PointerUp, X: 100 + tt.dx, Y: 100 + tt.dy})
			g.Update(0, f)

			if g.State().Lifecycle != core.Playing {
				t.Errorf("Lifecycle = %v, expected playing", g.State().Lifecycle)
			}
			if g.nextDir != tt.want {
				t.Errorf("nextDir = %v, expected %v", g.nextDir, tt.want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, 12345)
		dirs := []core.Intent{core.IntentRight, core.IntentDown, core.IntentLeft, core.IntentUp}
		for i := 0; i < 200; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.Set(dirs[(i/7)%len(dirs)])
			}
			g.Update(40*time.Millisecond, in)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Snapshot() mismatch:\n%+v\n%+v", a, b)
	}
}

func TestDrawOnCellCanvas(t *testing.T) {
	g := newGame(t, 1)
	scr := core.NewScreen(40, 20)
	w, h := g.Size()
	g.Draw(core.NewCellCanvas(scr, core.NewViewport(float64(w), float64(h), 40, 20)), 0)

	if !strings.Contains(scr.String(), "ANAGO SNAKE") {
		t.Errorf("ready banner missing:\n%s", scr.String())
	}
}
