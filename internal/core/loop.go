package core

import "time"

// Updater is the part of a game the frame driver advances.
type Updater interface {
	Update(dt time.Duration, in InputFrame) StepResult
}

// FrameDriver turns host refresh callbacks into Update calls. The host
// calls Tick with a monotonically increasing timestamp on every refresh and
// draws afterwards using Elapsed as the draw timestamp.
type FrameDriver struct {
	target Updater

	// MaxDelta caps a single frame's delta. Zero means no cap.
	MaxDelta time.Duration

	start   time.Time
	last    time.Time
	started bool
	stopped bool
	pending InputFrame
}

// NewFrameDriver creates a driver for the given game.
func NewFrameDriver(target Updater) *FrameDriver {
	return &FrameDriver{target: target}
}

// Queue latches an input event for the next Update.
func (d *FrameDriver) Queue(ev InputEvent) {
	if d.stopped {
		return
	}
	d.pending.Add(ev)
}

// Tick advances the game by the time since the previous Tick. The first
// Tick has a delta of zero. It reports false once the driver is stopped.
func (d *FrameDriver) Tick(now time.Time) (StepResult, bool) {
	if d.stopped {
		return StepResult{}, false
	}
	var dt time.Duration
	if !d.started {
		d.started = true
		d.start = now
	} else {
		dt = now.Sub(d.last)
	}
	d.last = now
	if dt < 0 {
		dt = 0
	}
	if d.MaxDelta > 0 && dt > d.MaxDelta {
		dt = d.MaxDelta
	}

	in := d.pending
	d.pending = InputFrame{}
	return d.target.Update(dt, in), true
}

// Elapsed returns the draw timestamp: time since the first Tick.
func (d *FrameDriver) Elapsed() time.Duration {
	if !d.started {
		return 0
	}
	return d.last.Sub(d.start)
}

// Stop tears the driver down: pending input is dropped and later ticks
// are ignored.
func (d *FrameDriver) Stop() {
	d.stopped = true
	d.pending = InputFrame{}
}

// Stopped reports whether Stop was called.
func (d *FrameDriver) Stopped() bool {
	return d.stopped
}

// Accumulator collects elapsed time and hands out whole fixed steps.
type Accumulator struct {
	Step time.Duration
	acc  time.Duration
}

// Advance adds dt and returns how many steps are now due.
func (a *Accumulator) Advance(dt time.Duration) int {
	if a.Step <= 0 {
		return 0
	}
	a.acc += dt
	n := int(a.acc / a.Step)
	a.acc -= time.Duration(n) * a.Step
	return n
}

// Pending returns the time carried over toward the next step.
func (a *Accumulator) Pending() time.Duration {
	return a.acc
}

// Reset drops carried-over time.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// Countdown is an explicit timer field decremented by Update.
type Countdown struct {
	left time.Duration
}

// Set arms the countdown.
func (c *Countdown) Set(d time.Duration) {
	c.left = d
}

// Tick subtracts dt. It reports true on the tick the countdown runs out.
func (c *Countdown) Tick(dt time.Duration) bool {
	if c.left <= 0 {
		return false
	}
	c.left -= dt
	if c.left <= 0 {
		c.left = 0
		return true
	}
	return false
}

// Active reports whether time is left.
func (c Countdown) Active() bool {
	return c.left > 0
}

// Left returns the remaining time.
func (c Countdown) Left() time.Duration {
	return c.left
}

// Stop clears the countdown.
func (c *Countdown) Stop() {
	c.left = 0
}

// Millis converts a duration to float64 milliseconds, the unit every
// game's velocities are expressed in.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Ms converts integer milliseconds from config files to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
