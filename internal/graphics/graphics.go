// Package graphics owns the window and the frame loop: clock, resize handling, mixers and
// exactly one render per frame.
package graphics

import (
	"time"

	"gallery/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options describe the window opened by Run.
type Options struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
	Background rl.Color
	// OnClose runs after the last frame, while the GL context still exists.
	OnClose func()
}

// Mixer is anything that advances with the frame clock (overlay timers, caption reversion).
type Mixer interface {
	Update(dt time.Duration)
}

// maxStep caps a single frame's delta so a stalled window (dragging, breakpoints) does not
// fast-forward every timer at once.
const maxStep = 250 * time.Millisecond

// Clock accumulates frame time.
type Clock struct {
	elapsed time.Duration
}

// Tick advances the clock by seconds (as reported by raylib) and returns the step.
// Negative input counts as zero.
func (c *Clock) Tick(seconds float32) time.Duration {
	if seconds <= 0 {
		return 0
	}
	dt := min(time.Duration(float64(seconds)*float64(time.Second)), maxStep)
	c.elapsed += dt
	return dt
}

// Elapsed is the total time since the clock started.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Loop is the per-frame bookkeeping of Run, kept apart from raylib so it can be driven in tests.
type Loop struct {
	Viewport *camera.Viewport
	Clock    Clock

	mixers   []Mixer
	onResize []func(camera.Viewport)
}

// NewLoop returns a loop updating v on resize.
func NewLoop(v *camera.Viewport) *Loop {
	return &Loop{Viewport: v}
}

// AddMixer registers m to be advanced every frame, in registration order.
func (l *Loop) AddMixer(m Mixer) {
	l.mixers = append(l.mixers, m)
}

// OnResize registers fn to run after the viewport changes size.
func (l *Loop) OnResize(fn func(camera.Viewport)) {
	l.onResize = append(l.onResize, fn)
}

// Step starts a frame: picks up a new surface size, advances the clock by seconds, then
// every mixer. Returns the frame delta.
func (l *Loop) Step(width, height int32, seconds float32) time.Duration {
	if l.Viewport.Resize(width, height) {
		for _, fn := range l.onResize {
			fn(*l.Viewport)
		}
	}
	dt := l.Clock.Tick(seconds)
	for _, m := range l.mixers {
		m.Update(dt)
	}
	return dt
}

// Run opens the window and drives the loop until the window is closed. Each frame it steps
// loop, calls update (input, camera), then clears the screen and calls draw once.
func Run(opts Options, loop *Loop, update func(dt time.Duration), draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	if opts.OnClose != nil {
		defer opts.OnClose()
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	fps := opts.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		dt := loop.Step(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.GetFrameTime())
		update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(opts.Background)
		draw()
		rl.EndDrawing()
	}
}
