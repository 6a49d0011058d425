package graphics

import (
	"gallery/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DragThreshold is how far (pixels) the pointer may travel between press and release and
// still count as a click rather than an orbit drag.
const DragThreshold = 4

// Pointer tracks the primary button between press and release.
type Pointer struct {
	pos      rl.Vector2
	pressAt  rl.Vector2
	down     bool
	dragging bool
}

// Move records the pointer position and returns how far it moved.
func (p *Pointer) Move(x, y float32) (dx, dy float32) {
	dx, dy = x-p.pos.X, y-p.pos.Y
	p.pos = rl.NewVector2(x, y)
	if p.down && !p.dragging && rl.Vector2Distance(p.pos, p.pressAt) > DragThreshold {
		p.dragging = true
	}
	return dx, dy
}

// Press starts a gesture at the current position.
func (p *Pointer) Press() {
	p.down = true
	p.dragging = false
	p.pressAt = p.pos
}

// Release ends the gesture and reports whether it was a click.
func (p *Pointer) Release() bool {
	if !p.down {
		return false
	}
	click := !p.dragging
	p.down, p.dragging = false, false
	return click
}

// Dragging reports whether the current press has turned into a drag.
func (p *Pointer) Dragging() bool { return p.dragging }

// Position is the last recorded pointer position.
func (p *Pointer) Position() rl.Vector2 { return p.pos }

// MouseState is one frame of mouse input.
type MouseState struct {
	X, Y     float32
	Moved    bool
	Pressed  bool
	Released bool
	Wheel    float32
}

// PollMouse reads this frame's mouse input from raylib.
func PollMouse() MouseState {
	pos := rl.GetMousePosition()
	d := rl.GetMouseDelta()
	return MouseState{
		X:        pos.X,
		Y:        pos.Y,
		Moved:    d.X != 0 || d.Y != 0,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Wheel:    rl.GetMouseWheelMove(),
	}
}

// Input routes mouse state to the orbit camera and to pointer handlers. Presses that start
// inside Blocked (the control panel) neither orbit nor click.
//
// OnMove sees every hover position outside Blocked, plus the release point of a drag.
// OnLeave fires once each time the pointer enters Blocked.
type Input struct {
	Pointer  Pointer
	Orbit    *camera.Orbit
	Viewport *camera.Viewport

	Blocked func(x, y float32) bool
	OnMove  func(x, y float32)
	OnLeave func()
	OnClick func()

	pressBlocked bool
	inBlocked    bool
}

func (in *Input) blocked(x, y float32) bool {
	return in.Blocked != nil && in.Blocked(x, y)
}

// hover reports a resting pointer at (x, y) to OnMove, or to OnLeave on entering Blocked.
func (in *Input) hover(x, y float32) {
	if in.blocked(x, y) {
		if !in.inBlocked && in.OnLeave != nil {
			in.OnLeave()
		}
		in.inBlocked = true
		return
	}
	in.inBlocked = false
	if in.OnMove != nil {
		in.OnMove(x, y)
	}
}

// Handle applies one frame of input, then advances the orbit camera.
func (in *Input) Handle(s MouseState) {
	if s.Moved {
		dx, dy := in.Pointer.Move(s.X, s.Y)
		if in.Pointer.Dragging() && !in.pressBlocked && in.Orbit != nil {
			in.Orbit.Rotate(dx, dy, *in.Viewport)
		}
		if !in.Pointer.Dragging() {
			in.hover(s.X, s.Y)
		}
	}
	if s.Pressed {
		in.Pointer.Press()
		in.pressBlocked = in.blocked(s.X, s.Y)
	}
	if s.Released {
		dragged := in.Pointer.Dragging()
		if in.Pointer.Release() && !in.pressBlocked && in.OnClick != nil {
			in.OnClick()
		}
		in.pressBlocked = false
		if dragged {
			in.hover(s.X, s.Y)
		}
	}
	if s.Wheel != 0 && !in.blocked(s.X, s.Y) && in.Orbit != nil {
		in.Orbit.Zoom(s.Wheel)
	}
	if in.Orbit != nil {
		in.Orbit.Update()
	}
}
