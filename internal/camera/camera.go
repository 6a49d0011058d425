// Package camera owns the viewport size, the orbit camera and the screen-to-world ray.
package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Projection defaults.
const (
	FovY = 75
	Near = 0.1
	Far  = 1000
)

// Viewport is the render surface size in pixels.
type Viewport struct {
	Width, Height int32
}

// Aspect is Width/Height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Resize sets the new size and reports whether it changed.
func (v *Viewport) Resize(w, h int32) bool {
	if v.Width == w && v.Height == h {
		return false
	}
	v.Width, v.Height = w, h
	return true
}

// NDC maps a pixel position to normalized device coordinates: x and y in [-1, 1], y up.
func (v Viewport) NDC(x, y float32) rl.Vector2 {
	if v.Width <= 0 || v.Height <= 0 {
		return rl.Vector2{}
	}
	return rl.NewVector2(
		2*x/float32(v.Width)-1,
		-(2*y/float32(v.Height) - 1),
	)
}

// Ray casts from cam through the NDC point ndc, for a viewport with the given aspect ratio.
func Ray(cam rl.Camera3D, ndc rl.Vector2, aspect float32) rl.Ray {
	proj := rl.MatrixPerspective(cam.Fovy, aspect, Near, Far)
	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	near := rl.Vector3Unproject(rl.NewVector3(ndc.X, ndc.Y, 0), proj, view)
	far := rl.Vector3Unproject(rl.NewVector3(ndc.X, ndc.Y, 1), proj, view)
	return rl.Ray{
		Position:  cam.Position,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(far, near)),
	}
}

// Orbit rotates and zooms a perspective camera around a fixed target, easing motion out
// over several frames.
type Orbit struct {
	Camera rl.Camera3D

	Damping     float32
	MinDistance float32
	MaxDistance float32
	MaxPolar    float32
	RotateSpeed float32
	ZoomSpeed   float32

	radius, theta, phi float32
	dTheta, dPhi       float32
	scale              float32
}

const minPolar = 1e-6

// NewOrbit returns an orbit camera at position looking at target with the gallery's limits.
func NewOrbit(position, target rl.Vector3) *Orbit {
	o := &Orbit{
		Camera: rl.Camera3D{
			Position:   position,
			Target:     target,
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       FovY,
			Projection: rl.CameraPerspective,
		},
		Damping:     0.05,
		MinDistance: 1,
		MaxDistance: 20,
		MaxPolar:    math32.Pi / 2,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		scale:       1,
	}
	off := rl.Vector3Subtract(position, target)
	o.radius = rl.Vector3Length(off)
	if o.radius > 0 {
		o.theta = math32.Atan2(off.X, off.Z)
		o.phi = math32.Acos(rl.Clamp(off.Y/o.radius, -1, 1))
	}
	o.place()
	return o
}

// Rotate queues a drag of (dx, dy) pixels. A drag across the full viewport height turns
// the camera once around.
func (o *Orbit) Rotate(dx, dy float32, v Viewport) {
	if v.Height <= 0 {
		return
	}
	h := float32(v.Height)
	o.dTheta -= 2 * math32.Pi * dx / h * o.RotateSpeed
	o.dPhi -= 2 * math32.Pi * dy / h * o.RotateSpeed
}

// Zoom queues a wheel movement; positive moves closer.
func (o *Orbit) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	o.scale *= math32.Pow(0.95, wheel*o.ZoomSpeed)
}

// Update applies queued motion, enforces the distance and polar limits, and moves the camera.
// Call once per frame.
func (o *Orbit) Update() {
	if o.Damping > 0 {
		o.theta += o.dTheta * o.Damping
		o.phi += o.dPhi * o.Damping
		o.dTheta *= 1 - o.Damping
		o.dPhi *= 1 - o.Damping
	} else {
		o.theta += o.dTheta
		o.phi += o.dPhi
		o.dTheta, o.dPhi = 0, 0
	}
	o.radius *= o.scale
	o.scale = 1
	o.place()
}

// Distance is the current distance from target.
func (o *Orbit) Distance() float32 { return o.radius }

// Polar is the current angle from straight up, in radians.
func (o *Orbit) Polar() float32 { return o.phi }

func (o *Orbit) place() {
	o.phi = rl.Clamp(o.phi, minPolar, o.MaxPolar)
	o.radius = rl.Clamp(o.radius, o.MinDistance, o.MaxDistance)
	sinPhi := math32.Sin(o.phi)
	off := rl.NewVector3(
		o.radius*sinPhi*math32.Sin(o.theta),
		o.radius*math32.Cos(o.phi),
		o.radius*sinPhi*math32.Cos(o.theta),
	)
	o.Camera.Position = rl.Vector3Add(o.Camera.Target, off)
}
