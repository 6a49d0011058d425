package camera

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestViewportResize(t *testing.T) {
	v := Viewport{Width: 1280, Height: 720}
	assert.InDelta(t, 16.0/9.0, v.Aspect(), 1e-6)

	assert.True(t, v.Resize(800, 600))
	assert.Equal(t, Viewport{Width: 800, Height: 600}, v)
	assert.InDelta(t, 800.0/600.0, v.Aspect(), 1e-6)
	assert.False(t, v.Resize(800, 600))

	v.Resize(0, 0)
	assert.Equal(t, float32(1), v.Aspect())
}

func TestNDC(t *testing.T) {
	v := Viewport{Width: 800, Height: 600}
	tests := []struct {
		x, y float32
		want rl.Vector2
	}{
		{0, 0, rl.NewVector2(-1, 1)},
		{800, 600, rl.NewVector2(1, -1)},
		{400, 300, rl.NewVector2(0, 0)},
		{200, 450, rl.NewVector2(-0.5, -0.5)},
	}
	for _, tt := range tests {
		got := v.NDC(tt.x, tt.y)
		assert.InDelta(t, tt.want.X, got.X, 1e-6)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
	}
	assert.Equal(t, rl.Vector2{}, Viewport{}.NDC(10, 10))
}

func TestRayThroughCenterFollowsViewDirection(t *testing.T) {
	o := NewOrbit(rl.NewVector3(0, 5, 10), rl.Vector3{})
	r := Ray(o.Camera, rl.Vector2{}, 16.0/9.0)

	want := rl.Vector3Normalize(rl.NewVector3(0, -5, -10))
	assert.InDelta(t, want.X, r.Direction.X, 1e-4)
	assert.InDelta(t, want.Y, r.Direction.Y, 1e-4)
	assert.InDelta(t, want.Z, r.Direction.Z, 1e-4)
	assert.InDelta(t, 5, r.Position.Y, 1e-4)
}

func TestRayEdgesSpanFieldOfView(t *testing.T) {
	cam := rl.Camera3D{
		Position: rl.NewVector3(0, 0, 10),
		Up:       rl.NewVector3(0, 1, 0),
		Fovy:     FovY,
	}
	top := Ray(cam, rl.NewVector2(0, 1), 1)
	half := math32.Atan2(top.Direction.Y, -top.Direction.Z)
	assert.InDelta(t, FovY/2*rl.Deg2rad, half, 1e-3)

	right := Ray(cam, rl.NewVector2(1, 0), 2)
	assert.Greater(t, right.Direction.X, top.Direction.Y, "a wider aspect spreads x further")
}

func TestOrbitStartsWherePlaced(t *testing.T) {
	o := NewOrbit(rl.NewVector3(0, 5, 10), rl.Vector3{})
	p := o.Camera.Position
	assert.InDelta(t, 0, p.X, 1e-4)
	assert.InDelta(t, 5, p.Y, 1e-4)
	assert.InDelta(t, 10, p.Z, 1e-4)
	assert.InDelta(t, math32.Sqrt(125), o.Distance(), 1e-4)
	assert.Equal(t, float32(75), o.Camera.Fovy)
}

func TestOrbitDampingEasesOut(t *testing.T) {
	o := NewOrbit(rl.NewVector3(0, 5, 10), rl.Vector3{})
	o.Rotate(100, 0, Viewport{Width: 800, Height: 600})

	o.Update()
	first := o.Camera.Position
	assert.Less(t, first.X, float32(0), "dragging right swings the camera left")

	o.Update()
	second := o.Camera.Position
	step1 := -first.X
	step2 := first.X - second.X
	assert.Greater(t, step2, float32(0))
	assert.Less(t, step2, step1)
	assert.InDelta(t, math32.Sqrt(125), o.Distance(), 1e-3)
}

func TestOrbitLimits(t *testing.T) {
	o := NewOrbit(rl.NewVector3(0, 5, 10), rl.Vector3{})
	o.Damping = 0

	// Drag far down: the camera may not go below the floor plane.
	o.Rotate(0, -10000, Viewport{Width: 800, Height: 600})
	o.Update()
	assert.InDelta(t, math32.Pi/2, o.Polar(), 1e-5)
	assert.GreaterOrEqual(t, o.Camera.Position.Y, float32(-1e-3))

	o.Zoom(1000)
	o.Update()
	assert.Equal(t, float32(1), o.Distance())

	o.Zoom(-1000)
	o.Update()
	assert.Equal(t, float32(20), o.Distance())
}
