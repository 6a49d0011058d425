package picking

import (
	"testing"

	"gallery/internal/camera"
	"gallery/internal/catalog"
	"gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captions struct {
	shown []string
}

func (c *captions) Show(text string) { c.shown = append(c.shown, text) }

type rig struct {
	ctrl     *Controller
	cam      *rl.Camera3D
	captions *captions
	cursor   []bool
}

func newRig(t *testing.T) *rig {
	t.Helper()
	g := scene.BuildGallery(catalog.Default(), "textures", nil)
	r := &rig{
		cam: &rl.Camera3D{
			Up:   rl.NewVector3(0, 1, 0),
			Fovy: camera.FovY,
		},
		captions: &captions{},
	}
	vp := &camera.Viewport{Width: 800, Height: 600}
	r.ctrl = New(g, vp, r.cam, r.captions, func(on bool) { r.cursor = append(r.cursor, on) })
	return r
}

// lookAt points the camera from eye at target; the screen center then looks straight at it.
func (r *rig) lookAt(eye, target rl.Vector3) {
	r.cam.Position = eye
	r.cam.Target = target
}

func TestClickOnEachExhibitShowsItsCaption(t *testing.T) {
	for _, e := range catalog.Default().Exhibits {
		r := newRig(t)
		r.lookAt(rl.NewVector3(e.X, 2, 5), rl.NewVector3(e.X, 2, -10))

		r.ctrl.OnMove(400, 300)
		require.NotNil(t, r.ctrl.Hovered(), e.ID)
		assert.Equal(t, []bool{true}, r.cursor)

		node, ok := r.ctrl.OnClick()
		require.True(t, ok, e.ID)
		assert.Equal(t, "exhibit-"+e.ID, node.Name)
		assert.Equal(t, []string{e.Name + ": " + e.Description}, r.captions.shown)
	}
}

func TestClickBeforeAnyMoveIsIgnored(t *testing.T) {
	r := newRig(t)
	r.lookAt(rl.NewVector3(0, 2, 5), rl.NewVector3(0, 2, -10))

	assert.False(t, r.ctrl.Armed())
	_, ok := r.ctrl.OnClick()
	assert.False(t, ok)
	assert.Empty(t, r.captions.shown)

	r.ctrl.OnMove(400, 300)
	_, ok = r.ctrl.OnClick()
	assert.True(t, ok)
}

func TestClickUsesLastMovePosition(t *testing.T) {
	r := newRig(t)
	r.lookAt(rl.NewVector3(0, 2, 5), rl.NewVector3(0, 2, -10))

	r.ctrl.OnMove(400, 0) // above the back wall: nothing
	assert.Nil(t, r.ctrl.Hovered())
	assert.Equal(t, []bool{false}, r.cursor)

	_, ok := r.ctrl.OnClick()
	assert.False(t, ok)
	assert.Empty(t, r.captions.shown)
}

func TestSceneryInFrontBlocksExhibit(t *testing.T) {
	r := newRig(t)
	// From behind the back wall: the wall is hit before the brick cube.
	r.lookAt(rl.NewVector3(0, 2, -20), rl.NewVector3(0, 2, 0))

	r.ctrl.OnMove(400, 300)
	assert.Nil(t, r.ctrl.Hovered())
	assert.Equal(t, []bool{false}, r.cursor)

	_, ok := r.ctrl.OnClick()
	assert.False(t, ok)
	assert.Empty(t, r.captions.shown)
}

func TestPedestalIsNotInteractive(t *testing.T) {
	r := newRig(t)
	r.lookAt(rl.NewVector3(0, 0.5, 5), rl.NewVector3(0, 0.5, -10))

	r.ctrl.OnMove(400, 300)
	assert.Nil(t, r.ctrl.Hovered())
	_, ok := r.ctrl.OnClick()
	assert.False(t, ok)
}

func TestLeaveResetsCursorAndKeepsPointer(t *testing.T) {
	r := newRig(t)
	r.lookAt(rl.NewVector3(0, 2, 5), rl.NewVector3(0, 2, -10))

	r.ctrl.OnMove(400, 300)
	require.NotNil(t, r.ctrl.Hovered())

	r.ctrl.Leave()
	assert.Nil(t, r.ctrl.Hovered())
	assert.Equal(t, []bool{true, false}, r.cursor)
	assert.True(t, r.ctrl.Armed())
}
