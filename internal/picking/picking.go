// Package picking resolves the pointer to the nearest scene node for hover feedback and
// click captions.
package picking

import (
	"gallery/internal/camera"
	"gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene is what picking casts rays into.
type Scene interface {
	Nearest(ray rl.Ray) (scene.Hit, bool)
}

// Captioner displays a transient caption.
type Captioner interface {
	Show(text string)
}

// Controller turns pointer moves and clicks into cursor changes and captions. It reads the
// camera and viewport it is given but never changes them.
//
// A click is only honored after at least one move: until then there is no pointer position
// to cast from.
type Controller struct {
	scene    Scene
	viewport *camera.Viewport
	camera   *rl.Camera3D
	caption  Captioner
	cursor   func(interactive bool)

	pointer rl.Vector2
	armed   bool
	hovered *scene.Node
}

// New returns a controller. cursor may be nil.
func New(s Scene, v *camera.Viewport, cam *rl.Camera3D, caption Captioner, cursor func(interactive bool)) *Controller {
	if cursor == nil {
		cursor = func(bool) {}
	}
	return &Controller{scene: s, viewport: v, camera: cam, caption: caption, cursor: cursor}
}

func (c *Controller) pick() (scene.Hit, bool) {
	ndc := c.viewport.NDC(c.pointer.X, c.pointer.Y)
	return c.scene.Nearest(camera.Ray(*c.camera, ndc, c.viewport.Aspect()))
}

// OnMove records the pointer position (pixels from the top-left) and updates the cursor:
// interactive over an exhibit, default anywhere else.
func (c *Controller) OnMove(x, y float32) {
	c.pointer = rl.NewVector2(x, y)
	c.armed = true
	c.hovered = nil
	if hit, ok := c.pick(); ok && hit.Node.IsExhibit() {
		c.hovered = hit.Node
	}
	c.cursor(c.hovered != nil)
}

// Leave drops the hover state when the pointer moves off the scene (onto the control panel).
// The last position is kept, so clicks stay armed.
func (c *Controller) Leave() {
	c.hovered = nil
	c.cursor(false)
}

// OnClick casts from the last recorded pointer position. If the nearest hit is an exhibit its
// caption is shown and the exhibit returned. Scenery in front of an exhibit blocks it.
func (c *Controller) OnClick() (*scene.Node, bool) {
	if !c.armed {
		return nil, false
	}
	hit, ok := c.pick()
	if !ok || !hit.Node.IsExhibit() {
		return nil, false
	}
	c.caption.Show(hit.Node.Meta.Caption())
	return hit.Node, true
}

// Hovered is the exhibit under the pointer at the last move, or nil.
func (c *Controller) Hovered() *scene.Node { return c.hovered }

// Armed reports whether a move has been seen.
func (c *Controller) Armed() bool { return c.armed }
