package primitives

import (
	"gallery/internal/lighting"
	"gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Blob is one soft contact shadow: a dark disc lying on a horizontal surface.
type Blob struct {
	Center rl.Vector3
	Radius float32
	Alpha  uint8
}

const (
	shadowLift     = 0.005
	shadowMaxAlpha = 110
	shadowSlices   = 24
)

// ContactShadows projects every shadow-casting exhibit away from each visible shadow-casting
// light onto the highest shadow-receiving surface below it. Shadows that would land outside
// every receiving surface are dropped.
func ContactShadows(g *scene.Graph, lights [lighting.Count]lighting.Light) []Blob {
	var out []Blob
	for _, n := range g.Exhibits() {
		if n.Material == nil || !n.Material.CastShadow {
			continue
		}
		center := n.Transform.Position
		bottom := n.Bounds().Min.Y
		radius := n.Size.X
		if n.Shape == scene.ShapeBox {
			radius = n.Size.X * 0.6
		}
		for _, l := range lights {
			if !l.Visible || l.Intensity <= 0 {
				continue
			}
			surface, ok := receiverBelow(g, n, bottom, center, l)
			if !ok {
				continue
			}
			a := min(l.Intensity, 1) * shadowMaxAlpha
			out = append(out, Blob{
				Center: rl.NewVector3(surface.X, surface.Y+shadowLift, surface.Z),
				Radius: radius,
				Alpha:  uint8(a),
			})
		}
	}
	return out
}

// receiverBelow finds where the shadow of the point p falls, on the highest receiving surface
// whose top is at or under bottom.
func receiverBelow(g *scene.Graph, caster *scene.Node, bottom float32, p rl.Vector3, l lighting.Light) (rl.Vector3, bool) {
	var best rl.Vector3
	found := false
	for _, n := range g.Nodes() {
		if n == caster || n.Material == nil || !n.Material.ReceiveShadow {
			continue
		}
		b := n.Bounds()
		top := b.Max.Y
		if top > bottom || (found && top <= best.Y) {
			continue
		}
		hit, ok := l.ShadowPoint(p, top)
		if !ok || hit.X < b.Min.X || hit.X > b.Max.X || hit.Z < b.Min.Z || hit.Z > b.Max.Z {
			continue
		}
		best, found = hit, true
	}
	return best, found
}

// DrawShadows draws the blobs as thin translucent discs. Call inside BeginMode3D after the
// receiving surfaces are drawn.
func DrawShadows(blobs []Blob) {
	for _, b := range blobs {
		rl.DrawCylinder(b.Center, b.Radius, b.Radius, 0.001, shadowSlices, rl.NewColor(0, 0, 0, b.Alpha))
	}
}
