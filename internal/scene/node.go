package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind says what role a node plays in the room.
type Kind int

const (
	KindFloor Kind = iota
	KindWall
	KindPedestal
	KindExhibit
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindPedestal:
		return "pedestal"
	case KindExhibit:
		return "exhibit"
	}
	return "unknown"
}

// Shape selects the mesh a node is drawn and hit-tested with.
// Size is interpreted per shape: Box uses (width, height, depth), Plane uses (width, 0, length)
// on the XZ plane, Sphere uses Size.X as the radius.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeSphere
)

// ExhibitKind is the metadata kind that marks a node as a clickable exhibit.
const ExhibitKind = "exhibit"

// ExhibitMeta is the identity attached to exhibit nodes.
type ExhibitMeta struct {
	Kind        string
	DisplayName string
	Description string
}

// Caption is "{DisplayName}: {Description}".
func (m ExhibitMeta) Caption() string {
	return m.DisplayName + ": " + m.Description
}

// Transform is a node's local placement. Rotation is Euler XYZ in radians.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// Matrix returns scale, then rotation, then translation.
func (t Transform) Matrix() rl.Matrix {
	s := t.Scale
	if s.X == 0 && s.Y == 0 && s.Z == 0 {
		s = rl.NewVector3(1, 1, 1)
	}
	m := rl.MatrixScale(s.X, s.Y, s.Z)
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(t.Rotation))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
}

// Material is the surface description the renderer draws with.
// Texture is a file path requested at build time; until (unless) it loads, Color is used alone.
type Material struct {
	Color         rl.Color
	Roughness     float32
	Metalness     float32
	Texture       string
	Wireframe     bool
	CastShadow    bool
	ReceiveShadow bool
}

// Node is one renderable, ray-testable entity in the gallery.
type Node struct {
	Name      string
	Kind      Kind
	Shape     Shape
	Size      rl.Vector3
	Transform Transform
	Material  *Material
	Meta      *ExhibitMeta
}

// IsExhibit reports whether the node carries exhibit metadata.
func (n *Node) IsExhibit() bool {
	return n != nil && n.Meta != nil && n.Meta.Kind == ExhibitKind
}

// Radius is the world-space radius of a sphere node (largest scale axis).
func (n *Node) Radius() float32 {
	s := n.Transform.Scale
	k := max(s.X, s.Y, s.Z)
	if k == 0 {
		k = 1
	}
	return n.Size.X * k
}

// Bounds returns the world-space axis-aligned box around the node, after rotation.
// Planes get a thin slab just under their surface so rays from above still register a hit.
func (n *Node) Bounds() rl.BoundingBox {
	half := rl.Vector3Scale(n.Size, 0.5)
	switch n.Shape {
	case ShapeSphere:
		r := n.Radius()
		p := n.Transform.Position
		return rl.NewBoundingBox(rl.NewVector3(p.X-r, p.Y-r, p.Z-r), rl.NewVector3(p.X+r, p.Y+r, p.Z+r))
	case ShapePlane:
		half.Y = planeThickness
	}
	m := n.Transform.Matrix()
	box := rl.BoundingBox{
		Min: rl.NewVector3(maxFloat, maxFloat, maxFloat),
		Max: rl.NewVector3(-maxFloat, -maxFloat, -maxFloat),
	}
	for i := 0; i < 8; i++ {
		c := rl.NewVector3(half.X, half.Y, half.Z)
		if i&1 != 0 {
			c.X = -c.X
		}
		if i&2 != 0 {
			c.Y = -c.Y
		}
		if i&4 != 0 {
			c.Z = -c.Z
		}
		if n.Shape == ShapePlane && c.Y > 0 {
			c.Y = 0
		}
		w := rl.Vector3Transform(c, m)
		box.Min = rl.Vector3Min(box.Min, w)
		box.Max = rl.Vector3Max(box.Max, w)
	}
	return box
}

const (
	planeThickness = 0.01
	maxFloat       = 3.4e38
)
