package scene

import (
	"path/filepath"

	"gallery/internal/catalog"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Room dimensions in world units.
const (
	FloorSize     = 30
	WallWidth     = 30
	WallHeight    = 10
	WallDepth     = 0.5
	RoomHalf      = FloorSize / 2
	PedestalSize  = 2
	PedestalHigh  = 1
	ExhibitRowZ   = -10
	ExhibitHeight = 2
)

var (
	floorColor    = rl.NewColor(0x80, 0x80, 0x80, 255)
	wallColor     = rl.NewColor(0xff, 0xff, 0xff, 255)
	pedestalColor = rl.NewColor(0x33, 0x33, 0x33, 255)
	exhibitColor  = rl.NewColor(0xff, 0xff, 0xff, 255)
)

// TextureLoader starts loading an image file in the background. Results are picked up by the
// renderer; a failed load simply leaves the material on its base color.
type TextureLoader interface {
	Load(path string)
}

// BuildGallery creates the room: floor, back/left/right walls, then one pedestal and exhibit per
// catalog entry. Exhibit textures are requested from loader (which may be nil) under textureDir.
func BuildGallery(c *catalog.Catalog, textureDir string, loader TextureLoader) *Graph {
	g := NewGraph()

	g.Add(&Node{
		Name:     "floor",
		Kind:     KindFloor,
		Shape:    ShapePlane,
		Size:     rl.NewVector3(FloorSize, 0, FloorSize),
		Material: &Material{Color: floorColor, Roughness: 0.8, Metalness: 0.2, ReceiveShadow: true},
	})

	walls := []struct {
		name string
		pos  rl.Vector3
		rotY float32
	}{
		{"wall-back", rl.NewVector3(0, WallHeight/2, -RoomHalf), 0},
		{"wall-left", rl.NewVector3(-RoomHalf, WallHeight/2, 0), math32.Pi / 2},
		{"wall-right", rl.NewVector3(RoomHalf, WallHeight/2, 0), math32.Pi / 2},
	}
	// One material shared by all walls, as the pedestals share theirs.
	wallMtl := &Material{Color: wallColor, CastShadow: true, ReceiveShadow: true}
	for _, w := range walls {
		g.Add(&Node{
			Name:      w.name,
			Kind:      KindWall,
			Shape:     ShapeBox,
			Size:      rl.NewVector3(WallWidth, WallHeight, WallDepth),
			Transform: Transform{Position: w.pos, Rotation: rl.NewVector3(0, w.rotY, 0)},
			Material:  wallMtl,
		})
	}

	pedestalMtl := &Material{Color: pedestalColor, CastShadow: true, ReceiveShadow: true}
	for _, e := range c.Exhibits {
		g.Add(&Node{
			Name:      "pedestal-" + e.ID,
			Kind:      KindPedestal,
			Shape:     ShapeBox,
			Size:      rl.NewVector3(PedestalSize, PedestalHigh, PedestalSize),
			Transform: Transform{Position: rl.NewVector3(e.X, PedestalHigh/2.0, ExhibitRowZ)},
			Material:  pedestalMtl,
		})

		n := &Node{
			Name:      "exhibit-" + e.ID,
			Kind:      KindExhibit,
			Transform: Transform{Position: rl.NewVector3(e.X, ExhibitHeight, ExhibitRowZ)},
			Material:  &Material{Color: exhibitColor, CastShadow: true},
			Meta: &ExhibitMeta{
				Kind:        ExhibitKind,
				DisplayName: e.Name,
				Description: e.Description,
			},
		}
		if e.Shape == "sphere" {
			n.Shape = ShapeSphere
			n.Size = rl.NewVector3(e.Size, e.Size, e.Size)
		} else {
			n.Shape = ShapeBox
			n.Size = rl.NewVector3(e.Size, e.Size, e.Size)
		}
		if e.Texture != "" {
			n.Material.Texture = filepath.Join(textureDir, e.Texture)
			if loader != nil {
				loader.Load(n.Material.Texture)
			}
		}
		g.Add(n)
	}
	return g
}
