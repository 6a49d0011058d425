package lighting

import (
	"fmt"

	"gallery/internal/catalog"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind is the type of a light source.
type Kind int

const (
	KindAmbient Kind = iota
	KindDirectional
	KindSpot
)

// Fixed rig slots. The three spots follow the exhibit order (left, center, right).
const (
	Ambient = iota
	Directional
	SpotLeft
	SpotCenter
	SpotRight
	Count
)

// Spot cone defaults.
const (
	SpotAngle    = math32.Pi / 8
	SpotPenumbra = 0.2
	spotHeight   = 10
	spotForward  = 2
)

var (
	directionalPosition = rl.NewVector3(10, 20, 15)
	lightNames          = [Count]string{"ambient", "directional", "spot-left", "spot-center", "spot-right"}
)

// Light is one light source. Position, Target, Angle and Penumbra are fixed at setup;
// Color, Intensity, Visible and CastShadow are what the panel and presets change.
type Light struct {
	Kind       Kind
	Color      rl.Color
	Intensity  float32
	Visible    bool
	CastShadow bool
	Position   rl.Vector3
	Target     rl.Vector3
	Angle      float32
	Penumbra   float32
}

// Direction is the unit vector the light travels along (from Position toward Target).
// Zero for ambient lights.
func (l Light) Direction() rl.Vector3 {
	if l.Kind == KindAmbient {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(rl.Vector3Subtract(l.Target, l.Position))
}

// ShadowPoint projects p away from the light onto the horizontal plane y = planeY and returns
// where its shadow falls. ok is false when the light is ambient, does not cast shadows, or the
// light travels away from the plane.
func (l Light) ShadowPoint(p rl.Vector3, planeY float32) (rl.Vector3, bool) {
	if l.Kind == KindAmbient || !l.CastShadow {
		return rl.Vector3{}, false
	}
	var dir rl.Vector3
	if l.Kind == KindDirectional {
		dir = l.Direction()
	} else {
		dir = rl.Vector3Normalize(rl.Vector3Subtract(p, l.Position))
	}
	if dir.Y >= 0 || p.Y < planeY {
		return rl.Vector3{}, false
	}
	t := (planeY - p.Y) / dir.Y
	return rl.Vector3Add(p, rl.Vector3Scale(dir, t)), true
}

// Name returns the short name of rig slot i ("ambient", "spot-left", ...).
func Name(i int) string {
	if i < 0 || i >= Count {
		return fmt.Sprintf("light(%d)", i)
	}
	return lightNames[i]
}

// ParseLight returns the rig slot for a light name.
func ParseLight(name string) (int, error) {
	for i, n := range lightNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown light %q (use ambient, directional, spot-left, spot-center or spot-right)", name)
}

// Hex converts 0xRRGGBB to an opaque color.
func Hex(v uint32) rl.Color {
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}

// State is everything a preset re-specifies: the five lights and each exhibit's wireframe flag.
// It is a plain value; two states are equal field by field with ==.
type State struct {
	Lights    [Count]Light
	Wireframe [catalog.Size]bool
}

// NewState builds the rig for exhibits at the given positions: ambient and a high directional
// light, plus one spot above and in front of each exhibit aimed at it. The result is the
// default preset.
func NewState(exhibits [catalog.Size]rl.Vector3) State {
	var s State
	s.Lights[Ambient] = Light{Kind: KindAmbient}
	s.Lights[Directional] = Light{
		Kind:       KindDirectional,
		CastShadow: true,
		Position:   directionalPosition,
	}
	for i, p := range exhibits {
		s.Lights[SpotLeft+i] = Light{
			Kind:       KindSpot,
			CastShadow: true,
			Position:   rl.NewVector3(p.X, spotHeight, p.Z+spotForward),
			Target:     p,
			Angle:      SpotAngle,
			Penumbra:   SpotPenumbra,
		}
	}
	return PresetDefault.Apply(s)
}

// SetShadows sets CastShadow on every light that can cast one.
func (s *State) SetShadows(on bool) {
	for i := range s.Lights {
		if s.Lights[i].Kind != KindAmbient {
			s.Lights[i].CastShadow = on
		}
	}
}

// ShadowsEnabled reports whether any light casts shadows.
func (s State) ShadowsEnabled() bool {
	for _, l := range s.Lights {
		if l.CastShadow {
			return true
		}
	}
	return false
}
