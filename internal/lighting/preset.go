package lighting

import (
	"fmt"
	"strings"

	"gallery/internal/catalog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Preset is a named lighting setup. The set of presets is closed.
type Preset int

const (
	PresetDefault Preset = iota
	PresetAmbientOnly
	PresetSpotlightsOnly
	PresetDramatic
	PresetWireframeAll
	presetCount
)

var presetNames = [presetCount]string{
	"default",
	"ambient-only",
	"spotlights-only",
	"dramatic",
	"wireframe-all",
}

var presetLabels = [presetCount]string{
	"기본 설정",
	"환경광만",
	"스팟라이트만",
	"드라마틱 조명",
	"전체 와이어프레임",
}

// Presets lists every preset in panel order.
func Presets() []Preset {
	out := make([]Preset, presetCount)
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

func (p Preset) valid() bool { return p >= 0 && p < presetCount }

func (p Preset) String() string {
	if !p.valid() {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// Label is the panel button text.
func (p Preset) Label() string {
	if !p.valid() {
		return p.String()
	}
	return presetLabels[p]
}

// ParsePreset looks a preset up by name ("dramatic") or label ("드라마틱 조명").
func ParsePreset(name string) (Preset, error) {
	name = strings.TrimSpace(name)
	for i := range presetNames {
		if strings.EqualFold(presetNames[i], name) || presetLabels[i] == name {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q (use %s)", name, strings.Join(presetNames[:], ", "))
}

// setting is the part of a light a preset controls.
type setting struct {
	visible   bool
	color     rl.Color
	intensity float32
}

var (
	white = Hex(0xffffff)

	baseline = [Count]setting{
		Ambient:     {true, Hex(0x404040), 0.5},
		Directional: {true, white, 0.8},
		SpotLeft:    {true, white, 1},
		SpotCenter:  {true, white, 1},
		SpotRight:   {true, white, 1},
	}
)

// Baseline returns the default color and intensity of rig slot i.
func Baseline(i int) (rl.Color, float32) {
	return baseline[i].color, baseline[i].intensity
}

func (p Preset) settings() ([Count]setting, [catalog.Size]bool) {
	set := baseline
	var wire [catalog.Size]bool
	switch p {
	case PresetDefault:
	case PresetAmbientOnly:
		set[Ambient].intensity = 0.8
		for i := Directional; i < Count; i++ {
			set[i].visible = false
		}
	case PresetSpotlightsOnly:
		set[Ambient].visible = false
		set[Directional].visible = false
		for i := SpotLeft; i <= SpotRight; i++ {
			set[i].intensity = 1.5
		}
	case PresetDramatic:
		set[Ambient].intensity = 0.1
		set[Directional].visible = false
		set[SpotLeft].color = Hex(0xff0000)
		set[SpotCenter].color = Hex(0x00ff00)
		set[SpotRight].color = Hex(0x0000ff)
		for i := SpotLeft; i <= SpotRight; i++ {
			set[i].intensity = 2
		}
	case PresetWireframeAll:
		set[Ambient].intensity = 1
		set[Directional].intensity = 0.5
		for i := SpotLeft; i <= SpotRight; i++ {
			set[i].visible = false
		}
		for i := range wire {
			wire[i] = true
		}
	default:
		panic(fmt.Sprintf("lighting: unknown preset %d", int(p)))
	}
	return set, wire
}

// Apply returns s with every light's visibility, color and intensity and every exhibit's
// wireframe flag set by the preset. Geometry and shadow flags pass through. Nothing set by a
// previous preset survives, so Apply(Apply(s)) == Apply(s).
//
// Apply panics if p is not one of the defined presets.
func (p Preset) Apply(s State) State {
	set, wire := p.settings()
	for i := range s.Lights {
		s.Lights[i].Visible = set[i].visible
		s.Lights[i].Color = set[i].color
		s.Lights[i].Intensity = set[i].intensity
	}
	s.Wireframe = wire
	return s
}
