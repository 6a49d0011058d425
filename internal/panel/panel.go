// Package panel is the lighting control panel: folders of widgets bound to the gallery World.
// A widget change is written straight into the world; every widget is re-read from the world
// after any change the world reports.
package panel

import (
	"fmt"

	"gallery/internal/gallery"
	"gallery/internal/lighting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WidgetKind selects how a widget is drawn and what value it holds.
type WidgetKind int

const (
	Toggle WidgetKind = iota
	Slider
	ColorPicker
	Button
)

// Widget is one control. Only the value field matching Kind is used.
type Widget struct {
	Kind  WidgetKind
	Label string

	Checked  bool
	Value    float32
	Min, Max float32
	Color    rl.Color

	pull func(lighting.State)
	push func()
}

// SetChecked changes a toggle as if the user clicked it.
func (w *Widget) SetChecked(on bool) {
	w.Checked = on
	w.push()
}

// SetValue changes a slider, clamped to its range.
func (w *Widget) SetValue(v float32) {
	w.Value = rl.Clamp(v, w.Min, w.Max)
	w.push()
}

// SetColor changes a color picker as if the user picked c.
func (w *Widget) SetColor(c rl.Color) {
	w.Color = c
	w.push()
}

// Press fires a button.
func (w *Widget) Press() {
	w.push()
}

// Folder is a titled group of widgets.
type Folder struct {
	Title   string
	Widgets []*Widget
	Open    bool
}

// Panel holds the folders and the world they are bound to.
type Panel struct {
	Folders []*Folder
	Visible bool

	world  *gallery.World
	bounds rl.Rectangle
	rows   []row
}

// Folder titles.
const (
	AmbientFolder     = "환경광 (Ambient Light)"
	DirectionalFolder = "직사광 (Directional Light)"
	SpotFolder        = "스팟라이트"
	WireframeFolder   = "와이어프레임 모드"
	ShadowFolder      = "그림자 설정"
	PresetFolder      = "조명 프리셋"
)

var spotLabels = [...]string{"좌측 조명 활성화", "중앙 조명 활성화", "우측 조명 활성화"}

// New binds a panel to w and subscribes it to the world's changes.
func New(w *gallery.World) *Panel {
	p := &Panel{world: w, Visible: true}
	p.Folders = []*Folder{
		p.lightFolder(AmbientFolder, lighting.Ambient, 1),
		p.lightFolder(DirectionalFolder, lighting.Directional, 2),
		p.spotFolder(),
		p.wireframeFolder(),
		p.shadowFolder(),
		p.presetFolder(),
	}
	w.Observe(p.Sync)
	p.Sync(w.State())
	return p
}

func (p *Panel) lightFolder(title string, light int, maxIntensity float32) *Folder {
	w := p.world
	on := &Widget{Kind: Toggle, Label: "활성화"}
	on.pull = func(s lighting.State) { on.Checked = s.Lights[light].Visible }
	on.push = func() { w.SetLightVisible(light, on.Checked) }

	color := &Widget{Kind: ColorPicker, Label: "색상"}
	color.pull = func(s lighting.State) { color.Color = s.Lights[light].Color }
	color.push = func() { w.SetLightColor(light, color.Color) }

	intensity := &Widget{Kind: Slider, Label: "강도", Min: 0, Max: maxIntensity}
	intensity.pull = func(s lighting.State) { intensity.Value = s.Lights[light].Intensity }
	intensity.push = func() { w.SetLightIntensity(light, intensity.Value) }

	return &Folder{Title: title, Open: true, Widgets: []*Widget{on, color, intensity}}
}

func (p *Panel) spotFolder() *Folder {
	f := &Folder{Title: SpotFolder, Open: true}
	for i, label := range spotLabels {
		light := lighting.SpotLeft + i
		x := &Widget{Kind: Toggle, Label: label}
		x.pull = func(s lighting.State) { x.Checked = s.Lights[light].Visible }
		x.push = func() { p.world.SetLightVisible(light, x.Checked) }
		f.Widgets = append(f.Widgets, x)
	}
	return f
}

func (p *Panel) wireframeFolder() *Folder {
	f := &Folder{Title: WireframeFolder, Open: true}
	for i, e := range p.world.Catalog.Exhibits {
		x := &Widget{Kind: Toggle, Label: fmt.Sprintf("%s 와이어프레임 (%s)", e.Name, e.ID)}
		x.pull = func(s lighting.State) { x.Checked = s.Wireframe[i] }
		x.push = func() { p.world.SetWireframe(i, x.Checked) }
		f.Widgets = append(f.Widgets, x)
	}
	return f
}

func (p *Panel) shadowFolder() *Folder {
	x := &Widget{Kind: Toggle, Label: "그림자 활성화"}
	x.pull = func(s lighting.State) { x.Checked = s.ShadowsEnabled() }
	x.push = func() { p.world.SetShadows(x.Checked) }
	return &Folder{Title: ShadowFolder, Open: true, Widgets: []*Widget{x}}
}

func (p *Panel) presetFolder() *Folder {
	f := &Folder{Title: PresetFolder, Open: true}
	for _, preset := range lighting.Presets() {
		f.Widgets = append(f.Widgets, &Widget{
			Kind:  Button,
			Label: preset.Label(),
			pull:  func(lighting.State) {},
			push:  func() { p.world.ApplyPreset(preset) },
		})
	}
	return f
}

// Folder returns the folder with the given title, or nil.
func (p *Panel) Folder(title string) *Folder {
	for _, f := range p.Folders {
		if f.Title == title {
			return f
		}
	}
	return nil
}

// Texts returns every folder title and widget label, for building the font's glyph set.
func (p *Panel) Texts() []string {
	var out []string
	for _, f := range p.Folders {
		out = append(out, f.Title)
		for _, x := range f.Widgets {
			out = append(out, x.Label)
		}
	}
	return out
}

// Sync re-reads every widget's displayed value from s.
func (p *Panel) Sync(s lighting.State) {
	for _, f := range p.Folders {
		for _, x := range f.Widgets {
			x.pull(s)
		}
	}
}
