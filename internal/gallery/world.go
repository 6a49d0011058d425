// Package gallery holds the World: the one owned context that every other component reads
// and mutates through, on the frame goroutine only.
package gallery

import (
	"fmt"

	"gallery/internal/catalog"
	"gallery/internal/lighting"
	"gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Observer is called after every change to lights, wireframe or shadow state.
type Observer func(lighting.State)

// World is the scene graph, the light rig and the catalog they were built from.
// Exhibit wireframe flags live on the exhibit materials; State reads them from there.
type World struct {
	Catalog *catalog.Catalog
	Graph   *scene.Graph

	lights    [lighting.Count]lighting.Light
	observers []Observer
}

// New builds the room for c and sets up lighting. loader may be nil.
func New(c *catalog.Catalog, textureDir string, loader scene.TextureLoader) (*World, error) {
	w := &World{
		Catalog: c,
		Graph:   scene.BuildGallery(c, textureDir, loader),
	}
	if n := len(w.Graph.Exhibits()); n != catalog.Size {
		return nil, fmt.Errorf("gallery: built %d exhibits, want %d", n, catalog.Size)
	}
	w.SetupLighting()
	return w, nil
}

// SetupLighting creates the five lights with their defaults, aiming each spot at its exhibit,
// and resets every exhibit to solid.
func (w *World) SetupLighting() {
	var targets [catalog.Size]rl.Vector3
	for i, e := range w.Graph.Exhibits() {
		targets[i] = e.Transform.Position
	}
	w.commit(lighting.NewState(targets))
}

// State returns a copy of the current lights and wireframe flags.
func (w *World) State() lighting.State {
	s := lighting.State{Lights: w.lights}
	for i, e := range w.Graph.Exhibits() {
		s.Wireframe[i] = e.Material.Wireframe
	}
	return s
}

func (w *World) commit(s lighting.State) {
	w.lights = s.Lights
	for i, e := range w.Graph.Exhibits() {
		e.Material.Wireframe = s.Wireframe[i]
	}
	w.notify()
}

func (w *World) notify() {
	s := w.State()
	for _, fn := range w.observers {
		fn(s)
	}
}

// Observe registers fn to run after every state change.
func (w *World) Observe(fn Observer) {
	w.observers = append(w.observers, fn)
}

// ApplyPreset replaces the lighting and wireframe state with the preset's.
// It panics on a value outside the preset enumeration.
func (w *World) ApplyPreset(p lighting.Preset) {
	w.commit(p.Apply(w.State()))
}

// Light returns rig slot i.
func (w *World) Light(i int) lighting.Light {
	return w.lights[i]
}

// Lights returns a copy of the whole rig.
func (w *World) Lights() [lighting.Count]lighting.Light {
	return w.lights
}

// SetLightVisible switches a light on or off. Nothing else about the light changes.
func (w *World) SetLightVisible(i int, on bool) {
	if w.lights[i].Visible == on {
		return
	}
	w.lights[i].Visible = on
	w.notify()
}

func (w *World) SetLightColor(i int, c rl.Color) {
	if w.lights[i].Color == c {
		return
	}
	w.lights[i].Color = c
	w.notify()
}

func (w *World) SetLightIntensity(i int, v float32) {
	if w.lights[i].Intensity == v {
		return
	}
	w.lights[i].Intensity = v
	w.notify()
}

// SetWireframe sets exhibit i (catalog order) to wireframe or solid.
func (w *World) SetWireframe(i int, on bool) {
	m := w.Graph.Exhibits()[i].Material
	if m.Wireframe == on {
		return
	}
	m.Wireframe = on
	w.notify()
}

// SetShadows turns shadow casting on or off for the directional light and the spots.
func (w *World) SetShadows(on bool) {
	s := w.State()
	s.SetShadows(on)
	w.commit(s)
}

// ExhibitIndex returns the catalog position of the exhibit with the given id.
func (w *World) ExhibitIndex(id string) (int, error) {
	for i, e := range w.Catalog.Exhibits {
		if e.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("gallery: unknown exhibit %q", id)
}
