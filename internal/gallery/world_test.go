package gallery

import (
	"testing"

	"gallery/internal/catalog"
	"gallery/internal/lighting"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(catalog.Default(), "textures", nil)
	require.NoError(t, err)
	return w
}

func TestFreshWorldIsDefaultPreset(t *testing.T) {
	w := newWorld(t)
	s := w.State()
	for i, l := range s.Lights {
		assert.True(t, l.Visible, lighting.Name(i))
		c, v := lighting.Baseline(i)
		assert.Equal(t, c, l.Color, lighting.Name(i))
		assert.Equal(t, v, l.Intensity, lighting.Name(i))
	}
	assert.Equal(t, [catalog.Size]bool{}, s.Wireframe)

	// Spots aim at their exhibits.
	for i, e := range w.Graph.Exhibits() {
		assert.Equal(t, e.Transform.Position, w.Light(lighting.SpotLeft+i).Target)
	}
}

func TestDramaticThenDefaultScenario(t *testing.T) {
	w := newWorld(t)
	fresh := w.State()

	w.ApplyPreset(lighting.PresetDramatic)
	s := w.State()
	assert.Equal(t, rl.NewColor(255, 0, 0, 255), s.Lights[lighting.SpotLeft].Color)
	assert.Equal(t, rl.NewColor(0, 255, 0, 255), s.Lights[lighting.SpotCenter].Color)
	assert.Equal(t, rl.NewColor(0, 0, 255, 255), s.Lights[lighting.SpotRight].Color)
	for i := lighting.SpotLeft; i <= lighting.SpotRight; i++ {
		assert.Equal(t, float32(2), s.Lights[i].Intensity)
	}
	assert.Equal(t, float32(0.1), s.Lights[lighting.Ambient].Intensity)
	assert.False(t, s.Lights[lighting.Directional].Visible)

	w.ApplyPreset(lighting.PresetDefault)
	assert.Equal(t, fresh, w.State())
}

func TestApplyPresetTwiceIsIdempotent(t *testing.T) {
	for _, p := range lighting.Presets() {
		w := newWorld(t)
		w.SetLightColor(lighting.Ambient, rl.NewColor(1, 2, 3, 255))
		w.SetWireframe(1, true)

		w.ApplyPreset(p)
		once := w.State()
		w.ApplyPreset(p)
		assert.Equal(t, once, w.State(), p.String())
	}
}

func TestWireframePresetWritesMaterials(t *testing.T) {
	w := newWorld(t)
	w.ApplyPreset(lighting.PresetWireframeAll)
	for _, e := range w.Graph.Exhibits() {
		assert.True(t, e.Material.Wireframe, e.Name)
	}
	// Scenery is never wireframed.
	assert.False(t, w.Graph.Find("wall-back").Material.Wireframe)

	w.ApplyPreset(lighting.PresetSpotlightsOnly)
	for _, e := range w.Graph.Exhibits() {
		assert.False(t, e.Material.Wireframe, e.Name)
	}
}

func TestVisibilityToggleKeepsColorAndIntensity(t *testing.T) {
	w := newWorld(t)
	w.SetLightColor(lighting.Directional, rl.NewColor(10, 20, 30, 255))
	w.SetLightIntensity(lighting.Directional, 1.7)
	before := w.State()

	w.SetLightVisible(lighting.Directional, false)
	mid := w.State()
	assert.False(t, mid.Lights[lighting.Directional].Visible)
	mid.Lights[lighting.Directional].Visible = true
	assert.Equal(t, before, mid, "only the visibility flag may change")

	w.SetLightVisible(lighting.Directional, true)
	assert.Equal(t, before, w.State())
}

func TestObserversSeeEveryChange(t *testing.T) {
	w := newWorld(t)
	var seen []lighting.State
	w.Observe(func(s lighting.State) { seen = append(seen, s) })

	w.ApplyPreset(lighting.PresetAmbientOnly)
	w.SetWireframe(0, true)
	w.SetWireframe(0, true) // no change, no call
	w.SetShadows(false)

	require.Len(t, seen, 3)
	assert.False(t, seen[0].Lights[lighting.Directional].Visible)
	assert.True(t, seen[1].Wireframe[0])
	assert.False(t, seen[2].ShadowsEnabled())
	assert.Equal(t, w.State(), seen[2])
}

func TestShadowsSurvivePresets(t *testing.T) {
	w := newWorld(t)
	w.SetShadows(false)
	w.ApplyPreset(lighting.PresetDefault)
	assert.False(t, w.State().ShadowsEnabled())

	w.SetShadows(true)
	for i := lighting.Directional; i < lighting.Count; i++ {
		assert.True(t, w.Light(i).CastShadow, lighting.Name(i))
	}
}

func TestExhibitIndex(t *testing.T) {
	w := newWorld(t)
	i, err := w.ExhibitIndex("ball")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = w.ExhibitIndex("cone")
	assert.Error(t, err)
}
