package commands

import (
	"testing"

	"gallery/internal/catalog"
	"gallery/internal/gallery"
	"gallery/internal/lighting"
	"gallery/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHUD struct{ fps, mem bool }

func (h *fakeHUD) SetShowFPS(show bool)      { h.fps = show }
func (h *fakeHUD) SetShowMemAlloc(show bool) { h.mem = show }

func setup(t *testing.T) (*Registry, *gallery.World, *fakeHUD, *logger.Logger) {
	t.Helper()
	w, err := gallery.New(catalog.Default(), "textures", nil)
	require.NoError(t, err)
	r := NewRegistry()
	hud := &fakeHUD{}
	log := logger.NewAt("")
	RegisterGallery(r, w, hud, log)
	return r, w, hud, log
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd preset  dramatic ")
	assert.True(t, ok)
	assert.Equal(t, []string{"preset", "dramatic"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello")
	assert.False(t, ok)
	_, ok = Parse("CMD preset")
	assert.False(t, ok)
}

func TestRegistryErrors(t *testing.T) {
	r, _, _, _ := setup(t)
	assert.Equal(t, []string{"fps", "light", "preset", "shadows", "wireframe"}, r.Names())
	assert.Contains(t, r.Usage(), "cmd shadows --on|--off")

	assert.ErrorContains(t, r.Execute(nil), "missing subcommand")
	assert.ErrorContains(t, run(t, r, "cmd teleport"), "unknown command: teleport")
	assert.ErrorContains(t, run(t, r, "cmd shadows --loud"), "usage: cmd shadows")
}

func TestPresetCommand(t *testing.T) {
	r, w, _, log := setup(t)

	require.NoError(t, run(t, r, "cmd preset dramatic"))
	assert.Equal(t, float32(0.1), w.Light(lighting.Ambient).Intensity)
	assert.Len(t, log.Lines(), 1)

	require.NoError(t, run(t, r, "cmd preset default"))
	assert.Equal(t, float32(0.5), w.Light(lighting.Ambient).Intensity)

	assert.ErrorContains(t, run(t, r, "cmd preset disco"), "unknown preset")
	assert.ErrorContains(t, run(t, r, "cmd preset"), "want one name")
}

func TestWireframeCommand(t *testing.T) {
	r, w, _, _ := setup(t)

	require.NoError(t, run(t, r, "cmd wireframe brick --on"))
	assert.Equal(t, [catalog.Size]bool{false, true, false}, w.State().Wireframe)

	// --on from the previous run must not leak into this one.
	assert.ErrorContains(t, run(t, r, "cmd wireframe brick"), "exactly one of --on or --off")

	require.NoError(t, run(t, r, "cmd wireframe --off brick"))
	assert.Equal(t, [catalog.Size]bool{}, w.State().Wireframe)

	assert.Error(t, run(t, r, "cmd wireframe statue --on"))
	assert.ErrorContains(t, run(t, r, "cmd wireframe brick --on --off"), "exactly one")
}

func TestLightCommand(t *testing.T) {
	r, w, _, _ := setup(t)

	require.NoError(t, run(t, r, "cmd light spot-left --off"))
	assert.False(t, w.Light(lighting.SpotLeft).Visible)
	assert.Equal(t, float32(1), w.Light(lighting.SpotLeft).Intensity, "hiding keeps intensity")

	require.NoError(t, run(t, r, "cmd light directional --intensity=1.5 --color=#ff8000"))
	d := w.Light(lighting.Directional)
	assert.Equal(t, float32(1.5), d.Intensity)
	assert.Equal(t, rl.NewColor(0xff, 0x80, 0x00, 0xff), d.Color)
	assert.True(t, d.Visible)

	require.NoError(t, run(t, r, "cmd light spot-left --on"))
	assert.True(t, w.Light(lighting.SpotLeft).Visible)

	assert.Error(t, run(t, r, "cmd light sun --on"))
	assert.ErrorContains(t, run(t, r, "cmd light ambient --color=blue-ish"), "bad color")
}

func TestShadowsAndFPSCommands(t *testing.T) {
	r, w, hud, _ := setup(t)

	require.NoError(t, run(t, r, "cmd shadows --off"))
	assert.False(t, w.State().ShadowsEnabled())
	require.NoError(t, run(t, r, "cmd shadows --on"))
	assert.True(t, w.State().ShadowsEnabled())

	require.NoError(t, run(t, r, "cmd fps --show"))
	assert.True(t, hud.fps)
	assert.False(t, hud.mem)
	require.NoError(t, run(t, r, "cmd fps --show --mem"))
	assert.True(t, hud.mem)
	require.NoError(t, run(t, r, "cmd fps --hide"))
	assert.False(t, hud.fps)
	assert.True(t, hud.mem, "--mem not passed")
	assert.Error(t, run(t, r, "cmd fps"))
}
