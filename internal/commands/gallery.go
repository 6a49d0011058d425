package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"gallery/internal/gallery"
	"gallery/internal/lighting"
	"gallery/internal/logger"
	"gallery/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD is the part of the debug overlay the console can switch.
type HUD interface {
	SetShowFPS(show bool)
	SetShowMemAlloc(show bool)
}

var errOnOff = errors.New("pass exactly one of --on or --off")

// onOff registers --on and --off on fs and returns a function reading the choice after Parse.
func onOff(fs *flag.FlagSet, on, off string) func() (bool, error) {
	a := fs.Bool(on, false, "switch on")
	b := fs.Bool(off, false, "switch off")
	return func() (bool, error) {
		if *a == *b {
			return false, errOnOff
		}
		return *a, nil
	}
}

// RegisterGallery adds the gallery console commands: preset, wireframe, light, shadows, fps.
// Successful commands log what they changed to log. hud may be nil.
func RegisterGallery(r *Registry, w *gallery.World, hud HUD, log *logger.Logger) {
	r.Register("preset", "preset <name>", NewFlagSet("preset"), func(args []string) error {
		if len(args) != 1 {
			names := make([]string, 0, len(lighting.Presets()))
			for _, p := range lighting.Presets() {
				names = append(names, p.String())
			}
			return fmt.Errorf("preset: want one name (%s)", strings.Join(names, ", "))
		}
		p, err := lighting.ParsePreset(args[0])
		if err != nil {
			return err
		}
		w.ApplyPreset(p)
		log.Logf("preset %s applied", p)
		return nil
	})

	wfs := NewFlagSet("wireframe")
	wireOn := onOff(wfs, "on", "off")
	r.Register("wireframe", "wireframe <exhibit> --on|--off", wfs, func(args []string) error {
		if len(args) != 1 {
			return errors.New("wireframe: want one exhibit id")
		}
		on, err := wireOn()
		if err != nil {
			return fmt.Errorf("wireframe: %w", err)
		}
		i, err := w.ExhibitIndex(args[0])
		if err != nil {
			return err
		}
		w.SetWireframe(i, on)
		log.Logf("wireframe %s: %t", args[0], on)
		return nil
	})

	lfs := NewFlagSet("light")
	lightOn := lfs.Bool("on", false, "show the light")
	lightOff := lfs.Bool("off", false, "hide the light")
	intensity := lfs.Float64("intensity", -1, "new intensity")
	color := lfs.String("color", "", "new color (#rrggbb)")
	r.Register("light", "light <name> [--on|--off] [--intensity=N] [--color=#rrggbb]", lfs, func(args []string) error {
		if len(args) != 1 {
			return errors.New("light: want one light name")
		}
		i, err := lighting.ParseLight(args[0])
		if err != nil {
			return err
		}
		if *lightOn && *lightOff {
			return fmt.Errorf("light: %w", errOnOff)
		}
		var c *rl.Color
		if *color != "" {
			parsed, ok := ui.ParseColor(*color)
			if !ok {
				return fmt.Errorf("light: bad color %q", *color)
			}
			c = &parsed
		}
		switch {
		case *lightOn:
			w.SetLightVisible(i, true)
		case *lightOff:
			w.SetLightVisible(i, false)
		}
		if *intensity >= 0 {
			w.SetLightIntensity(i, float32(*intensity))
		}
		if c != nil {
			w.SetLightColor(i, *c)
		}
		l := w.Light(i)
		log.Logf("%s: visible=%t intensity=%.2f color=#%02x%02x%02x", lighting.Name(i), l.Visible, l.Intensity, l.Color.R, l.Color.G, l.Color.B)
		return nil
	})

	sfs := NewFlagSet("shadows")
	shadowsOn := onOff(sfs, "on", "off")
	r.Register("shadows", "shadows --on|--off", sfs, func([]string) error {
		on, err := shadowsOn()
		if err != nil {
			return fmt.Errorf("shadows: %w", err)
		}
		w.SetShadows(on)
		log.Logf("shadows: %t", on)
		return nil
	})

	ffs := NewFlagSet("fps")
	show := onOff(ffs, "show", "hide")
	mem := ffs.Bool("mem", false, "also switch the memory counter")
	r.Register("fps", "fps --show|--hide [--mem]", ffs, func([]string) error {
		on, err := show()
		if err != nil {
			return fmt.Errorf("fps: pass exactly one of --show or --hide")
		}
		if hud == nil {
			return errors.New("fps: no debug overlay")
		}
		hud.SetShowFPS(on)
		if *mem {
			hud.SetShowMemAlloc(on)
		}
		return nil
	})
}
