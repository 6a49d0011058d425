package main

import (
	"fmt"
	"os"
	"time"

	"gallery/internal/camera"
	"gallery/internal/catalog"
	"gallery/internal/commands"
	"gallery/internal/config"
	"gallery/internal/debug"
	"gallery/internal/fonts"
	"gallery/internal/gallery"
	"gallery/internal/graphics"
	"gallery/internal/logger"
	"gallery/internal/panel"
	"gallery/internal/picking"
	"gallery/internal/primitives"
	"gallery/internal/scene"
	"gallery/internal/terminal"
	"gallery/internal/texture"
	"gallery/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 32

var (
	cameraStart  = rl.NewVector3(0, 5, 10)
	cameraTarget = rl.NewVector3(0, 0, 0)
	background   = rl.NewColor(0x22, 0x22, 0x22, 255)
)

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, "gallery:", err)
		os.Exit(1)
	}
}

func loadPrefs(log *logger.Logger) (config.Prefs, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Logf("config: .env: %v", err)
	}
	prefs, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Logf("%v (using defaults)", err)
	}
	return config.ApplyEnv(prefs, os.LookupEnv)
}

func setCursor(interactive bool) {
	if interactive {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)
}

// selection describes the hovered exhibit for the inspector.
func selection(n *scene.Node) ui.Selection {
	if n == nil {
		return ui.Selection{}
	}
	sel := ui.Selection{
		Node:     n.Name,
		Position: [3]float32{n.Transform.Position.X, n.Transform.Position.Y, n.Transform.Position.Z},
	}
	if n.Meta != nil {
		sel.Caption = n.Meta.Caption()
	}
	if n.Material != nil {
		sel.Texture = n.Material.Texture
		sel.Wireframe = n.Material.Wireframe
	}
	return sel
}

func run(log *logger.Logger) error {
	prefs, err := loadPrefs(log)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(prefs.Catalog)
	if err != nil {
		return err
	}

	loader := texture.NewLoader(log)
	world, err := gallery.New(cat, prefs.TextureDir, loader)
	if err != nil {
		return err
	}

	overlay := ui.New()
	if err := overlay.LoadCSS(prefs.Stylesheet); err != nil {
		return err
	}
	base := ui.DefaultNodes(cat.Title)
	overlay.SetNodes(base)
	caption, loading, err := ui.Bind(overlay, cat.Title)
	if err != nil {
		return err
	}
	inspector := ui.NewInspector()

	controls := panel.New(world)
	hud := debug.New()
	hud.SetShowFPS(prefs.ShowFPS)
	hud.SetShowMemAlloc(prefs.ShowMemAlloc)
	reg := commands.NewRegistry()
	commands.RegisterGallery(reg, world, hud, log)
	term := terminal.New(log, reg)

	viewport := &camera.Viewport{Width: int32(prefs.WindowWidth), Height: int32(prefs.WindowHeight)}
	orbit := camera.NewOrbit(cameraStart, cameraTarget)
	picker := picking.New(world.Graph, viewport, &orbit.Camera, caption, setCursor)
	input := &graphics.Input{
		Orbit:    orbit,
		Viewport: viewport,
		Blocked:  controls.Contains,
		OnMove:   picker.OnMove,
		OnLeave:  picker.Leave,
		OnClick: func() {
			if n, ok := picker.OnClick(); ok {
				log.Logf("clicked %s", n.Name)
			}
		},
	}

	loop := graphics.NewLoop(viewport)
	loop.AddMixer(loading)
	loop.AddMixer(caption)
	loop.OnResize(func(v camera.Viewport) { controls.Layout(v.Width) })
	controls.Layout(viewport.Width)

	renderer := primitives.NewRegistry()

	fontReady := false
	loadFont := func() {
		fontReady = true
		texts := append(cat.Texts(), controls.Texts()...)
		texts = append(texts, ui.LoadingText, "Inspector")
		f, err := fonts.Load(prefs.Font, fontSize, texts...)
		if err != nil {
			log.Logf("%v (Hangul text will not render)", err)
			return
		}
		overlay.SetFont(f)
		controls.SetFont(f)
		term.SetFont(f)
		hud.SetFont(f)
	}

	shown := len(base)
	update := func(time.Duration) {
		term.Update()
		if !term.IsOpen() {
			switch {
			case rl.IsKeyPressed(rl.KeyH):
				controls.Visible = !controls.Visible
			case rl.IsKeyPressed(rl.KeyF3):
				hud.ToggleInspector()
			}
		}
		input.Handle(graphics.PollMouse())
		if n := loader.Poll(renderer.Textures.Upload); n > 0 {
			log.Logf("textures ready: %d", renderer.Textures.Len())
		}
	}
	draw := func() {
		if !fontReady {
			loadFont()
		}
		lights := world.Lights()
		rl.BeginMode3D(orbit.Camera)
		renderer.SetView(orbit.Camera.Position, lights)
		renderer.DrawGraph(world.Graph, lights)
		rl.EndMode3D()

		hovered := picker.Hovered()
		nodes := inspector.AppendNodes(base[:len(base):len(base)], hud.ShowInspector && hovered != nil, selection(hovered))
		if len(nodes) != shown {
			overlay.SetNodes(nodes)
			shown = len(nodes)
		}
		overlay.Draw()
		controls.Draw()
		hud.Draw()
		term.Draw()
	}

	graphics.Run(graphics.Options{
		Width:      int32(prefs.WindowWidth),
		Height:     int32(prefs.WindowHeight),
		Title:      cat.Title,
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  60,
		Background: background,
		OnClose:    renderer.Unload,
	}, loop, update, draw)
	loader.Wait()
	return nil
}
