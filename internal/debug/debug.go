package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS       bool
	ShowMemAlloc  bool
	ShowInspector bool

	font         rl.Font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-left, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap counter is drawn under the FPS counter.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// ToggleInspector flips the hovered-exhibit inspector.
func (d *Debug) ToggleInspector() {
	d.ShowInspector = !d.ShowInspector
}

// SetFont sets the font used to draw FPS/Mem. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// FPSText and MemText format the counters.
func FPSText(fps int32) string { return fmt.Sprintf("FPS: %d", fps) }

func MemText(alloc uint64) string {
	return fmt.Sprintf("Mem: %.2f MiB", float64(alloc)/(1024*1024))
}

// refresh recomputes the overlay text every updateInterval frames, or right away when an
// overlay has just been switched on.
func (d *Debug) refresh() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") {
		update = true
	}
	if !update {
		return
	}
	if d.ShowFPS {
		d.lastFpsText = FPSText(rl.GetFPS())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		d.lastMemText = MemText(d.lastMemStats.Alloc)
	}
}

// Draw renders the enabled counters in the top-left corner, clear of the control panel.
// Call after the scene in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.refresh()
	var lines []string
	if d.ShowFPS {
		lines = append(lines, d.lastFpsText)
	}
	if d.ShowMemAlloc {
		lines = append(lines, d.lastMemText)
	}
	y := float32(fpsPadding)
	for _, text := range lines {
		if d.font.Texture.ID != 0 {
			rl.DrawTextEx(d.font, text, rl.NewVector2(fpsPadding, y), fpsFontSize, 1, rl.Green)
		} else {
			rl.DrawText(text, fpsPadding, int32(y), fpsFontSize, rl.Green)
		}
		y += fpsLineHeight
	}
}
