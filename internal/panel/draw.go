package panel

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth   = 300
	panelMargin  = 10
	panelPadding = 6
	rowHeight    = 24
	colorHeight  = 84
	labelWidth   = 64
	textSize     = 16
)

var panelBackground = rl.NewColor(20, 20, 24, 220)

// row is one laid-out line: a folder header (widget nil) or a widget.
type row struct {
	rect   rl.Rectangle
	folder *Folder
	widget *Widget
}

// SetFont makes raygui draw with f, which must cover the Hangul labels.
func (p *Panel) SetFont(f rl.Font) {
	if f.Texture.ID == 0 {
		return
	}
	gui.SetFont(f)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize)
}

// Layout places the panel against the right edge of a screen screenW pixels wide.
// Collapsed folders only take their header row.
func (p *Panel) Layout(screenW int32) {
	x := float32(screenW - panelWidth - panelMargin)
	y := float32(panelMargin + panelPadding)
	w := float32(panelWidth - 2*panelPadding)
	p.rows = p.rows[:0]
	for _, f := range p.Folders {
		p.rows = append(p.rows, row{rect: rl.NewRectangle(x+panelPadding, y, w, rowHeight), folder: f})
		y += rowHeight + 2
		if !f.Open {
			continue
		}
		for _, wd := range f.Widgets {
			h := float32(rowHeight)
			if wd.Kind == ColorPicker {
				h = colorHeight
			}
			p.rows = append(p.rows, row{rect: rl.NewRectangle(x+panelPadding, y, w, h), folder: f, widget: wd})
			y += h + 2
		}
		y += panelPadding
	}
	p.bounds = rl.NewRectangle(x, panelMargin, panelWidth, y-panelMargin)
}

// Bounds is the panel rectangle from the last Layout.
func (p *Panel) Bounds() rl.Rectangle { return p.bounds }

// Contains reports whether the point is over the visible panel. Pointer input there belongs to
// the panel, not to the scene.
func (p *Panel) Contains(x, y float32) bool {
	b := p.bounds
	return p.Visible && x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Draw lays out and draws the panel with raygui, applying any widget the user changed.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}
	p.Layout(int32(rl.GetScreenWidth()))
	rl.DrawRectangleRec(p.bounds, panelBackground)
	for _, r := range p.rows {
		if r.widget == nil {
			mark := "+ "
			if r.folder.Open {
				mark = "- "
			}
			if gui.Button(r.rect, mark+r.folder.Title) {
				r.folder.Open = !r.folder.Open
			}
			continue
		}
		drawWidget(r.rect, r.widget)
	}
}

func drawWidget(rect rl.Rectangle, w *Widget) {
	field := rl.NewRectangle(rect.X+labelWidth, rect.Y, rect.Width-labelWidth-40, rect.Height)
	switch w.Kind {
	case Toggle:
		box := rl.NewRectangle(rect.X+4, rect.Y+4, rect.Height-8, rect.Height-8)
		if v := gui.CheckBox(box, w.Label, w.Checked); v != w.Checked {
			w.SetChecked(v)
		}
	case Slider:
		gui.Label(rl.NewRectangle(rect.X+4, rect.Y, labelWidth-4, rect.Height), w.Label)
		if v := gui.Slider(field, "", fmt.Sprintf("%.2f", w.Value), w.Value, w.Min, w.Max); v != w.Value {
			w.SetValue(v)
		}
	case ColorPicker:
		gui.Label(rl.NewRectangle(rect.X+4, rect.Y, labelWidth-4, rowHeight), w.Label)
		if c := gui.ColorPicker(field, "", w.Color); c != w.Color {
			w.SetColor(c)
		}
	case Button:
		if gui.Button(rect, w.Label) {
			w.Press()
		}
	}
}
