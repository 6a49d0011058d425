package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// DefaultCSS styles the gallery overlay when no stylesheet file is configured.
//
//go:embed gallery.css
var DefaultCSS string

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order. Resolved styles are cached and only recomputed when the sheet or
// the node list changes.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS parses the stylesheet at path, or DefaultCSS when path is empty.
func (e *Engine) LoadCSS(path string) error {
	src := DefaultCSS
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("ui: read stylesheet: %w", err)
		}
		src = string(data)
	}
	sheet, err := ParseCSS(src)
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// SetFont sets the font used for node text. A zero font means raylib's default font.
func (e *Engine) SetFont(f rl.Font) {
	e.font = f
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Node returns the node with the given id.
func (e *Engine) Node(id string) (*Node, error) {
	for _, n := range e.nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("ui: no element #%s", id)
}

// Require checks that every id names a node. Call once at startup.
func (e *Engine) Require(ids ...string) error {
	for _, id := range ids {
		if _, err := e.Node(id); err != nil {
			return err
		}
	}
	return nil
}

// resolveProps returns merged properties for a node (class then id rules, in sheet order; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		switch sel[0] {
		case '.':
			matches = n.HasClass(sel[1:])
		case '#':
			matches = n.ID != "" && n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// Style returns the resolved style of node i.
func (e *Engine) Style(i int) ComputedStyle {
	e.resolve()
	return e.cachedStyles[i]
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
	}
	e.cacheValid = true
}

// Layout places a node of the given style on a screen, given the width of its text at the
// style's font size. Returns the node's rectangle.
func Layout(style ComputedStyle, screenW, screenH int32, textW float32) rl.Rectangle {
	w := style.Width
	if style.AutoWidth {
		w = int32(textW) + 2*style.Padding
	}
	h := style.Height
	if h == 0 {
		h = style.FontSize + 2*style.Padding
	}
	x, y := style.Left, style.Top
	switch {
	case style.LeftPct >= 0:
		x = (screenW - w) * style.LeftPct / 100
	case style.Right >= 0:
		x = screenW - w - style.Right
	}
	switch {
	case style.TopPct >= 0:
		y = (screenH - h) * style.TopPct / 100
	case style.Bottom >= 0:
		y = screenH - h - style.Bottom
	}
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}

func (e *Engine) measure(text string, size int32) float32 {
	if text == "" {
		return 0
	}
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

// Draw lays out and draws every visible node: background, border, then text.
func (e *Engine) Draw() {
	e.resolve()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		if n.Hidden || !style.Display {
			continue
		}
		textW := e.measure(n.Text, style.FontSize)
		n.Bounds = Layout(style, screenW, screenH, textW)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		tx := float32(x + style.Padding)
		if style.Center {
			tx = float32(x) + (float32(w)-textW)/2
		}
		ty := float32(y + style.Padding)
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(tx, ty), float32(style.FontSize), 1, style.Color)
		} else {
			rl.DrawText(n.Text, int32(tx), int32(ty), style.FontSize, style.Color)
		}
	}
}

// HasStylesheet returns whether any rules are loaded.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}
