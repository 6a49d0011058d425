package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // ".panel" or "#info"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct position the node's box inside the screen (50 centers it); -1 means use
// Left/Top as pixels. Negative Right/Bottom mean unset; otherwise they anchor to that edge.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Right      int32
	Bottom     int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
	Center     bool // text-align: center
	Display    bool // false for display: none
	AutoWidth  bool // width: auto, sized to the text
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Right:      -1,
		Bottom:     -1,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
		Display:    true,
	}
}

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, rgb(r,g,b) and rgba(r,g,b,a) with a in 0..1.
func ParseColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHexColor(s)
	}
	fn, args, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(args, ")") {
		return rl.Black, false
	}
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
	switch {
	case fn == "rgb" && len(parts) == 3, fn == "rgba" && len(parts) == 4:
	default:
		return rl.Black, false
	}
	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return rl.Black, false
		}
		rgb[i] = uint8(n)
	}
	a := uint8(255)
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil || f < 0 || f > 1 {
			return rl.Black, false
		}
		a = uint8(f*255 + 0.5)
	}
	return rl.NewColor(rgb[0], rgb[1], rgb[2], a), true
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Returns rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return rl.NewColor(hexByte(hex[0])*17, hexByte(hex[1])*17, hexByte(hex[2])*17, 255), true
	case 6:
		return rl.NewColor(hexPair(hex[0:2]), hexPair(hex[2:4]), hexPair(hex[4:6]), 255), true
	case 8:
		return rl.NewColor(hexPair(hex[0:2]), hexPair(hex[2:4]), hexPair(hex[4:6]), hexPair(hex[6:8])), true
	}
	return rl.Black, false
}

func hexPair(s string) uint8 {
	return hexByte(s[0])<<4 + hexByte(s[1])
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			// "1px solid #fff" or just "#fff": the color is the last field.
			f := strings.Fields(v)
			if len(f) > 0 {
				if c, ok := ParseColor(f[len(f)-1]); ok {
					out.Border = c
					out.HasBorder = true
				}
			}
		case "width":
			if v == "auto" {
				out.AutoWidth = true
			} else if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "right":
			if n, ok := ParsePx(v); ok {
				out.Right = n
			}
		case "bottom":
			if n, ok := ParsePx(v); ok {
				out.Bottom = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "text-align":
			out.Center = v == "center"
		case "display":
			out.Display = v != "none"
		}
	}
	return out
}
