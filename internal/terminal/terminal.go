package terminal

import (
	"unicode/utf8"

	"gallery/internal/commands"
	"gallery/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the developer console at the bottom of the screen, shown and hidden with ESC.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via the command
// registry; anything else prints the command list.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
	history  []string
	recall   int
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Input is the text typed so far.
func (t *Terminal) Input() string { return t.inputBuf }

// Submit echoes line to the log and runs it. Command errors are logged, not returned.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	t.recall = len(t.history)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		for _, u := range t.reg.Usage() {
			t.log.Log(u)
		}
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Recall steps through submitted lines: -1 for older, +1 for newer. Stepping past the newest
// clears the input.
func (t *Terminal) Recall(step int) {
	if len(t.history) == 0 {
		return
	}
	t.recall = max(0, min(len(t.history), t.recall+step))
	if t.recall == len(t.history) {
		t.inputBuf = ""
		return
	}
	t.inputBuf = t.history[t.recall]
}

// Update handles ESC (toggle open/closed), and when open: typing, backspace, history and enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.Recall(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.Recall(1)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// clip shortens s to maxLineLen runes.
func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxLineLen {
		return s
	}
	return string([]rune(s)[:maxLineLen-3]) + "..."
}

func (t *Terminal) text(s string, x, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, x, y, fontSize, c)
}

// Draw draws the input bar at the bottom when open, and the recent log lines above it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	chatHeight := int32(maxLinesOnScreen * lineHeight)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, chatY, screenW, chatHeight, termChatBgColor)
	}
	lines := t.log.Lines()
	start := max(0, len(lines)-maxLinesOnScreen)
	for i := start; i < len(lines); i++ {
		t.text(clip(lines[i]), padding, chatY+int32(i-start)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, termBarColor)
	rl.DrawRectangle(0, barY, screenW, 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}
