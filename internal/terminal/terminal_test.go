package terminal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"gallery/internal/catalog"
	"gallery/internal/commands"
	"gallery/internal/gallery"
	"gallery/internal/lighting"
	"gallery/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T) (*Terminal, *gallery.World, *logger.Logger) {
	t.Helper()
	w, err := gallery.New(catalog.Default(), "textures", nil)
	require.NoError(t, err)
	log := logger.NewAt("")
	reg := commands.NewRegistry()
	commands.RegisterGallery(reg, w, nil, log)
	return New(log, reg), w, log
}

func TestSubmitRunsCommands(t *testing.T) {
	term, w, log := newTerminal(t)

	term.Submit("cmd preset spotlights-only")
	assert.False(t, w.Light(lighting.Ambient).Visible)
	lines := log.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "> cmd preset spotlights-only"))

	term.Submit("cmd fps --show")
	assert.True(t, strings.HasSuffix(log.Lines()[3], "fps: no debug overlay"))
}

func TestSubmitPlainTextPrintsUsage(t *testing.T) {
	term, _, log := newTerminal(t)
	term.Submit("help")
	lines := log.Lines()
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "cmd fps")

	term.Submit("")
	assert.Len(t, log.Lines(), 6)
}

func TestRecall(t *testing.T) {
	term, _, _ := newTerminal(t)
	term.Recall(-1)
	assert.Empty(t, term.Input())

	term.Submit("cmd shadows --off")
	term.Submit("cmd shadows --on")
	term.Recall(-1)
	assert.Equal(t, "cmd shadows --on", term.Input())
	term.Recall(-1)
	term.Recall(-1)
	assert.Equal(t, "cmd shadows --off", term.Input())
	term.Recall(1)
	term.Recall(1)
	assert.Empty(t, term.Input())
}

func TestToggle(t *testing.T) {
	term, _, _ := newTerminal(t)
	assert.False(t, term.IsOpen())
	term.Toggle()
	assert.True(t, term.IsOpen())
}

func TestClipKeepsRunes(t *testing.T) {
	long := strings.Repeat("전", maxLineLen+10)
	c := clip(long)
	assert.True(t, utf8.ValidString(c))
	assert.Equal(t, maxLineLen, utf8.RuneCountInString(c))
	assert.Equal(t, "short", clip("short"))
}
