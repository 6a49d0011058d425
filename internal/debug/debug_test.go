package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaysStartHidden(t *testing.T) {
	d := New()
	assert.False(t, d.ShowFPS)
	assert.False(t, d.ShowMemAlloc)
	assert.False(t, d.ShowInspector)

	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)
	d.ToggleInspector()
	assert.True(t, d.ShowFPS)
	assert.True(t, d.ShowMemAlloc)
	assert.True(t, d.ShowInspector)
	d.ToggleInspector()
	assert.False(t, d.ShowInspector)
}

func TestText(t *testing.T) {
	assert.Equal(t, "FPS: 60", FPSText(60))
	assert.Equal(t, "Mem: 1.50 MiB", MemText(3<<19))
}
