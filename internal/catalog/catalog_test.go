package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, "나만의 3D 갤러리 전시관", c.Title)
	require.Len(t, c.Exhibits, Size)

	venus, brick, ball := c.Exhibits[0], c.Exhibits[1], c.Exhibits[2]
	assert.Equal(t, "sphere", venus.Shape)
	assert.Equal(t, "venus.jpg", venus.Texture)
	assert.Equal(t, float32(-8), venus.X)
	assert.Equal(t, "cube", brick.Shape)
	assert.Equal(t, float32(1.5), brick.Size)
	assert.Equal(t, "ball.png", ball.Texture)
	assert.Equal(t, float32(8), ball.X)
	assert.Equal(t, "큐브작품: 벽돌블럭 전시물입니다.", brick.Caption())
}

func TestParseNormalizesHangul(t *testing.T) {
	// "구" written as decomposed jamo (U+1100 U+116E).
	data := []byte(`title: "갤러리"
exhibits:
  - {id: a, name: "\u1100\u116e", description: d, shape: Sphere, size: 1}
  - {id: b, name: b, description: d, shape: cube, size: 1}
  - {id: c, name: c, description: d, shape: sphere, size: 1}
`)
	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "\uad6c", c.Exhibits[0].Name)
	assert.Equal(t, "sphere", c.Exhibits[0].Shape)
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no title", "exhibits: []"},
		{"too few", "title: t\nexhibits:\n  - {id: a, name: a, shape: cube, size: 1}\n"},
		{"bad shape", "title: t\nexhibits:\n  - {id: a, name: a, shape: cone, size: 1}\n  - {id: b, name: b, shape: cube, size: 1}\n  - {id: c, name: c, shape: cube, size: 1}\n"},
		{"duplicate id", "title: t\nexhibits:\n  - {id: a, name: a, shape: cube, size: 1}\n  - {id: a, name: b, shape: cube, size: 1}\n  - {id: c, name: c, shape: cube, size: 1}\n"},
		{"zero size", "title: t\nexhibits:\n  - {id: a, name: a, shape: cube}\n  - {id: b, name: b, shape: cube, size: 1}\n  - {id: c, name: c, shape: cube, size: 1}\n"},
		{"not yaml", "title: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "exhibits.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestTexts(t *testing.T) {
	texts := Default().Texts()
	assert.Len(t, texts, 1+2*Size)
	assert.Contains(t, texts, "구체작품: 축구공 전시물입니다.")
}
