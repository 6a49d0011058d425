package primitives

import (
	"gallery/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Textures holds GPU textures by source path.
type Textures struct {
	byPath map[string]rl.Texture2D
}

func NewTextures() *Textures {
	return &Textures{byPath: make(map[string]rl.Texture2D)}
}

// Upload turns a finished load into a GPU texture. Failed loads are ignored: the material
// keeps drawing with its base color. Must run on the frame goroutine.
func (t *Textures) Upload(res texture.Result) {
	if res.Err != nil || res.Image == nil {
		return
	}
	img := rl.NewImageFromImage(res.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	if old, ok := t.byPath[res.Path]; ok {
		rl.UnloadTexture(old)
	}
	t.byPath[res.Path] = tex
}

// Get returns the texture uploaded for path.
func (t *Textures) Get(path string) (rl.Texture2D, bool) {
	if path == "" {
		return rl.Texture2D{}, false
	}
	tex, ok := t.byPath[path]
	return tex, ok
}

// Len is the number of uploaded textures.
func (t *Textures) Len() int { return len(t.byPath) }

func (t *Textures) Unload() {
	for p, tex := range t.byPath {
		rl.UnloadTexture(tex)
		delete(t.byPath, p)
	}
}
