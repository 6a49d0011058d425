package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPath is the preferences file, relative to the process working directory.
const ConfigPath = "config/gallery.json"

// Prefs holds viewer preferences. Gallery state (lights, wireframe) is never persisted; only how the
// viewer opens and where it finds its assets.
type Prefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Fullscreen   bool   `json:"fullscreen"`
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	TextureDir   string `json:"texture_dir"`
	Font         string `json:"font"`
	Catalog      string `json:"catalog,omitempty"`
	Stylesheet   string `json:"stylesheet,omitempty"`
}

// Default returns the preferences used when no file exists: a 1280x720 window, overlays off,
// textures under ./textures and the first Hangul-capable font found under assets/fonts.
func Default() Prefs {
	return Prefs{
		WindowWidth:  1280,
		WindowHeight: 720,
		TextureDir:   "textures",
		Font:         "NotoSansKR",
	}
}

// Load reads preferences from path. A missing file yields Default() and no error; an invalid file
// yields Default() and the decode error so the caller can log it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	p.sanitize()
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (p *Prefs) sanitize() {
	d := Default()
	if p.WindowWidth <= 0 {
		p.WindowWidth = d.WindowWidth
	}
	if p.WindowHeight <= 0 {
		p.WindowHeight = d.WindowHeight
	}
	if p.TextureDir == "" {
		p.TextureDir = d.TextureDir
	}
}
