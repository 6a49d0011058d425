package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
)

// Environment variables recognized as overrides. Boolean variables can only switch a feature on:
// the overlay is merged with IgnoreEmpty, so false never replaces a value from the file.
const (
	EnvWidth      = "GALLERY_WIDTH"
	EnvHeight     = "GALLERY_HEIGHT"
	EnvFullscreen = "GALLERY_FULLSCREEN"
	EnvShowFPS    = "GALLERY_SHOW_FPS"
	EnvTextureDir = "GALLERY_TEXTURE_DIR"
	EnvFont       = "GALLERY_FONT"
	EnvCatalog    = "GALLERY_CATALOG"
)

// LoadEnvFile reads KEY=VALUE pairs from path (e.g. ".env") into the process environment.
// Unlike godotenv.Load, values in the file win over variables already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	for k, v := range vars {
		_ = os.Setenv(k, v)
	}
	return nil
}

// ApplyEnv returns p with any GALLERY_* overrides from lookup merged on top.
// lookup is normally os.LookupEnv.
func ApplyEnv(p Prefs, lookup func(string) (string, bool)) (Prefs, error) {
	var overlay Prefs
	if v, ok := lookup(EnvWidth); ok {
		overlay.WindowWidth = atoiOrZero(v)
	}
	if v, ok := lookup(EnvHeight); ok {
		overlay.WindowHeight = atoiOrZero(v)
	}
	if v, ok := lookup(EnvFullscreen); ok {
		overlay.Fullscreen = parseBool(v)
	}
	if v, ok := lookup(EnvShowFPS); ok {
		overlay.ShowFPS = parseBool(v)
	}
	if v, ok := lookup(EnvTextureDir); ok {
		overlay.TextureDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvFont); ok {
		overlay.Font = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCatalog); ok {
		overlay.Catalog = strings.TrimSpace(v)
	}
	out := p
	if err := copier.CopyWithOption(&out, &overlay, copier.Option{IgnoreEmpty: true}); err != nil {
		return p, err
	}
	out.sanitize()
	return out, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}
