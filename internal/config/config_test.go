package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsFieldsAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "gallery.json")
	want := Default()
	want.ShowFPS = true
	want.Font = "NanumGothic"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, os.WriteFile(path, []byte(`{"window_width": -3, "texture_dir": ""}`), 0644))
	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, got.WindowWidth)
	assert.Equal(t, "textures", got.TextureDir)
}

func TestApplyEnvOverridesNonEmptyValues(t *testing.T) {
	env := map[string]string{
		EnvWidth:      "1920",
		EnvShowFPS:    "true",
		EnvTextureDir: "/srv/textures",
		EnvFullscreen: "false",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	base := Default()
	base.Fullscreen = true

	got, err := ApplyEnv(base, lookup)
	require.NoError(t, err)
	assert.Equal(t, 1920, got.WindowWidth)
	assert.Equal(t, 720, got.WindowHeight)
	assert.True(t, got.ShowFPS)
	assert.True(t, got.Fullscreen, "false in the environment never switches a feature off")
	assert.Equal(t, "/srv/textures", got.TextureDir)
	assert.Equal(t, "NotoSansKR", got.Font)
}

func TestLoadEnvFileSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nGALLERY_FONT=\"NanumGothic\"\n"), 0644))
	t.Setenv(EnvFont, "before")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "NanumGothic", os.Getenv(EnvFont))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
