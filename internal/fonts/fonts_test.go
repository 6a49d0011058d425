package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Noto", "NotoSansKR-Bold.ttf"))
	touch(t, filepath.Join(dir, "Noto", "NotoSansKR-Regular.otf"))
	touch(t, filepath.Join(dir, "README.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Noto/NotoSansKR-Bold.ttf", "Noto/NotoSansKR-Regular.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindFontInPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Noto", "NotoSansKR-Bold.ttf"))
	touch(t, filepath.Join(dir, "Noto", "NotoSansKR-Regular.ttf"))

	rel, full, err := FindFontIn([]string{dir}, "noto sans kr")
	require.NoError(t, err)
	assert.Equal(t, "Noto/NotoSansKR-Regular.ttf", rel)
	assert.FileExists(t, full)

	_, _, err = FindFontIn([]string{dir}, "Nanum")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, _, err = FindFontIn([]string{dir}, " - ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearchCandidates(t *testing.T) {
	assert.Equal(t,
		[]string{"NotoSansKR/NotoSansKR-Regular.ttf", "NotoSansKR", "NotoSansKR-Regular"},
		SearchCandidates("NotoSansKR/NotoSansKR-Regular.ttf"))
	assert.Equal(t, []string{"NanumGothic"}, SearchCandidates(" NanumGothic "))
}

func TestCodepoints(t *testing.T) {
	cps := Codepoints("갤러리", "전시관 갤러리\n")
	assert.Len(t, cps, 95+6)
	assert.Equal(t, ' ', cps[0])
	assert.Contains(t, cps, '갤')
	assert.Contains(t, cps, '관')
	assert.NotContains(t, cps, '\n')
	assert.IsIncreasing(t, cps)
}
