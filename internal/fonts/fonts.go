package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// Fallbacks are tried, in order, when the configured font is not found. All cover Hangul.
var Fallbacks = []string{"NotoSansKR", "NanumGothic", "NotoSansCJK", "UnDotum"}

// BaseDirs returns candidate base directories for fonts: the project's assets first, then the
// usual system locations.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts", "/usr/share/fonts", "/usr/local/share/fonts", "/Library/Fonts", `C:\Windows\Fonts`}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Noto/NotoSansKR-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		if slices.Contains(Exts, strings.ToLower(filepath.Ext(path))) {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// SearchCandidates returns search terms to try in order for a configured font name.
// Example: "NotoSansKR/NotoSansKR-Regular.ttf" -> [itself, "NotoSansKR", "NotoSansKR-Regular"].
func SearchCandidates(pathOrName string) []string {
	pathOrName = strings.TrimSpace(pathOrName)
	var candidates []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !slices.Contains(candidates, s) {
			candidates = append(candidates, s)
		}
	}
	add(pathOrName)
	if i := strings.IndexAny(pathOrName, "/\\"); i > 0 {
		add(pathOrName[:i])
	}
	base := filepath.Base(filepath.ToSlash(pathOrName))
	if i := strings.Index(base, "-"); i > 0 {
		add(base[:i])
	}
	for _, ext := range Exts {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			add(base[:len(base)-len(ext)])
			break
		}
	}
	return candidates
}

// FindFontIn searches dirs for a font file whose path matches search.
// When multiple files match, prefers one whose path contains "Regular".
func FindFontIn(dirs []string, search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	type match struct{ rel, full string }
	var candidates []match
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, match{rel, filepath.Join(base, filepath.FromSlash(rel))})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}

// FindFont is FindFontIn over BaseDirs.
func FindFont(search string) (relPath string, fullPath string, err error) {
	return FindFontIn(BaseDirs(), search)
}

// Resolve finds the file for the configured font name, falling back to Fallbacks.
func Resolve(name string) (string, error) {
	terms := SearchCandidates(name)
	terms = append(terms, Fallbacks...)
	for _, term := range terms {
		if _, full, err := FindFont(term); err == nil {
			return full, nil
		}
	}
	return "", fmt.Errorf("fonts: no font matching %q or a Hangul fallback under %s", name, strings.Join(BaseDirs(), ", "))
}

// Codepoints is printable ASCII plus every rune used in texts, sorted and without duplicates.
// raylib only rasterizes the glyphs it is asked for, so every Hangul label must pass through here.
func Codepoints(texts ...string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for r := rune(32); r < 127; r++ {
		add(r)
	}
	for _, s := range texts {
		for _, r := range s {
			if r >= 32 {
				add(r)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Load resolves name and loads it at size with glyphs for texts. Needs an open window.
func Load(name string, size int32, texts ...string) (rl.Font, error) {
	path, err := Resolve(name)
	if err != nil {
		return rl.Font{}, err
	}
	f := rl.LoadFontEx(path, size, Codepoints(texts...))
	if !rl.IsFontValid(f) {
		return rl.Font{}, fmt.Errorf("fonts: %s: not a loadable font", path)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, nil
}
