package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Size is the number of exhibits the gallery room has pedestals (and spotlights) for.
const Size = 3

//go:embed exhibits.yaml
var defaultYAML []byte

// Exhibit is one catalog entry. Size is the sphere radius or the cube edge length.
type Exhibit struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Shape       string  `yaml:"shape"`
	Size        float32 `yaml:"size"`
	Texture     string  `yaml:"texture"`
	X           float32 `yaml:"x"`
}

// Caption is the text shown in the info line when the exhibit is clicked.
func (e Exhibit) Caption() string {
	return e.Name + ": " + e.Description
}

// Catalog is the gallery title plus exactly Size exhibits in pedestal order.
type Catalog struct {
	Title    string    `yaml:"title"`
	Exhibits []Exhibit `yaml:"exhibits"`
}

// Default returns the embedded catalog. It panics if the embedded file is broken.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded exhibits.yaml: %v", err))
	}
	return c
}

// Load reads a catalog from path; an empty path returns Default().
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML catalog data. Text fields are NFC-normalized so Hangul typed
// as decomposed jamo renders with the precomposed syllables the font is loaded with.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.Title = norm.NFC.String(strings.TrimSpace(c.Title))
	for i := range c.Exhibits {
		e := &c.Exhibits[i]
		e.Name = norm.NFC.String(strings.TrimSpace(e.Name))
		e.Description = norm.NFC.String(strings.TrimSpace(e.Description))
		e.Shape = strings.ToLower(strings.TrimSpace(e.Shape))
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if c.Title == "" {
		return fmt.Errorf("missing title")
	}
	if len(c.Exhibits) != Size {
		return fmt.Errorf("want %d exhibits, got %d", Size, len(c.Exhibits))
	}
	seen := make(map[string]bool, Size)
	for i, e := range c.Exhibits {
		if e.ID == "" {
			return fmt.Errorf("exhibit %d: missing id", i+1)
		}
		if seen[e.ID] {
			return fmt.Errorf("exhibit %d: duplicate id %q", i+1, e.ID)
		}
		seen[e.ID] = true
		if e.Name == "" {
			return fmt.Errorf("exhibit %q: missing name", e.ID)
		}
		switch e.Shape {
		case "sphere", "cube":
		default:
			return fmt.Errorf("exhibit %q: unknown shape %q (use sphere or cube)", e.ID, e.Shape)
		}
		if e.Size <= 0 {
			return fmt.Errorf("exhibit %q: size must be positive", e.ID)
		}
	}
	return nil
}

// Texts returns every string the gallery may draw from the catalog (title, names, captions).
// Used to build the font's codepoint set.
func (c *Catalog) Texts() []string {
	out := []string{c.Title}
	for _, e := range c.Exhibits {
		out = append(out, e.Name, e.Caption())
	}
	return out
}
