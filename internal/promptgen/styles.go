package promptgen

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStyle is used when no style is given or the given one is unknown.
const DefaultStyle = "photorealistic"

// Style describes how a named art style shapes a prompt: descriptor phrases
// plus a closing suffix. The suffix always ends the rendered prompt.
type Style struct {
	Name    string   `yaml:"name"`
	Phrases []string `yaml:"phrases"`
	Suffix  string   `yaml:"suffix"`
}

// slotValue renders the style slot: phrases in order, suffix last.
func (s Style) slotValue() string {
	parts := append(append([]string{}, s.Phrases...), s.Suffix)
	return strings.Join(parts, ", ")
}

var builtinStyles = []Style{
	{
		Name:    "photorealistic",
		Phrases: []string{"photorealistic", "hyperrealistic", "sharp focus"},
		Suffix:  "8k resolution, professional photography",
	},
	{
		Name:    "digital art",
		Phrases: []string{"digital art", "highly detailed 3D render"},
		Suffix:  "trending digital artwork, 8k",
	},
	{
		Name:    "oil painting",
		Phrases: []string{"oil painting", "visible brush strokes", "rich color palette"},
		Suffix:  "classical fine art, gallery quality",
	},
	{
		Name:    "anime style",
		Phrases: []string{"anime style", "clean line art", "cel shading"},
		Suffix:  "high quality anime key visual",
	},
	{
		Name:    "concept art",
		Phrases: []string{"concept art", "matte painting", "cinematic environment design"},
		Suffix:  "detailed concept art, environment design",
	},
	{
		Name:    "watercolor",
		Phrases: []string{"watercolor painting", "soft washes of color", "delicate pigment bleed"},
		Suffix:  "hand-painted watercolor illustration",
	},
}

// stylesFile is the on-disk shape of a user style pack.
type stylesFile struct {
	Styles []Style `yaml:"styles"`
}

// LoadUserStyles reads extra styles from a YAML pack. A missing file is not
// an error; a malformed one is.
func LoadUserStyles(path string) ([]Style, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read styles: %w", err)
	}

	var f stylesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse styles: %w", err)
	}

	for _, st := range f.Styles {
		if strings.TrimSpace(st.Name) == "" {
			return nil, fmt.Errorf("parse styles: style with empty name")
		}
		if st.Suffix == "" {
			return nil, fmt.Errorf("parse styles: style %q has no suffix", st.Name)
		}
	}
	return f.Styles, nil
}

// mergeStyles overlays extras on base: same name replaces, new names append.
func mergeStyles(base, extras []Style) []Style {
	out := make([]Style, len(base))
	copy(out, base)

	for _, ex := range extras {
		replaced := false
		for i, st := range out {
			if strings.EqualFold(st.Name, ex.Name) {
				out[i] = ex
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, ex)
		}
	}
	return out
}
