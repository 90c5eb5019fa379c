// Package promptgen assembles image-generation prompts from slotted
// templates. Everything here is local string work; no API calls.
package promptgen

import (
	"errors"
	"strings"
)

// ErrEmptyDescription is returned by GeneratePrompt for a blank description.
// Assembling a prompt around nothing produces garbage, so this is an error
// rather than a placeholder.
var ErrEmptyDescription = errors.New("description must not be empty")

// preamble leads every assembled prompt. Quality tags first is the common
// convention for diffusion-model prompts.
const preamble = "masterpiece, best quality"

// Slot defaults used when a template leaves a slot empty. Each one is a
// member of the matching variation pool so CreateVariations can find a
// segment to swap.
const (
	defaultLighting    = "soft diffused lighting"
	defaultComposition = "balanced composition"
	defaultMood        = "serene atmosphere"
)

// Template holds the named slots of a prompt. Rendering joins the populated
// slots in a fixed order: subject, lighting, composition, mood, style. The
// style slot comes last so the style suffix ends the prompt.
type Template struct {
	Subject     string
	Lighting    string
	Composition string
	Mood        string
	Style       string
}

// Render concatenates the slots into one prompt string, substituting
// defaults for empty modifier slots. The subject is included verbatim.
func (t Template) Render() string {
	lighting := t.Lighting
	if lighting == "" {
		lighting = defaultLighting
	}
	composition := t.Composition
	if composition == "" {
		composition = defaultComposition
	}
	mood := t.Mood
	if mood == "" {
		mood = defaultMood
	}

	segments := []string{preamble, t.Subject, lighting, composition, mood}
	if t.Style != "" {
		segments = append(segments, t.Style)
	}
	return strings.Join(segments, ", ")
}

// Assembler renders prompts against a style table: the built-in styles plus
// any user-defined ones passed to New (user styles override by name).
type Assembler struct {
	styles []Style
}

func New(userStyles ...Style) *Assembler {
	return &Assembler{styles: mergeStyles(builtinStyles, userStyles)}
}

// Styles returns the style table in lookup order.
func (a *Assembler) Styles() []Style {
	out := make([]Style, len(a.styles))
	copy(out, a.styles)
	return out
}

// GeneratePrompt assembles a prompt for the description in the named style.
// An empty or whitespace description returns ErrEmptyDescription. An unknown
// style falls back to the default (photorealistic); an empty style name means
// the default too.
func (a *Assembler) GeneratePrompt(description, styleName string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}

	st, ok := a.lookup(styleName)
	if !ok {
		st, _ = a.lookup(DefaultStyle)
	}

	t := Template{
		Subject: description,
		Style:   st.slotValue(),
	}
	return t.Render(), nil
}

func (a *Assembler) lookup(name string) (Style, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, st := range a.styles {
		if strings.ToLower(st.Name) == name {
			return st, true
		}
	}
	return Style{}, false
}
