package promptgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePromptContainsDescription(t *testing.T) {
	a := New()
	for _, st := range a.Styles() {
		prompt, err := a.GeneratePrompt("a cat in a garden", st.Name)
		require.NoError(t, err, st.Name)
		assert.NotEmpty(t, prompt)
		assert.Contains(t, prompt, "a cat in a garden")
	}
}

func TestGeneratePromptEndsWithStyleSuffix(t *testing.T) {
	a := New()
	prompt, err := a.GeneratePrompt("a cat in a garden", "photorealistic")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(prompt, "8k resolution, professional photography"),
		"prompt should end with the photorealistic suffix: %q", prompt)
}

func TestGeneratePromptEmptyDescription(t *testing.T) {
	a := New()
	_, err := a.GeneratePrompt("", "photorealistic")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = a.GeneratePrompt("   \t", "oil painting")
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func TestGeneratePromptUnknownStyleFallsBack(t *testing.T) {
	a := New()
	got, err := a.GeneratePrompt("a lighthouse at dusk", "vaporwave-cubism")
	require.NoError(t, err)

	want, err := a.GeneratePrompt("a lighthouse at dusk", DefaultStyle)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGeneratePromptStyleLookupIsCaseInsensitive(t *testing.T) {
	a := New()
	lower, err := a.GeneratePrompt("a red bicycle", "oil painting")
	require.NoError(t, err)
	upper, err := a.GeneratePrompt("a red bicycle", "Oil Painting")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestTemplateRenderSubstitutesDefaults(t *testing.T) {
	got := Template{Subject: "a fox"}.Render()
	assert.Contains(t, got, defaultLighting)
	assert.Contains(t, got, defaultComposition)
	assert.Contains(t, got, defaultMood)
	assert.Contains(t, got, "a fox")
}

func TestTemplateRenderFixedSlotOrder(t *testing.T) {
	tpl := Template{
		Subject:     "a fox",
		Lighting:    "neon lighting",
		Composition: "close-up shot",
		Mood:        "epic and dramatic",
		Style:       "watercolor painting",
	}
	got := tpl.Render()

	order := []string{preamble, "a fox", "neon lighting", "close-up shot", "epic and dramatic", "watercolor painting"}
	last := -1
	for _, seg := range order {
		idx := strings.Index(got, seg)
		require.GreaterOrEqual(t, idx, 0, "missing segment %q", seg)
		assert.Greater(t, idx, last, "segment %q out of order", seg)
		last = idx
	}
}

func TestNewMergesUserStyles(t *testing.T) {
	a := New(Style{
		Name:    "pixel art",
		Phrases: []string{"pixel art", "16-bit sprite"},
		Suffix:  "retro game aesthetic",
	})

	prompt, err := a.GeneratePrompt("a knight", "pixel art")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(prompt, "retro game aesthetic"))
}

func TestNewUserStyleOverridesBuiltin(t *testing.T) {
	a := New(Style{
		Name:    "watercolor",
		Phrases: []string{"loose watercolor sketch"},
		Suffix:  "unfinished sketchbook page",
	})

	prompt, err := a.GeneratePrompt("a harbor", "watercolor")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(prompt, "unfinished sketchbook page"))
	assert.NotContains(t, prompt, "hand-painted watercolor illustration")
}
