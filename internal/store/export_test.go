package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportText(t *testing.T) {
	p := SavedPrompt{
		Description: "a cat in a garden",
		Style:       "watercolor",
		Prompt:      "masterpiece, best quality, a cat in a garden",
		Variations:  []string{"first variant", "second variant"},
	}
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	var sb strings.Builder
	require.NoError(t, ExportText(&sb, p, now))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "AI image generation prompts\n"))
	assert.Contains(t, out, "Generated: 2025-03-14 09:26:53\n")
	assert.Contains(t, out, "Description:\na cat in a garden\n")
	assert.Contains(t, out, "Style:\nwatercolor\n")
	assert.Contains(t, out, "Prompt:\nmasterpiece, best quality, a cat in a garden\n")
	assert.Contains(t, out, "Variation 1:\nfirst variant\n")
	assert.Contains(t, out, "Variation 2:\nsecond variant\n")
}

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "image_prompts_20250314_092653.txt", DefaultExportName(now))
}
