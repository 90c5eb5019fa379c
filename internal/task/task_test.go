package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	got := Translate("bonjour tout le monde", "German")
	assert.Contains(t, got.Prompt, "into German")
	assert.Contains(t, got.Prompt, "bonjour tout le monde")
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.3, *got.Temperature)

	assert.Contains(t, Translate("hola", "").Prompt, "into "+DefaultTargetLanguage)
}

func TestSummarize(t *testing.T) {
	got := Summarize("a very long text", 150)
	assert.Contains(t, got.Prompt, "at most 150 words")
	assert.Contains(t, got.Prompt, "a very long text")
	assert.Equal(t, 300, got.MaxTokens)
	assert.Nil(t, got.Temperature)

	// Non-positive word counts fall back to the default.
	assert.Equal(t, DefaultSummaryWords*2, Summarize("x", 0).MaxTokens)
	assert.Equal(t, DefaultSummaryWords*2, Summarize("x", -5).MaxTokens)
}

func TestCode(t *testing.T) {
	got := Code("parse a CSV file", "Go")
	assert.Contains(t, got.Prompt, "Write Go code")
	assert.Contains(t, got.Prompt, "parse a CSV file")
	assert.Contains(t, got.Prompt, "runnable code")
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.2, *got.Temperature)

	assert.Contains(t, Code("sort a list", "").Prompt, DefaultCodeLanguage)
}

func TestWrite(t *testing.T) {
	got := Write("the sea at dawn", "haiku")
	assert.Contains(t, got.Prompt, `"the sea at dawn"`)
	assert.Contains(t, got.Prompt, "haiku")
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.9, *got.Temperature)

	assert.Contains(t, Write("rain", "").Prompt, DefaultWritingStyle)
}
