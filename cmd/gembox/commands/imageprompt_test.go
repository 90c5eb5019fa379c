package commands

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefinePrompt(t *testing.T) {
	got := refinePrompt("masterpiece, a cat", false)
	assert.Contains(t, got, "Prompt: masterpiece, a cat")
	assert.NotContains(t, got, "Negative")

	got = refinePrompt("masterpiece, a cat", true)
	assert.Contains(t, got, "negative prompt")
}

func TestStoryPrompt(t *testing.T) {
	got := storyPrompt("a lighthouse keeper's year", 4)
	assert.Contains(t, got, `"a lighthouse keeper's year"`)
	assert.Contains(t, got, "4 images")
	assert.Contains(t, got, "image-generation prompt")
}

func TestFlagSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var seed int64
	fs.Int64Var(&seed, "seed", 0, "")

	assert.NoError(t, fs.Parse([]string{"--seed", "0", "arg"}))
	assert.True(t, flagSet(fs, "seed"))

	fs2 := flag.NewFlagSet("test", flag.ContinueOnError)
	fs2.Int64Var(&seed, "seed", 0, "")
	assert.NoError(t, fs2.Parse([]string{"arg"}))
	assert.False(t, flagSet(fs2, "seed"))
}
