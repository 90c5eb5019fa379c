package promptgen

import (
	"math/rand"
	"strings"
)

// Variation pools. Swapping only ever happens within one pool, so a lighting
// segment can never be replaced by a mood.
var (
	lightingPool = []string{
		"soft diffused lighting",
		"dramatic lighting",
		"golden hour light",
		"neon lighting",
		"studio lighting",
		"moody backlighting",
	}
	compositionPool = []string{
		"balanced composition",
		"rule of thirds composition",
		"close-up shot",
		"wide angle view",
		"bird's eye view",
		"shallow depth of field",
	}
	moodPool = []string{
		"serene atmosphere",
		"vibrant and energetic",
		"melancholic tone",
		"epic and dramatic",
		"dreamlike ambiance",
		"calm and minimal",
	}
)

var modifierPools = [][]string{lightingPool, compositionPool, moodPool}

// DefaultNegativePrompt is the stock negative prompt offered when the model
// cannot produce one.
const DefaultNegativePrompt = "low quality, blurry, distorted, bad anatomy, deformed, watermark, signature, text"

// CreateVariations produces count variants of prompt, each swapping one
// randomly chosen modifier segment for an alternate from the same pool. The
// prompt does not have to come from GeneratePrompt: when it contains no known
// modifier, one is appended instead. Variants are not guaranteed distinct.
// count <= 0 yields an empty slice.
func CreateVariations(prompt string, count int) []string {
	return CreateVariationsSeeded(prompt, count, rand.Int63())
}

// CreateVariationsSeeded is CreateVariations with a fixed seed, for
// reproducible output.
func CreateVariationsSeeded(prompt string, count int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))

	out := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, vary(prompt, rng))
	}
	return out
}

// vary swaps a single modifier segment, leaving every other byte of the
// prompt untouched.
func vary(prompt string, rng *rand.Rand) string {
	pool := modifierPools[rng.Intn(len(modifierPools))]

	cur, idx := findModifier(prompt, pool)
	if idx < 0 {
		return prompt + ", " + pool[rng.Intn(len(pool))]
	}

	// Pick a replacement other than the current segment.
	alternates := make([]string, 0, len(pool)-1)
	for _, m := range pool {
		if m != cur {
			alternates = append(alternates, m)
		}
	}
	repl := alternates[rng.Intn(len(alternates))]

	return prompt[:idx] + repl + prompt[idx+len(cur):]
}

// findModifier returns the first pool member present in the prompt and its
// byte offset, or ("", -1).
func findModifier(prompt string, pool []string) (string, int) {
	for _, m := range pool {
		if idx := strings.Index(prompt, m); idx >= 0 {
			return m, idx
		}
	}
	return "", -1
}
