package promptgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVariationsCount(t *testing.T) {
	a := New()
	prompt, err := a.GeneratePrompt("a cat in a garden", "photorealistic")
	require.NoError(t, err)

	for _, count := range []int{0, 1, 3, 5} {
		got := CreateVariations(prompt, count)
		assert.Len(t, got, count)
	}

	assert.Empty(t, CreateVariations(prompt, -2))
}

func TestCreateVariationsSeededIsReproducible(t *testing.T) {
	a := New()
	prompt, err := a.GeneratePrompt("a cat in a garden", "anime style")
	require.NoError(t, err)

	first := CreateVariationsSeeded(prompt, 4, 42)
	second := CreateVariationsSeeded(prompt, 4, 42)
	assert.Equal(t, first, second)
}

// Each variant must differ from the original only within the swapped
// modifier segment: everything before and after stays byte-identical.
func TestCreateVariationsOnlySwapsOneSegment(t *testing.T) {
	a := New()
	prompt, err := a.GeneratePrompt("a cat in a garden", "photorealistic")
	require.NoError(t, err)

	for _, v := range CreateVariationsSeeded(prompt, 10, 7) {
		if v == prompt {
			continue
		}
		swapped := false
		for _, pool := range modifierPools {
			cur, idx := findModifier(prompt, pool)
			if idx < 0 {
				continue
			}
			repl, vidx := findModifier(v, pool)
			if vidx < 0 || repl == cur {
				continue
			}
			// Same prefix, same tail, only the pool segment replaced.
			if v == prompt[:idx]+repl+prompt[idx+len(cur):] {
				swapped = true
				break
			}
		}
		assert.True(t, swapped, "variant does not differ by exactly one modifier segment:\n  base: %q\n  variant: %q", prompt, v)
	}
}

func TestCreateVariationsAppendsWhenNoModifierPresent(t *testing.T) {
	base := "a hand-written prompt with no known modifiers"

	for _, v := range CreateVariationsSeeded(base, 6, 99) {
		require.True(t, strings.HasPrefix(v, base+", "), "variant should append to the original: %q", v)
		added := strings.TrimPrefix(v, base+", ")
		found := false
		for _, pool := range modifierPools {
			for _, m := range pool {
				if m == added {
					found = true
				}
			}
		}
		assert.True(t, found, "appended segment %q is not from a pool", added)
	}
}

func TestVaryNeverPicksSameReplacement(t *testing.T) {
	a := New()
	prompt, err := a.GeneratePrompt("a cat", "watercolor")
	require.NoError(t, err)

	// Swapped variants must actually change the segment they touch.
	for _, v := range CreateVariationsSeeded(prompt, 25, 3) {
		assert.NotEqual(t, prompt, v)
	}
}
