package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	p, err := Get("coder")
	require.NoError(t, err)
	assert.Equal(t, "coder", p.Name)
	assert.NotEmpty(t, p.SystemPrompt)

	// Lookup ignores case and padding.
	p, err = Get("  Translator ")
	require.NoError(t, err)
	assert.Equal(t, "translator", p.Name)

	_, err = Get("wizard")
	assert.ErrorContains(t, err, "unknown persona")
}

func TestDefaultHasNoPrompt(t *testing.T) {
	p, err := Get("default")
	require.NoError(t, err)
	assert.Empty(t, p.SystemPrompt)
}

func TestListSorted(t *testing.T) {
	personas := List()
	require.NotEmpty(t, personas)
	names := Names()
	for i, p := range personas {
		assert.Equal(t, names[i], p.Name)
	}
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "tutor")
}
