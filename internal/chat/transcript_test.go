package chat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTranscript(t *testing.T) {
	messages := []Message{
		UserMessage("what is Go?"),
		ModelMessage("A programming language."),
		UserMessage("thanks"),
		ModelMessage("any time"),
	}
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	var sb strings.Builder
	require.NoError(t, WriteTranscript(&sb, "You are concise.", messages, now))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "gembox chat transcript\n"))
	assert.Contains(t, out, "Time: 2025-03-14 09:26:53\n")
	assert.Contains(t, out, "Turns: 2\n")
	assert.Contains(t, out, strings.Repeat("=", 50))
	assert.Contains(t, out, "[system]\nYou are concise.\n")
	assert.Contains(t, out, "[user]\nwhat is Go?\n")
	assert.Contains(t, out, "[model]\nA programming language.\n")

	// System block comes before the first exchange.
	assert.Less(t, strings.Index(out, "[system]"), strings.Index(out, "[user]"))
}

func TestWriteTranscriptNoSystem(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTranscript(&sb, "", []Message{UserMessage("hi")}, time.Now()))
	assert.NotContains(t, sb.String(), "[system]")
}

func TestSaveTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conv.txt")
	messages := []Message{UserMessage("ping"), ModelMessage("pong")}

	require.NoError(t, SaveTranscript(path, "", messages))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[model]\npong\n")
}

func TestSaveTranscriptRefusesEmpty(t *testing.T) {
	err := SaveTranscript(filepath.Join(t.TempDir(), "conv.txt"), "", nil)
	assert.ErrorContains(t, err, "empty")
}

func TestDefaultTranscriptName(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "conversation_20250314_092653.txt", DefaultTranscriptName(now))
}
