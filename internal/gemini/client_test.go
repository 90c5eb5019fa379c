package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evhall/gembox/internal/chat"
	"github.com/evhall/gembox/internal/config"
)

func TestNewRequiresKey(t *testing.T) {
	cfg := config.Defaults()
	cfg.APIKey = ""
	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestBuildContents(t *testing.T) {
	req := Request{
		Prompt: "and now?",
		History: []chat.Message{
			{Role: chat.RoleUser, Content: "hi"},
			{Role: chat.RoleModel, Content: "hello"},
			{Role: chat.RoleSystem, Content: "be brief"},
		},
	}

	contents := buildContents(req)
	require.Len(t, contents, 3)
	assert.Equal(t, chat.RoleUser, contents[0].Role)
	assert.Equal(t, "hi", contents[0].Parts[0].Text)
	assert.Equal(t, chat.RoleModel, contents[1].Role)
	assert.Equal(t, "and now?", contents[2].Parts[0].Text)
}

func TestBuildContentsInlineImage(t *testing.T) {
	req := Request{
		Prompt:    "what is in this picture?",
		ImageData: []byte{0xff, 0xd8, 0xff},
		ImageMIME: "image/jpeg",
	}

	contents := buildContents(req)
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "what is in this picture?", contents[0].Parts[0].Text)
	require.NotNil(t, contents[0].Parts[1].InlineData)
	assert.Equal(t, "image/jpeg", contents[0].Parts[1].InlineData.MIMEType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, contents[0].Parts[1].InlineData.Data)

	// Text-only requests keep a single part.
	contents = buildContents(Request{Prompt: "hi"})
	require.Len(t, contents[0].Parts, 1)
}

func TestGenerateConfigOverrides(t *testing.T) {
	c := &Client{cfg: config.Defaults()}

	temp := 0.2
	got, err := c.generateConfig(Request{Temperature: &temp, MaxTokens: 400, System: "persona text"})
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), *got.Temperature)
	assert.Equal(t, int32(400), got.MaxOutputTokens)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "persona text", got.SystemInstruction.Parts[0].Text)
	assert.Len(t, got.SafetySettings, 4)

	// Without overrides the configured defaults apply.
	got, err = c.generateConfig(Request{})
	require.NoError(t, err)
	assert.Equal(t, float32(c.cfg.Temperature), *got.Temperature)
	assert.Equal(t, int32(c.cfg.MaxTokens), got.MaxOutputTokens)
	assert.Nil(t, got.SystemInstruction)
}

func TestGenerateConfigBadSafety(t *testing.T) {
	cfg := config.Defaults()
	cfg.Safety = "BLOCK_SOMETIMES"
	c := &Client{cfg: cfg}

	_, err := c.generateConfig(Request{})
	assert.Error(t, err)
}

func TestSupportsGenerate(t *testing.T) {
	assert.True(t, supportsGenerate([]string{"countTokens", "generateContent"}))
	assert.False(t, supportsGenerate([]string{"embedContent"}))
	assert.False(t, supportsGenerate(nil))
}

func TestMockCompleter(t *testing.T) {
	m := &MockCompleter{Responses: []string{"one", "two"}}

	got, err := m.Complete(context.Background(), Request{Prompt: "a"})
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	got, err = m.Complete(context.Background(), Request{Prompt: "b"})
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	require.Len(t, m.Requests, 2)
	assert.Equal(t, "a", m.Requests[0].Prompt)
}
